package store

import (
	"context"
	"errors"

	"attentionops/backend/internal/mission"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

var ErrUnknownDriver = errors.New("unknown mission store driver")

// Store numbers and records generated missions. Create assigns the next
// mission number, makes the record current and appends it to history as one
// atomic step.
type Store interface {
	Create(ctx context.Context, draft mission.Draft) (mission.Mission, error)
	// Current returns nil when no mission has been created yet.
	Current(ctx context.Context) (*mission.Mission, error)
	Count(ctx context.Context) (int, error)
	// History returns missions most-recent-first; limit <= 0 means all.
	History(ctx context.Context, limit int) ([]mission.Mission, error)
}

// Pinger is implemented by stores backed by an external service.
type Pinger interface {
	Ping(ctx context.Context) error
}
