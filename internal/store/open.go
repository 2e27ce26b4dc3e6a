package store

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Options struct {
	Driver      string
	DB          *pgxpool.Pool
	Redis       *redis.Client
	RedisPrefix string
	Observer    QueryObserver
}

// New builds the store selected by opts.Driver. An empty driver selects the
// in-memory store.
func New(opts Options) (Store, error) {
	driver := strings.ToLower(strings.TrimSpace(opts.Driver))
	switch driver {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverPostgres:
		if opts.DB == nil {
			return nil, fmt.Errorf("%s store requires a database pool", driver)
		}
		return NewPostgresStore(opts.DB, opts.Observer), nil
	case DriverRedis:
		if opts.Redis == nil {
			return nil, fmt.Errorf("%s store requires a redis client", driver)
		}
		return NewRedisStore(opts.Redis, opts.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
}
