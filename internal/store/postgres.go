package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attentionops/backend/internal/mission"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QueryObserver records database round-trip latency.
type QueryObserver interface {
	ObserveDBQuery(duration time.Duration)
}

// PostgresStore numbers missions with a single counter row that is locked by
// the UPDATE inside the insert transaction, so numbers stay gap-free across
// API processes.
type PostgresStore struct {
	db       *pgxpool.Pool
	observer QueryObserver
}

func NewPostgresStore(db *pgxpool.Pool, observer QueryObserver) *PostgresStore {
	return &PostgresStore{db: db, observer: observer}
}

func (s *PostgresStore) observe(startedAt time.Time) {
	if s.observer != nil {
		s.observer.ObserveDBQuery(time.Since(startedAt))
	}
}

func (s *PostgresStore) Create(ctx context.Context, draft mission.Draft) (mission.Mission, error) {
	defer s.observe(time.Now())

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return mission.Mission{}, fmt.Errorf("begin mission tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var number int64
	if err := tx.QueryRow(ctx, `
		UPDATE mission_counter
		SET value = value + 1
		WHERE id = 1
		RETURNING value
	`).Scan(&number); err != nil {
		return mission.Mission{}, fmt.Errorf("next mission number: %w", err)
	}

	record := mission.NewMission(draft, number, time.Now())
	if _, err := tx.Exec(ctx, `
		INSERT INTO generated_missions(
			id, mission_number, mission_text,
			platform, topic, style, goal, time_minutes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		record.ID,
		record.MissionNumber,
		record.MissionText,
		string(record.Platform),
		record.Topic,
		string(record.Style),
		string(record.Goal),
		record.TimeMinutes,
		record.CreatedAt,
	); err != nil {
		return mission.Mission{}, fmt.Errorf("insert mission: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return mission.Mission{}, fmt.Errorf("commit mission: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) Current(ctx context.Context) (*mission.Mission, error) {
	defer s.observe(time.Now())

	rows, err := s.db.Query(ctx, selectMissionsSQL+`
		ORDER BY mission_number DESC
		LIMIT 1
	`)
	if err != nil {
		return nil, fmt.Errorf("query current mission: %w", err)
	}
	records, err := scanMissions(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	defer s.observe(time.Now())

	var count int64
	err := s.db.QueryRow(ctx, `SELECT value FROM mission_counter WHERE id = 1`).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count missions: %w", err)
	}
	return int(count), nil
}

func (s *PostgresStore) History(ctx context.Context, limit int) ([]mission.Mission, error) {
	defer s.observe(time.Now())

	var limitArg any
	if limit > 0 {
		limitArg = limit
	}
	rows, err := s.db.Query(ctx, selectMissionsSQL+`
		ORDER BY mission_number DESC
		LIMIT $1
	`, limitArg)
	if err != nil {
		return nil, fmt.Errorf("query mission history: %w", err)
	}
	return scanMissions(rows)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	defer s.observe(time.Now())
	return s.db.Ping(ctx)
}

const selectMissionsSQL = `
	SELECT
		id::text,
		mission_number,
		mission_text,
		platform,
		topic,
		style,
		goal,
		time_minutes,
		created_at
	FROM generated_missions
`

func scanMissions(rows pgx.Rows) ([]mission.Mission, error) {
	defer rows.Close()

	records := make([]mission.Mission, 0)
	for rows.Next() {
		var (
			item                  mission.Mission
			platform, style, goal string
		)
		if err := rows.Scan(
			&item.ID,
			&item.MissionNumber,
			&item.MissionText,
			&platform,
			&item.Topic,
			&style,
			&goal,
			&item.TimeMinutes,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan mission: %w", err)
		}
		item.Platform = mission.Platform(platform)
		item.Style = mission.Style(style)
		item.Goal = mission.Goal(goal)
		item.CreatedAt = item.CreatedAt.UTC()
		records = append(records, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read missions: %w", err)
	}
	return records, nil
}
