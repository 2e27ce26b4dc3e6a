package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCatalog struct {
	db *pgxpool.Pool
}

func NewPostgresCatalog(db *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

const selectTemplatesSQL = `
	SELECT
		id::text,
		title,
		description,
		category,
		time_minutes,
		platform,
		mission_text
	FROM mission_templates
`

func (c *PostgresCatalog) Templates(ctx context.Context) ([]MissionTemplate, error) {
	rows, err := c.db.Query(ctx, selectTemplatesSQL+`
		ORDER BY position, title
	`)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	return scanTemplates(rows)
}

func (c *PostgresCatalog) TemplatesByCategory(ctx context.Context, category string) ([]MissionTemplate, error) {
	rows, err := c.db.Query(ctx, selectTemplatesSQL+`
		WHERE category = $1
		ORDER BY position, title
	`, NormalizeCategory(category))
	if err != nil {
		return nil, fmt.Errorf("query templates by category: %w", err)
	}
	return scanTemplates(rows)
}

func (c *PostgresCatalog) Photos(ctx context.Context) ([]Photo, error) {
	rows, err := c.db.Query(ctx, `
		SELECT
			id::text,
			image_url,
			veteran_name,
			mission_accomplished,
			business_name
		FROM photos
		ORDER BY position, veteran_name
	`)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	photos := make([]Photo, 0)
	for rows.Next() {
		var item Photo
		if err := rows.Scan(
			&item.ID,
			&item.ImageURL,
			&item.VeteranName,
			&item.MissionAccomplished,
			&item.BusinessName,
		); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read photos: %w", err)
	}
	return photos, nil
}

func (c *PostgresCatalog) Ping(ctx context.Context) error {
	return c.db.Ping(ctx)
}

func scanTemplates(rows pgx.Rows) ([]MissionTemplate, error) {
	defer rows.Close()

	templates := make([]MissionTemplate, 0)
	for rows.Next() {
		var item MissionTemplate
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.Category,
			&item.TimeMinutes,
			&item.Platform,
			&item.MissionText,
		); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return templates, nil
}

// Executor is satisfied by *pgxpool.Pool and pgx.Tx.
type Executor interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
}

// Seed upserts the built-in templates and photos. Ids are deterministic, so
// running it repeatedly converges on the same rows.
func Seed(ctx context.Context, executor Executor) (templates int, photos int, err error) {
	for position, item := range SeedTemplates() {
		if _, err := executor.Exec(ctx, `
			INSERT INTO mission_templates(id, title, description, category, time_minutes, platform, mission_text, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE
			SET title=EXCLUDED.title,
				description=EXCLUDED.description,
				category=EXCLUDED.category,
				time_minutes=EXCLUDED.time_minutes,
				platform=EXCLUDED.platform,
				mission_text=EXCLUDED.mission_text,
				position=EXCLUDED.position
		`, item.ID, item.Title, item.Description, item.Category, item.TimeMinutes, item.Platform, item.MissionText, position); err != nil {
			return templates, photos, fmt.Errorf("seed template %q: %w", item.Title, err)
		}
		templates++
	}

	for position, item := range SeedPhotos() {
		if _, err := executor.Exec(ctx, `
			INSERT INTO photos(id, image_url, veteran_name, mission_accomplished, business_name, position)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE
			SET image_url=EXCLUDED.image_url,
				veteran_name=EXCLUDED.veteran_name,
				mission_accomplished=EXCLUDED.mission_accomplished,
				business_name=EXCLUDED.business_name,
				position=EXCLUDED.position
		`, item.ID, item.ImageURL, item.VeteranName, item.MissionAccomplished, item.BusinessName, position); err != nil {
			return templates, photos, fmt.Errorf("seed photo %q: %w", item.VeteranName, err)
		}
		photos++
	}

	return templates, photos, nil
}
