package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
)

// catalogNamespace keys the deterministic UUIDv5 ids of seed entries.
var catalogNamespace = uuid.MustParse("6f1d8e52-6c1f-4f0b-9a55-2c9d2b7e4a10")

type MissionTemplate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TimeMinutes int    `json:"timeMinutes"`
	Platform    string `json:"platform"`
	MissionText string `json:"missionText"`
}

type Photo struct {
	ID                  string  `json:"id"`
	ImageURL            string  `json:"imageUrl"`
	VeteranName         string  `json:"veteranName"`
	MissionAccomplished string  `json:"missionAccomplished"`
	BusinessName        *string `json:"businessName"`
}

// Catalog serves read-only seed content.
type Catalog interface {
	Templates(ctx context.Context) ([]MissionTemplate, error)
	TemplatesByCategory(ctx context.Context, category string) ([]MissionTemplate, error)
	Photos(ctx context.Context) ([]Photo, error)
}

type StaticCatalog struct {
	templates []MissionTemplate
	photos    []Photo
}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		templates: SeedTemplates(),
		photos:    SeedPhotos(),
	}
}

func (c *StaticCatalog) Templates(_ context.Context) ([]MissionTemplate, error) {
	out := make([]MissionTemplate, len(c.templates))
	copy(out, c.templates)
	return out, nil
}

func (c *StaticCatalog) TemplatesByCategory(_ context.Context, category string) ([]MissionTemplate, error) {
	clean := NormalizeCategory(category)
	out := make([]MissionTemplate, 0)
	for _, item := range c.templates {
		if item.Category == clean {
			out = append(out, item)
		}
	}
	return out, nil
}

func (c *StaticCatalog) Photos(_ context.Context) ([]Photo, error) {
	out := make([]Photo, len(c.photos))
	copy(out, c.photos)
	return out, nil
}

func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func seedID(kind, key string) string {
	return uuid.NewSHA1(catalogNamespace, []byte(kind+":"+key)).String()
}
