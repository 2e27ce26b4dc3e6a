package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"attentionops/backend/internal/db"
	"attentionops/backend/internal/mission"
)

func TestStaticCatalogTemplates(t *testing.T) {
	ctx := context.Background()
	c := NewStaticCatalog()

	templates, err := c.Templates(ctx)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) != 12 {
		t.Fatalf("expected 12 templates, got %d", len(templates))
	}

	ids := map[string]struct{}{}
	for _, item := range templates {
		if item.ID == "" {
			t.Fatalf("template %q has no id", item.Title)
		}
		ids[item.ID] = struct{}{}
		if !mission.ValidCategory(item.Category) {
			t.Fatalf("template %q has unknown category %q", item.Title, item.Category)
		}
		if _, ok := mission.ParsePlatform(item.Platform); !ok {
			t.Fatalf("template %q has unknown platform %q", item.Title, item.Platform)
		}
		if !mission.ValidTimeMinutes(item.TimeMinutes) {
			t.Fatalf("template %q has unsupported time %d", item.Title, item.TimeMinutes)
		}
	}
	if len(ids) != len(templates) {
		t.Fatalf("template ids must be unique")
	}

	again, _ := NewStaticCatalog().Templates(ctx)
	if again[0].ID != templates[0].ID {
		t.Fatalf("template ids must be stable across instances")
	}
}

func TestStaticCatalogTemplatesByCategory(t *testing.T) {
	ctx := context.Background()
	c := NewStaticCatalog()

	business, err := c.TemplatesByCategory(ctx, " Business ")
	if err != nil {
		t.Fatalf("templates by category: %v", err)
	}
	if len(business) != 6 {
		t.Fatalf("expected 6 business templates, got %d", len(business))
	}
	for _, item := range business {
		if item.Category != "business" {
			t.Fatalf("unexpected category %q", item.Category)
		}
	}

	none, err := c.TemplatesByCategory(ctx, "cooking")
	if err != nil {
		t.Fatalf("templates by unknown category: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestStaticCatalogReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewStaticCatalog()

	first, _ := c.Templates(ctx)
	first[0].Title = "mutated"
	second, _ := c.Templates(ctx)
	if second[0].Title == "mutated" {
		t.Fatalf("catalog must not expose its backing slice")
	}
}

func TestStaticCatalogPhotos(t *testing.T) {
	photos, err := NewStaticCatalog().Photos(context.Background())
	if err != nil {
		t.Fatalf("photos: %v", err)
	}
	if len(photos) != 6 {
		t.Fatalf("expected 6 photos, got %d", len(photos))
	}
	for _, photo := range photos {
		if photo.ID == "" || photo.ImageURL == "" || photo.VeteranName == "" {
			t.Fatalf("incomplete photo: %#v", photo)
		}
	}
	if photos[0].BusinessName == nil || *photos[0].BusinessName != "Veteran Career Solutions" {
		t.Fatalf("unexpected business name: %v", photos[0].BusinessName)
	}
}

func TestPostgresCatalogSeedIntegration(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, databaseURL)
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if _, err := db.RunMigrations(ctx, pool, filepath.Join("..", "..", "migrations")); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		templates, photos, err := Seed(ctx, pool)
		if err != nil {
			t.Fatalf("seed run %d failed: %v", i, err)
		}
		if templates != 12 || photos != 6 {
			t.Fatalf("unexpected seed counts: templates=%d photos=%d", templates, photos)
		}
	}

	c := NewPostgresCatalog(pool)
	templates, err := c.Templates(ctx)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) < 12 {
		t.Fatalf("expected seeded templates, got %d", len(templates))
	}
	if templates[0].Title != "LinkedIn Connection Blitz" {
		t.Fatalf("templates must keep seed order, got %q first", templates[0].Title)
	}

	fitness, err := c.TemplatesByCategory(ctx, "fitness")
	if err != nil {
		t.Fatalf("templates by category: %v", err)
	}
	if len(fitness) != 1 {
		t.Fatalf("expected 1 fitness template, got %d", len(fitness))
	}

	photos, err := c.Photos(ctx)
	if err != nil {
		t.Fatalf("photos: %v", err)
	}
	if len(photos) != 6 {
		t.Fatalf("expected 6 photos, got %d", len(photos))
	}
}
