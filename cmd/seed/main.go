package main

import (
	"context"
	"log"

	"attentionops/backend/internal/catalog"
	"attentionops/backend/internal/config"
	"attentionops/backend/internal/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	applied, err := db.RunMigrations(ctx, pool, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	for _, version := range applied {
		log.Printf("applied migration %s", version)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("begin seed tx failed: %v", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	templates, photos, err := catalog.Seed(ctx, tx)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("commit seed failed: %v", err)
	}

	log.Printf("seed completed: %d templates, %d photos", templates, photos)
}
