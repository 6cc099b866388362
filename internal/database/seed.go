package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data. It creates a
// starter brand kit if none exists, so the generate endpoint can be
// exercised with theming straight away.
func Seed(db *sql.DB) error {
	// Check if any brand kits exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM brand_kits").Scan(&count); err != nil {
		return fmt.Errorf("seed check brand kits: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO brand_kits (name, primary_color, secondary_color, font_family, is_active)
		VALUES ($1, $2, $3, $4, $5)
	`, "Starter Kit", "#7c3aed", "#2563eb", "Inter", true)
	if err != nil {
		return fmt.Errorf("seed insert brand kit: %w", err)
	}

	slog.Info("database seeded with starter brand kit")
	return nil
}
