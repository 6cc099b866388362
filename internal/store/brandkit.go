// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"adforge/internal/models"
)

// BrandKitStore handles all brand kit database operations.
type BrandKitStore struct {
	db *sql.DB
}

// NewBrandKitStore creates a new BrandKitStore with the given connection.
func NewBrandKitStore(db *sql.DB) *BrandKitStore {
	return &BrandKitStore{db: db}
}

// kitColumns lists the columns selected in brand kit queries.
const kitColumns = `id, name, logo_url, primary_color, secondary_color, font_family, is_active, created_at, updated_at`

// scanKit scans a brand kit row from the result set.
func scanKit(scanner interface{ Scan(...any) error }) (*models.BrandKit, error) {
	var k models.BrandKit
	err := scanner.Scan(
		&k.ID, &k.Name, &k.LogoURL, &k.PrimaryColor, &k.SecondaryColor,
		&k.FontFamily, &k.IsActive, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// List returns all brand kits ordered by creation date descending.
func (s *BrandKitStore) List() ([]models.BrandKit, error) {
	rows, err := s.db.Query(`
		SELECT ` + kitColumns + `
		FROM brand_kits
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list brand kits: %w", err)
	}
	defer rows.Close()

	var items []models.BrandKit
	for rows.Next() {
		k, err := scanKit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand kit: %w", err)
		}
		items = append(items, *k)
	}
	return items, rows.Err()
}

// FindByID retrieves a brand kit by its UUID. Returns nil if not found.
func (s *BrandKitStore) FindByID(id uuid.UUID) (*models.BrandKit, error) {
	row := s.db.QueryRow(`SELECT `+kitColumns+` FROM brand_kits WHERE id = $1`, id)
	k, err := scanKit(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find brand kit by id: %w", err)
	}
	return k, nil
}

// FindActive returns the currently active brand kit, or nil if none is active.
func (s *BrandKitStore) FindActive() (*models.BrandKit, error) {
	row := s.db.QueryRow(`SELECT ` + kitColumns + ` FROM brand_kits WHERE is_active = TRUE LIMIT 1`)
	k, err := scanKit(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active brand kit: %w", err)
	}
	return k, nil
}

// Create inserts a new brand kit. Does NOT activate it automatically.
func (s *BrandKitStore) Create(k *models.BrandKit) (*models.BrandKit, error) {
	row := s.db.QueryRow(`
		INSERT INTO brand_kits (name, logo_url, primary_color, secondary_color, font_family, is_active)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING `+kitColumns,
		k.Name, k.LogoURL, k.PrimaryColor, k.SecondaryColor, k.FontFamily,
	)
	result, err := scanKit(row)
	if err != nil {
		return nil, fmt.Errorf("create brand kit: %w", err)
	}
	return result, nil
}

// Update modifies a brand kit's theming fields.
func (s *BrandKitStore) Update(k *models.BrandKit) error {
	_, err := s.db.Exec(`
		UPDATE brand_kits SET
			name = $1, logo_url = $2, primary_color = $3, secondary_color = $4,
			font_family = $5, updated_at = NOW()
		WHERE id = $6
	`, k.Name, k.LogoURL, k.PrimaryColor, k.SecondaryColor, k.FontFamily, k.ID)
	if err != nil {
		return fmt.Errorf("update brand kit: %w", err)
	}
	return nil
}

// Activate makes a kit the active one, deactivating all others. Uses a
// transaction so at most one kit is ever active.
func (s *BrandKitStore) Activate(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE brand_kits SET is_active = FALSE WHERE is_active = TRUE`); err != nil {
		return fmt.Errorf("deactivate brand kits: %w", err)
	}

	result, err := tx.Exec(`UPDATE brand_kits SET is_active = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("activate brand kit: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("activate brand kit: not found")
	}

	return tx.Commit()
}

// Delete removes a brand kit by ID. Cannot delete the active kit.
func (s *BrandKitStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM brand_kits WHERE id = $1 AND is_active = FALSE`, id)
	if err != nil {
		return fmt.Errorf("delete brand kit: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("cannot delete: brand kit is active or not found")
	}
	return nil
}
