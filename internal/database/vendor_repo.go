package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/saathi-app/saathi/internal/models"
)

var ErrVendorNotFound = errors.New("vendor profile not found")

// UpsertVendor creates or replaces the vendor profile owned by userID.
func (db *DB) UpsertVendor(ctx context.Context, userID int, req *models.UpdateVendorRequest) (*models.Vendor, error) {
	vendor := &models.Vendor{UserID: userID}

	err := db.Pool.QueryRow(ctx, `
		INSERT INTO vendors (user_id, business_name, needs, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			needs = EXCLUDED.needs,
			location = EXCLUDED.location,
			updated_at = NOW()
		RETURNING id, business_name, needs, location, created_at, updated_at
	`, userID, req.BusinessName, req.Needs, req.Location).Scan(
		&vendor.ID,
		&vendor.BusinessName,
		&vendor.Needs,
		&vendor.Location,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return vendor, nil
}

// GetVendorByUserID retrieves the vendor profile owned by userID.
func (db *DB) GetVendorByUserID(ctx context.Context, userID int) (*models.Vendor, error) {
	vendor := &models.Vendor{UserID: userID}

	err := db.Pool.QueryRow(ctx, `
		SELECT id, business_name, needs, location, created_at, updated_at
		FROM vendors
		WHERE user_id = $1
	`, userID).Scan(
		&vendor.ID,
		&vendor.BusinessName,
		&vendor.Needs,
		&vendor.Location,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	return vendor, nil
}
