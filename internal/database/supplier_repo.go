package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/saathi-app/saathi/internal/models"
)

var ErrSupplierNotFound = errors.New("supplier profile not found")

// UpsertSupplier creates or replaces the supplier profile owned by userID.
func (db *DB) UpsertSupplier(ctx context.Context, userID int, req *models.UpdateSupplierRequest) (*models.Supplier, error) {
	sup := &models.Supplier{UserID: userID}

	err := db.Pool.QueryRow(ctx, `
		INSERT INTO suppliers (user_id, business_name, items, price_range, delivery_time, description, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			items = EXCLUDED.items,
			price_range = EXCLUDED.price_range,
			delivery_time = EXCLUDED.delivery_time,
			description = EXCLUDED.description,
			address = EXCLUDED.address,
			updated_at = NOW()
		RETURNING id, business_name, items, rating, total_ratings, price_range, delivery_time, COALESCE(description, ''), address, created_at, updated_at
	`, userID, req.BusinessName, req.Items, req.PriceRange, req.DeliveryTime, req.Description, req.Address).Scan(
		&sup.ID,
		&sup.Name,
		&sup.Items,
		&sup.Rating,
		&sup.TotalRatings,
		&sup.PriceRange,
		&sup.DeliveryTime,
		&sup.Description,
		&sup.Address,
		&sup.CreatedAt,
		&sup.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Location lives on the owning user record.
	err = db.Pool.QueryRow(ctx,
		`SELECT COALESCE(location, '') FROM users WHERE id = $1`, userID,
	).Scan(&sup.Location)
	if err != nil {
		return nil, err
	}

	return sup, nil
}

// GetSupplierByUserID retrieves the supplier profile owned by userID.
func (db *DB) GetSupplierByUserID(ctx context.Context, userID int) (*models.Supplier, error) {
	sup := &models.Supplier{UserID: userID}

	err := db.Pool.QueryRow(ctx, `
		SELECT s.id, s.business_name, COALESCE(u.location, ''), s.items, s.rating, s.total_ratings,
			s.price_range, s.delivery_time, COALESCE(s.description, ''), s.address, s.created_at, s.updated_at
		FROM suppliers s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1
	`, userID).Scan(
		&sup.ID,
		&sup.Name,
		&sup.Location,
		&sup.Items,
		&sup.Rating,
		&sup.TotalRatings,
		&sup.PriceRange,
		&sup.DeliveryTime,
		&sup.Description,
		&sup.Address,
		&sup.CreatedAt,
		&sup.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	return sup, nil
}

// FetchAllSuppliers returns the full supplier catalog in id order, location
// taken from the owning user. This is the query behind the recommendation
// engine's catalog source.
func (db *DB) FetchAllSuppliers(ctx context.Context) ([]models.Supplier, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT s.id, s.business_name, COALESCE(u.location, ''), s.items, s.rating, s.total_ratings,
			s.price_range, s.delivery_time, COALESCE(s.description, '')
		FROM suppliers s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []models.Supplier
	for rows.Next() {
		var sup models.Supplier
		err := rows.Scan(
			&sup.ID,
			&sup.Name,
			&sup.Location,
			&sup.Items,
			&sup.Rating,
			&sup.TotalRatings,
			&sup.PriceRange,
			&sup.DeliveryTime,
			&sup.Description,
		)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, sup)
	}

	return suppliers, rows.Err()
}

// CatalogSource adapts the suppliers table to the recommendation engine's
// fetch-all contract.
type CatalogSource struct {
	db *DB
}

// NewCatalogSource creates a database-backed catalog source.
func NewCatalogSource(db *DB) *CatalogSource {
	return &CatalogSource{db: db}
}

// FetchAll returns the current supplier catalog.
func (s *CatalogSource) FetchAll(ctx context.Context) ([]models.Supplier, error) {
	return s.db.FetchAllSuppliers(ctx)
}
