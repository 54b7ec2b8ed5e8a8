package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/saathi-app/saathi/internal/models"
)

var ErrBillNotFound = errors.New("bill not found")

// CreateBill records a freshly uploaded bill image.
func (db *DB) CreateBill(ctx context.Context, req *models.CreateBillRequest) (*models.Bill, error) {
	bill := &models.Bill{UserID: req.UserID}

	err := db.Pool.QueryRow(ctx, `
		INSERT INTO bills (user_id, s3_bucket, s3_key, original_filename, content_type, file_size_bytes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', NOW(), NOW())
		RETURNING id, s3_bucket, s3_key, original_filename, content_type, file_size_bytes, status, raw_materials, created_at, updated_at
	`, req.UserID, req.S3Bucket, req.S3Key, req.OriginalFilename, req.ContentType, req.FileSizeBytes).Scan(
		&bill.ID,
		&bill.S3Bucket,
		&bill.S3Key,
		&bill.OriginalFilename,
		&bill.ContentType,
		&bill.FileSizeBytes,
		&bill.Status,
		&bill.RawMaterials,
		&bill.CreatedAt,
		&bill.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return bill, nil
}

// UpdateBillStatus moves a bill through its processing pipeline, optionally
// attaching the OCR text or an error message.
func (db *DB) UpdateBillStatus(ctx context.Context, id int, status models.BillStatus, ocrText, errorMessage *string) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE bills
		SET status = $2,
		    ocr_text = COALESCE($3, ocr_text),
		    error_message = $4,
		    updated_at = NOW()
		WHERE id = $1
	`, id, status, ocrText, errorMessage)
	return err
}

// UpdateBillMaterials stores the raw materials parsed from the OCR text.
func (db *DB) UpdateBillMaterials(ctx context.Context, id int, materials []string) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE bills SET raw_materials = $2, updated_at = NOW() WHERE id = $1
	`, id, materials)
	return err
}

// GetBillByID retrieves one bill, scoped to its owner.
func (db *DB) GetBillByID(ctx context.Context, id, userID int) (*models.Bill, error) {
	bill := &models.Bill{ID: id}

	err := db.Pool.QueryRow(ctx, `
		SELECT user_id, s3_bucket, s3_key, original_filename, content_type, file_size_bytes,
			status, ocr_text, raw_materials, error_message, created_at, updated_at
		FROM bills
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&bill.UserID,
		&bill.S3Bucket,
		&bill.S3Key,
		&bill.OriginalFilename,
		&bill.ContentType,
		&bill.FileSizeBytes,
		&bill.Status,
		&bill.OCRText,
		&bill.RawMaterials,
		&bill.ErrorMessage,
		&bill.CreatedAt,
		&bill.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	return bill, nil
}

// ListBillsByUser returns the user's bills, newest first.
func (db *DB) ListBillsByUser(ctx context.Context, userID int) ([]models.Bill, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, s3_bucket, s3_key, original_filename, content_type, file_size_bytes,
			status, ocr_text, raw_materials, error_message, created_at, updated_at
		FROM bills
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bills := []models.Bill{}
	for rows.Next() {
		var bill models.Bill
		err := rows.Scan(
			&bill.ID,
			&bill.UserID,
			&bill.S3Bucket,
			&bill.S3Key,
			&bill.OriginalFilename,
			&bill.ContentType,
			&bill.FileSizeBytes,
			&bill.Status,
			&bill.OCRText,
			&bill.RawMaterials,
			&bill.ErrorMessage,
			&bill.CreatedAt,
			&bill.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}

	return bills, rows.Err()
}
