package models

import (
	"time"
)

// BillStatus tracks a bill scan through its processing pipeline.
type BillStatus string

const (
	BillStatusPending    BillStatus = "pending"
	BillStatusProcessing BillStatus = "processing"
	BillStatusCompleted  BillStatus = "completed"
	BillStatusFailed     BillStatus = "failed"
)

// Bill is an uploaded bill image and the text/materials extracted from it.
type Bill struct {
	ID               int        `json:"id"`
	UserID           int        `json:"user_id"`
	S3Bucket         string     `json:"-"`
	S3Key            string     `json:"-"`
	OriginalFilename string     `json:"original_filename"`
	ContentType      string     `json:"content_type"`
	FileSizeBytes    int64      `json:"file_size_bytes"`
	Status           BillStatus `json:"status"`
	OCRText          *string    `json:"ocr_text,omitempty"`
	RawMaterials     []string   `json:"raw_materials"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// ImageURL is a short-lived presigned download link, filled in by the
	// handler when the bill is fetched individually.
	ImageURL *string `json:"image_url,omitempty"`
}

// CreateBillRequest carries the fields needed to record a freshly uploaded
// bill image before OCR runs.
type CreateBillRequest struct {
	UserID           int
	S3Bucket         string
	S3Key            string
	OriginalFilename string
	ContentType      string
	FileSizeBytes    int64
}
