package handlers

import (
	"bytes"
	"errors"
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/saathi-app/saathi/internal/database"
	"github.com/saathi-app/saathi/internal/middleware"
	"github.com/saathi-app/saathi/internal/models"
	"github.com/saathi-app/saathi/internal/services"
)

const maxBillSizeBytes = 10 * 1024 * 1024

// presignedURLExpiry limits how long a bill image link stays valid.
const presignedURLExpiry = 15 * time.Minute

// UploadBill accepts a bill image, stores it, runs OCR over it and records
// the raw materials found on it.
func (h *Handler) UploadBill(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	// Get the uploaded file
	file, err := c.FormFile("image")
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "image file is required")
	}

	// Validate file type
	contentType := file.Header.Get("Content-Type")
	if !isValidImageType(contentType) {
		return Error(c, fiber.StatusBadRequest, "invalid image type. Supported: JPEG, PNG, WebP")
	}

	// Validate file size (max 10MB)
	if file.Size > maxBillSizeBytes {
		return Error(c, fiber.StatusBadRequest, "file too large. Maximum size is 10MB")
	}

	s3Key := services.BillObjectKey(userID, file.Filename)

	src, err := file.Open()
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to read file")
	}
	defer src.Close()

	// Read file into memory for both the storage upload and OCR
	imageBytes, err := io.ReadAll(src)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to read file")
	}

	uploadResult, err := h.storage.Upload(c.Context(), s3Key, bytes.NewReader(imageBytes), file.Size, contentType)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to upload image")
	}

	bill, err := h.db.CreateBill(c.Context(), &models.CreateBillRequest{
		UserID:           userID,
		S3Bucket:         uploadResult.Bucket,
		S3Key:            s3Key,
		OriginalFilename: file.Filename,
		ContentType:      contentType,
		FileSizeBytes:    file.Size,
	})
	if err != nil {
		// Clean up storage on failure
		if deleteErr := h.storage.Delete(c.Context(), s3Key); deleteErr != nil {
			log.Printf("Warning: Failed to clean up object %s after bill creation failure: %v", s3Key, deleteErr)
		}
		return Error(c, fiber.StatusInternalServerError, "failed to create bill record")
	}

	if err := h.db.UpdateBillStatus(c.Context(), bill.ID, models.BillStatusProcessing, nil, nil); err != nil {
		log.Printf("Warning: Failed to update bill %d status to processing: %v", bill.ID, err)
	}

	ocrResult, err := h.ocr.ExtractText(imageBytes)
	if err != nil {
		errMsg := err.Error()
		if statusErr := h.db.UpdateBillStatus(c.Context(), bill.ID, models.BillStatusFailed, nil, &errMsg); statusErr != nil {
			log.Printf("Warning: Failed to update bill %d status to failed: %v", bill.ID, statusErr)
		}
		return Error(c, fiber.StatusInternalServerError, "OCR processing failed")
	}

	materials := services.ParseRawMaterials(ocrResult.Text)
	if err := h.db.UpdateBillMaterials(c.Context(), bill.ID, materials); err != nil {
		log.Printf("Warning: Failed to store materials for bill %d: %v", bill.ID, err)
	}

	if err := h.db.UpdateBillStatus(c.Context(), bill.ID, models.BillStatusCompleted, &ocrResult.Text, nil); err != nil {
		log.Printf("Warning: Failed to update bill %d status to completed: %v", bill.ID, err)
	}

	bill, err = h.db.GetBillByID(c.Context(), bill.ID, userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to load processed bill")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		Data:    bill,
	})
}

// ListBills returns the authenticated user's bills, newest first.
func (h *Handler) ListBills(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	bills, err := h.db.ListBillsByUser(c.Context(), userID)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to list bills")
	}

	return Success(c, fiber.Map{
		"bills": bills,
		"total": len(bills),
	})
}

// GetBill returns one of the authenticated user's bills, with a short-lived
// link to the stored image.
func (h *Handler) GetBill(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	billID, err := c.ParamsInt("id")
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid bill id")
	}

	bill, err := h.db.GetBillByID(c.Context(), billID, userID)
	if err != nil {
		if errors.Is(err, database.ErrBillNotFound) {
			return Error(c, fiber.StatusNotFound, "bill not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to get bill")
	}

	if url, err := h.storage.GetPresignedURL(c.Context(), bill.S3Key, presignedURLExpiry); err == nil {
		bill.ImageURL = &url
	} else {
		log.Printf("Warning: Failed to presign bill %d image: %v", bill.ID, err)
	}

	return Success(c, bill)
}

func isValidImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}
