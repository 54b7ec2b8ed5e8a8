package services

import (
	"fmt"
	"os"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// OCRService extracts text from bill images. It is a thin wrapper over a
// single tesseract client; the mutex serializes calls because the client is
// not safe for concurrent use.
type OCRService struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// OCRResult contains the OCR processing result
type OCRResult struct {
	Text string
}

// NewOCRService creates a new OCR service
func NewOCRService() (*OCRService, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}

	// Bills are a single block of printed text.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	return &OCRService{client: client}, nil
}

// ExtractText runs OCR over an image held in memory and returns the text.
func (s *OCRService) ExtractText(imageBytes []byte) (*OCRResult, error) {
	tmpFile, err := os.CreateTemp("", "bill-*.img")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(imageBytes); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush temp file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.client.SetImage(tmpFile.Name()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := s.client.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	return &OCRResult{Text: text}, nil
}

// Close releases OCR resources
func (s *OCRService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
