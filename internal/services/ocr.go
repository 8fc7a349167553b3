//go:build !windows

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/foxxcyber/billscan/internal/observability"
)

// OCRService handles optical character recognition.
// The tesseract client is not safe for concurrent use, so calls are serialized.
type OCRService struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// NewOCRService creates a new OCR service for the given tesseract languages, e.g. "vie+eng"
func NewOCRService(languages string) (*OCRService, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage(splitLanguages(languages)...); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}

	// PSM 6 = Assume a single uniform block of text
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	// Keep the interword spacing receipts use to separate names from prices
	if err := client.SetVariable("preserve_interword_spaces", "1"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR variable: %w", err)
	}

	return &OCRService{
		client: client,
	}, nil
}

// ProcessImage extracts text from an encoded image
func (s *OCRService) ProcessImage(ctx context.Context, imageBytes []byte) (*OCRResult, error) {
	if len(imageBytes) == 0 {
		return nil, ErrEmptyImage
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	defer func() {
		observability.OCRDuration.Observe(time.Since(start).Seconds())
	}()

	if err := s.client.SetImageFromBytes(imageBytes); err != nil {
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
