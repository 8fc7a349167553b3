//go:build windows

package services

import (
	"context"
	"errors"
)

var errOCRUnavailable = errors.New("OCR service is not available on Windows - run in Docker container")

// OCRService handles optical character recognition (stub for Windows)
type OCRService struct{}

// NewOCRService creates a new OCR service (not available on Windows)
func NewOCRService(languages string) (*OCRService, error) {
	return nil, errOCRUnavailable
}

// ProcessImage extracts text from an encoded image
func (s *OCRService) ProcessImage(ctx context.Context, imageBytes []byte) (*OCRResult, error) {
	return nil, errOCRUnavailable
}

// Close releases OCR resources
func (s *OCRService) Close() error {
	return nil
}
