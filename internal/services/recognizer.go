package services

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrEmptyImage      = errors.New("image is empty")
	ErrUnreadableImage = errors.New("image could not be decoded")
	ErrOCRDisabled     = errors.New("OCR is disabled")
	ErrStorageMissing  = errors.New("storage is not configured")
)

// OCRResult contains the OCR processing result
type OCRResult struct {
	Text string
}

// TextRecognizer turns an image into receipt text
type TextRecognizer interface {
	ProcessImage(ctx context.Context, imageBytes []byte) (*OCRResult, error)
}

// splitLanguages turns "vie+eng" or "vie,eng" into tesseract language codes
func splitLanguages(languages string) []string {
	langs := strings.FieldsFunc(languages, func(r rune) bool {
		return r == '+' || r == ',' || r == ' '
	})
	if len(langs) == 0 {
		return []string{"eng"}
	}
	return langs
}
