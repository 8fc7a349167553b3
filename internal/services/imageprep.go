package services

import (
	"bytes"
	"fmt"
	"image/png"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/gen2brain/heic"
)

// Tesseract reads JPEG, PNG and WebP directly. HEIC photos and PDF receipts are
// rendered to PNG before recognition.

// PrepareForOCR returns image bytes tesseract can read
func PrepareForOCR(data []byte, contentType string) ([]byte, error) {
	mimeType := strings.ToLower(strings.TrimSpace(contentType))

	switch {
	case mimeType == "application/pdf":
		return pdfToPNG(data)
	case isHEICMimeType(mimeType) || isHEICFormat(data):
		return heicToPNG(data)
	}
	return data, nil
}

// ImageContentType sniffs the content type of an image read from disk, falling
// back to the file extension when the bytes are not recognized.
func ImageContentType(filename string, data []byte) string {
	if sniffed := http.DetectContentType(data); sniffed != "application/octet-stream" {
		return baseMimeType(sniffed)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".heic", ".heif":
		return "image/" + ext[1:]
	}
	if byExt := mime.TypeByExtension(ext); byExt != "" {
		return baseMimeType(byExt)
	}
	return "application/octet-stream"
}

// pdfToPNG renders the first page; receipts are almost always a single page
func pdfToPNG(data []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(0, 300)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func heicToPNG(data []byte) ([]byte, error) {
	img, err := heic.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding HEIC/HEIF image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// isHEICFormat checks for an ftyp box with a HEIC/HEIF brand
func isHEICFormat(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heix", "heif", "mif1", "msf1":
		return true
	}
	return false
}

func baseMimeType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(mediaType)
}

func isHEICMimeType(mimeType string) bool {
	return mimeType == "image/heic" || mimeType == "image/heif"
}
