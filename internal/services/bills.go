package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/foxxcyber/billscan/internal/categories"
	"github.com/foxxcyber/billscan/internal/models"
	"github.com/foxxcyber/billscan/internal/observability"
	"github.com/foxxcyber/billscan/internal/parser"
)

// Sources recorded in the parse metrics
const (
	SourceText  = "text"
	SourceImage = "image"
	SourceCLI   = "cli"
)

var ErrNoImage = errors.New("bill has no stored image")

// BillRepository persists parsed bills
type BillRepository interface {
	CreateBill(ctx context.Context, req *models.CreateBillRequest) (*models.BillWithItems, error)
	GetBillByID(ctx context.Context, id, userID int) (*models.BillWithItems, error)
	ListBills(ctx context.Context, params *models.BillListParams) ([]*models.Bill, int, error)
	DeleteBill(ctx context.Context, id, userID int) error
}

// BillService runs receipt images and text through the extraction engine
type BillService struct {
	repo          BillRepository
	ocr           TextRecognizer
	storage       ObjectStore
	presignExpiry time.Duration
}

// NewBillService wires the bill pipeline. ocr and storage may be nil when disabled.
func NewBillService(repo BillRepository, ocr TextRecognizer, storage ObjectStore, presignExpiry time.Duration) *BillService {
	return &BillService{
		repo:          repo,
		ocr:           ocr,
		storage:       storage,
		presignExpiry: presignExpiry,
	}
}

// ParseText extracts bill data from receipt text without storing it
func ParseText(text, source string) models.BillData {
	bill := parser.Parse(text)
	observability.ObserveBill(source, bill.Confidence, len(bill.Items))
	return bill
}

// ItemCategories returns the canonical category for each item, in item order
func ItemCategories(bill models.BillData) []string {
	mapped := make([]string, len(bill.Items))
	for i, item := range bill.Items {
		mapped[i] = categories.MapEngineCategory(item.Category)
	}
	return mapped
}

// ScanImage stores the image, recognizes its text, parses it and saves the result.
// A bill with no usable signal is still saved, in needs_review status.
func (s *BillService) ScanImage(ctx context.Context, userID int, filename, contentType string, image []byte) (*models.BillWithItems, error) {
	if s.ocr == nil {
		return nil, ErrOCRDisabled
	}
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}

	req := &models.CreateBillRequest{UserID: userID}
	if filename != "" {
		req.OriginalFilename = &filename
	}

	if s.storage != nil {
		upload, err := uploadBytes(ctx, s.storage, BillImageKey(userID, filename), image, contentType)
		if err != nil {
			return nil, err
		}
		req.S3Bucket = &upload.Bucket
		req.S3Key = &upload.Key
	}

	prepared, err := PrepareForOCR(image, contentType)
	if err != nil {
		s.discardImage(ctx, req.S3Key)
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	result, err := s.ocr.ProcessImage(ctx, prepared)
	if err != nil {
		s.discardImage(ctx, req.S3Key)
		return nil, fmt.Errorf("failed to recognize text: %w", err)
	}

	req.Data = ParseText(result.Text, SourceImage)
	req.Categories = ItemCategories(req.Data)

	bill, err := s.repo.CreateBill(ctx, req)
	if err != nil {
		s.discardImage(ctx, req.S3Key)
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}

	return bill, nil
}

// SaveText parses receipt text and saves the result
func (s *BillService) SaveText(ctx context.Context, userID int, text string) (*models.BillWithItems, error) {
	data := ParseText(text, SourceText)
	return s.repo.CreateBill(ctx, &models.CreateBillRequest{
		UserID:     userID,
		Data:       data,
		Categories: ItemCategories(data),
	})
}

// GetBill returns a stored bill, with a presigned image URL when one is stored
func (s *BillService) GetBill(ctx context.Context, id, userID int) (*models.BillWithItems, error) {
	bill, err := s.repo.GetBillByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if s.storage != nil && bill.S3Key != nil {
		url, err := s.storage.GetPresignedURL(ctx, *bill.S3Key, s.presignExpiry)
		if err != nil {
			log.Printf("Warning: failed to presign image for bill %d: %v", bill.ID, err)
		} else {
			bill.ImageURL = &url
		}
	}

	return bill, nil
}

// ImageURL returns a presigned URL for a bill's original image
func (s *BillService) ImageURL(ctx context.Context, id, userID int) (string, error) {
	bill, err := s.repo.GetBillByID(ctx, id, userID)
	if err != nil {
		return "", err
	}
	if bill.S3Key == nil {
		return "", ErrNoImage
	}
	if s.storage == nil {
		return "", ErrStorageMissing
	}
	return s.storage.GetPresignedURL(ctx, *bill.S3Key, s.presignExpiry)
}

// ListBills returns a page of a user's bills
func (s *BillService) ListBills(ctx context.Context, params *models.BillListParams) ([]*models.Bill, int, error) {
	return s.repo.ListBills(ctx, params)
}

// DeleteBill removes a bill and its stored image
func (s *BillService) DeleteBill(ctx context.Context, id, userID int) error {
	bill, err := s.repo.GetBillByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteBill(ctx, id, userID); err != nil {
		return err
	}

	s.discardImage(ctx, bill.S3Key)
	return nil
}

func (s *BillService) discardImage(ctx context.Context, key *string) {
	if s.storage == nil || key == nil {
		return
	}
	if err := s.storage.Delete(ctx, *key); err != nil {
		log.Printf("Warning: failed to delete image %s: %v", *key, err)
	}
}
