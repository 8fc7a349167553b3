package handlers

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/foxxcyber/billscan/internal/config"
	"github.com/foxxcyber/billscan/internal/database"
	"github.com/foxxcyber/billscan/internal/middleware"
	"github.com/foxxcyber/billscan/internal/models"
	"github.com/foxxcyber/billscan/internal/services"
)

// BillHandler handles receipt parsing and stored bills
type BillHandler struct {
	cfg   *config.Config
	bills *services.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(cfg *config.Config, bills *services.BillService) *BillHandler {
	return &BillHandler{
		cfg:   cfg,
		bills: bills,
	}
}

// ParseText runs receipt text through the extraction engine without storing anything
func (h *BillHandler) ParseText(c *fiber.Ctx) error {
	var req models.ParseTextRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	return Success(c, services.ParseText(req.Text, services.SourceText))
}

// CreateFromText parses receipt text and stores the result
func (h *BillHandler) CreateFromText(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req models.ParseTextRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return Error(c, fiber.StatusBadRequest, "text is required")
	}

	bill, err := h.bills.SaveText(c.UserContext(), userID, req.Text)
	if err != nil {
		return h.billError(c, err, "failed to save bill")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: bill})
}

// ScanImage handles receipt image upload, OCR and parsing
func (h *BillHandler) ScanImage(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "image file is required")
	}

	contentType := file.Header.Get("Content-Type")
	if !isValidImageType(contentType) {
		return Error(c, fiber.StatusBadRequest, "invalid image type. Supported: JPEG, PNG, WebP, HEIC, PDF")
	}

	if file.Size > int64(h.cfg.MaxUploadBytes()) {
		return Error(c, fiber.StatusBadRequest, "file too large")
	}

	src, err := file.Open()
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to read file")
	}
	defer src.Close()

	imageBytes, err := io.ReadAll(src)
	if err != nil {
		return Error(c, fiber.StatusInternalServerError, "failed to read file")
	}

	bill, err := h.bills.ScanImage(c.UserContext(), userID, file.Filename, contentType, imageBytes)
	if err != nil {
		return h.billError(c, err, "failed to process receipt")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{Success: true, Data: bill})
}

// ListBills returns a paginated list of the user's bills
func (h *BillHandler) ListBills(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	params := &models.BillListParams{UserID: userID}
	params.Limit, params.Offset = pagination(c)
	if status := c.Query("status"); status != "" {
		params.Status = &status
	}

	bills, total, err := h.bills.ListBills(c.UserContext(), params)
	if err != nil {
		return h.billError(c, err, "failed to list bills")
	}

	return SuccessWithMeta(c, bills, total, params.Limit, params.Offset)
}

// GetBill returns a single bill with items
func (h *BillHandler) GetBill(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, ok := pathID(c)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "invalid bill ID")
	}

	bill, err := h.bills.GetBill(c.UserContext(), id, userID)
	if err != nil {
		return h.billError(c, err, "failed to get bill")
	}

	return Success(c, bill)
}

// GetBillImage returns a presigned URL for the bill image
func (h *BillHandler) GetBillImage(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, ok := pathID(c)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "invalid bill ID")
	}

	url, err := h.bills.ImageURL(c.UserContext(), id, userID)
	if err != nil {
		return h.billError(c, err, "failed to generate image URL")
	}

	return Success(c, fiber.Map{"url": url})
}

// DeleteBill deletes a bill and its image
func (h *BillHandler) DeleteBill(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, ok := pathID(c)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "invalid bill ID")
	}

	if err := h.bills.DeleteBill(c.UserContext(), id, userID); err != nil {
		return h.billError(c, err, "failed to delete bill")
	}

	return Success(c, fiber.Map{"deleted": true})
}

// ExportBills downloads the user's bills and items as an Excel workbook
func (h *BillHandler) ExportBills(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return Error(c, fiber.StatusUnauthorized, "unauthorized")
	}

	data, err := h.bills.ExportXLSX(c.UserContext(), userID)
	if err != nil {
		return h.billError(c, err, "failed to export bills")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bills.xlsx"`)
	return c.Send(data)
}

func (h *BillHandler) billError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, database.ErrBillNotFound):
		return Error(c, fiber.StatusNotFound, "bill not found")
	case errors.Is(err, services.ErrNoImage):
		return Error(c, fiber.StatusNotFound, "bill has no image")
	case errors.Is(err, services.ErrEmptyImage), errors.Is(err, services.ErrUnreadableImage):
		return Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrOCRDisabled), errors.Is(err, services.ErrStorageMissing):
		return Error(c, fiber.StatusServiceUnavailable, err.Error())
	}

	log.Printf("Warning: %s: %v", message, err)
	return Error(c, fiber.StatusInternalServerError, message)
}

// isValidImageType checks if the content type is a valid image
func isValidImageType(contentType string) bool {
	validTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/webp",
		"image/heic",
		"image/heif",
		"application/pdf",
	}

	for _, t := range validTypes {
		if strings.EqualFold(contentType, t) {
			return true
		}
	}
	return false
}
