package models

import (
	"time"
)

// DefaultCurrency is the only currency the extraction engine emits
const DefaultCurrency = "VND"

// BillItem is a single line item extracted from receipt text
type BillItem struct {
	Name      string `json:"name"`
	Amount    int64  `json:"amount"`
	Category  string `json:"category,omitempty"`
	Quantity  *int   `json:"quantity,omitempty"`
	UnitPrice *int64 `json:"unitPrice,omitempty"`
}

// BillData is the structured result of parsing one receipt text
type BillData struct {
	Items        []BillItem `json:"items"`
	StoreName    string     `json:"storeName,omitempty"`
	StoreAddress string     `json:"storeAddress,omitempty"`
	TotalAmount  int64      `json:"totalAmount"`
	Tax          int64      `json:"tax"`
	Currency     string     `json:"currency"`
	Date         string     `json:"date,omitempty"`
	Time         string     `json:"time,omitempty"`
	Confidence   float64    `json:"confidence"`
	RawText      string     `json:"rawText"`
}

// NewEmptyBill returns the zero-signal result for the given input
func NewEmptyBill(rawText string) BillData {
	return BillData{
		Items:    []BillItem{},
		Currency: DefaultCurrency,
		RawText:  rawText,
	}
}

// BillStatus represents the review status of a stored bill
type BillStatus string

const (
	BillStatusParsed      BillStatus = "parsed"
	BillStatusNeedsReview BillStatus = "needs_review"
)

// StatusForConfidence maps a parse confidence to the status a stored bill starts in.
// Zero-confidence or item-less results need manual entry.
func StatusForConfidence(bill BillData) BillStatus {
	if bill.Confidence == 0 || len(bill.Items) == 0 {
		return BillStatusNeedsReview
	}
	return BillStatusParsed
}

// Bill is a persisted receipt parse
type Bill struct {
	ID               int        `json:"id"`
	UserID           int        `json:"user_id"`
	Status           BillStatus `json:"status"`
	S3Bucket         *string    `json:"s3_bucket,omitempty"`
	S3Key            *string    `json:"s3_key,omitempty"`
	OriginalFilename *string    `json:"original_filename,omitempty"`
	StoreName        *string    `json:"store_name,omitempty"`
	StoreAddress     *string    `json:"store_address,omitempty"`
	TotalAmount      int64      `json:"total_amount"`
	Tax              int64      `json:"tax"`
	Currency         string     `json:"currency"`
	BillDate         *string    `json:"bill_date,omitempty"`
	BillTime         *string    `json:"bill_time,omitempty"`
	Confidence       float64    `json:"confidence"`
	RawText          string     `json:"raw_text"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// StoredBillItem is a persisted line item with its canonical category
type StoredBillItem struct {
	ID         int       `json:"id"`
	BillID     int       `json:"bill_id"`
	LineNumber int       `json:"line_number"`
	Name       string    `json:"name"`
	Amount     int64     `json:"amount"`
	Category   string    `json:"category"`
	Quantity   *int      `json:"quantity,omitempty"`
	UnitPrice  *int64    `json:"unit_price,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// BillWithItems includes the stored items
type BillWithItems struct {
	Bill
	Items    []StoredBillItem `json:"items"`
	ImageURL *string          `json:"image_url,omitempty"`
}

// CreateBillRequest is used when persisting a parsed bill
type CreateBillRequest struct {
	UserID           int
	S3Bucket         *string
	S3Key            *string
	OriginalFilename *string
	Data             BillData
	// Categories holds the canonical category per item, parallel to Data.Items
	Categories []string
}

// BillListParams contains parameters for listing bills
type BillListParams struct {
	Limit  int
	Offset int
	Status *string
	UserID int
}

// ParseTextRequest is the request body for parsing raw receipt text
type ParseTextRequest struct {
	Text string `json:"text"`
}
