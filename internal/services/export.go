package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/foxxcyber/billscan/internal/models"
)

const (
	billsSheet   = "Bills"
	itemsSheet   = "Items"
	exportPage   = 100
	maxExportRow = 10000
)

var (
	billHeaders = []string{"Bill ID", "Date", "Time", "Store", "Address", "Total", "Tax", "Currency", "Confidence", "Status", "Created"}
	itemHeaders = []string{"Bill ID", "Line", "Item", "Quantity", "Unit Price", "Amount", "Category"}
)

// ExportXLSX writes a user's bills and their items to a two-sheet workbook
func (s *BillService) ExportXLSX(ctx context.Context, userID int) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the bills sheet
	if err := f.SetSheetName(f.GetSheetName(0), billsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}
	writeRow(f, billsSheet, 1, toAny(billHeaders)...)
	writeRow(f, itemsSheet, 1, toAny(itemHeaders)...)

	billRow, itemRow := 2, 2
	for offset := 0; billRow <= maxExportRow; offset += exportPage {
		bills, _, err := s.repo.ListBills(ctx, &models.BillListParams{UserID: userID, Limit: exportPage, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("list bills: %w", err)
		}

		for _, b := range bills {
			full, err := s.repo.GetBillByID(ctx, b.ID, userID)
			if err != nil {
				return nil, fmt.Errorf("load bill %d: %w", b.ID, err)
			}

			writeRow(f, billsSheet, billRow,
				full.ID, deref(full.BillDate), deref(full.BillTime), deref(full.StoreName), deref(full.StoreAddress),
				full.TotalAmount, full.Tax, full.Currency, full.Confidence, string(full.Status),
				full.CreatedAt.Format(time.RFC3339),
			)
			billRow++

			for _, item := range full.Items {
				var qty, unit any
				if item.Quantity != nil {
					qty = *item.Quantity
				}
				if item.UnitPrice != nil {
					unit = *item.UnitPrice
				}
				writeRow(f, itemsSheet, itemRow, full.ID, item.LineNumber, item.Name, qty, unit, item.Amount, item.Category)
				itemRow++
			}
		}

		if len(bills) < exportPage {
			break
		}
	}

	_ = f.SetColWidth(billsSheet, "B", "C", 12)
	_ = f.SetColWidth(billsSheet, "D", "E", 36)
	_ = f.SetColWidth(billsSheet, "K", "K", 24)
	_ = f.SetColWidth(itemsSheet, "C", "C", 36)
	_ = f.SetColWidth(itemsSheet, "G", "G", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	log.Printf("Exported %d bills for user %d in %dms", billRow-2, userID, time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) {
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
