package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewBillService(repo, nil, nil, time.Minute)

	_, err := svc.SaveText(context.Background(), 7, receiptText)
	require.NoError(t, err)
	_, err = svc.SaveText(context.Background(), 8, receiptText)
	require.NoError(t, err)

	data, err := svc.ExportXLSX(context.Background(), 7)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	bills, err := f.GetRows(billsSheet)
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, billHeaders, bills[0])
	assert.Equal(t, "1", bills[1][0])
	assert.Equal(t, "55000", bills[1][5])

	items, err := f.GetRows(itemsSheet)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Bánh mì thịt", items[1][2])
}

func TestExportXLSX_Empty(t *testing.T) {
	svc := NewBillService(newFakeBillRepo(), nil, nil, time.Minute)

	data, err := svc.ExportXLSX(context.Background(), 1)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(billsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
