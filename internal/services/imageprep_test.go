package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHEICFormat(t *testing.T) {
	heicHeader := append([]byte{0, 0, 0, 0x18}, []byte("ftypheic")...)
	assert.True(t, isHEICFormat(heicHeader))

	mp4Header := append([]byte{0, 0, 0, 0x18}, []byte("ftypisom")...)
	assert.False(t, isHEICFormat(mp4Header))
	assert.False(t, isHEICFormat([]byte{0xFF, 0xD8, 0xFF}))
}

func TestPrepareForOCR_PassThrough(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F', 0, 1}

	out, err := PrepareForOCR(jpeg, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, jpeg, out)
}

func TestPrepareForOCR_InvalidPDF(t *testing.T) {
	_, err := PrepareForOCR([]byte("not a pdf"), "application/pdf")
	assert.ErrorContains(t, err, "PDF")
}

func TestImageContentType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		want     string
	}{
		{name: "pdf by content", filename: "scan.bin", data: []byte("%PDF-1.7\n"), want: "application/pdf"},
		{name: "png by content", filename: "scan", data: []byte("\x89PNG\r\n\x1a\n"), want: "image/png"},
		{name: "heic by extension", filename: "IMG_0001.HEIC", data: append([]byte{0, 0, 0, 0x18}, []byte("ftypheic")...), want: "image/heic"},
		{name: "unknown", filename: "scan", data: []byte{0x00, 0x01, 0x02}, want: "application/octet-stream"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ImageContentType(tc.filename, tc.data))
		})
	}
}
