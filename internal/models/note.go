package models

import (
	"encoding/json"
	"time"
)

// NoteLineItem is one item proposed by the generative classification path
type NoteLineItem struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// NoteClassification is the JSON object returned by the generative path for a note
type NoteClassification struct {
	TotalAmount float64        `json:"totalAmount"`
	Items       []NoteLineItem `json:"items"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Confidence  string         `json:"confidence"`
}

// NoteData is a classification with its category resolved to the taxonomy
type NoteData struct {
	Type        TransactionType `json:"type"`
	TotalAmount float64         `json:"totalAmount"`
	Items       []NoteLineItem  `json:"items"`
	Category    string          `json:"category"`
	RawCategory string          `json:"rawCategory"`
	Description string          `json:"description"`
	Confidence  string          `json:"confidence"`
}

// ClassifyNoteRequest is the request body for mapping a generative classification
type ClassifyNoteRequest struct {
	Type   string          `json:"type"`
	Note   string          `json:"note,omitempty"`
	Result json.RawMessage `json:"result"`
}

// Note is a persisted note classification
type Note struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Type        TransactionType `json:"type"`
	Text        *string         `json:"text,omitempty"`
	TotalAmount float64         `json:"total_amount"`
	Category    string          `json:"category"`
	RawCategory string          `json:"raw_category"`
	Description string          `json:"description"`
	Confidence  string          `json:"confidence"`
	Items       []NoteLineItem  `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NoteListParams contains parameters for listing notes
type NoteListParams struct {
	Limit  int
	Offset int
	Type   *string
	UserID int
}
