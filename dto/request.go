package dto

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyInput is returned by the request guard, never by the parser.
	ErrEmptyInput = errors.New("client narrative text is empty")

	ErrUnknownPath  = errors.New("unknown profile field path")
	ErrUnknownKind  = errors.New("unknown item kind")
	ErrNoSuchRecord = errors.New("session not found")
)

// ParseReportRequest carries the raw advisor narrative. Text may come
// from the JSON body or from an uploaded document's extracted text.
type ParseReportRequest struct {
	Text string `json:"text"`
}

// Validate rejects empty/whitespace-only input before parsing is
// attempted. The parser itself tolerates any string.
func (r *ParseReportRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyInput
	}
	return nil
}

// UpdateFieldRequest edits one profile field in place, addressed by a
// dot-separated path such as "client.name", "income.0.amount" or
// "assets.cash".
type UpdateFieldRequest struct {
	Path  string `json:"path" binding:"required"`
	Value string `json:"value"`
}

// AddItemRequest appends a new record to one of the profile's list
// sections. Only the fields relevant to Kind are read; numeric fields
// default to 0 and string fields to placeholder labels.
type AddItemRequest struct {
	Kind string `json:"kind" binding:"required"`

	Name      string  `json:"name,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Symbol    string  `json:"symbol,omitempty"`
	Shares    int     `json:"shares,omitempty"`
	Market    string  `json:"market,omitempty"`
	Provider  string  `json:"provider,omitempty"`
	Type      string  `json:"type,omitempty"`
	Premium   float64 `json:"premium,omitempty"`
	Coverage  float64 `json:"coverage,omitempty"`
	Monthly   float64 `json:"monthly,omitempty"`
	Total     float64 `json:"total,omitempty"`
	TargetAge int     `json:"target_age,omitempty"`
}
