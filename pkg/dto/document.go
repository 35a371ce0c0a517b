package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type DocumentResponse struct {
	ID          uuid.UUID       `json:"id"`
	SourceURL   string          `json:"source_url,omitempty"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	ContentType string          `json:"content_type"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
}
