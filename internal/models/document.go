package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document is a source image submitted for OCR, independent of any
// particular job run against it (the same document can be re-run with
// different Options).
type Document struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	SourceKey   string          `json:"source_key" db:"source_key"` // MinIO object key of the original bytes
	Width       int             `json:"width" db:"width"`
	Height      int             `json:"height" db:"height"`
	ContentType string          `json:"content_type" db:"content_type"`
	Metadata    json.RawMessage `json:"metadata" db:"metadata"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
