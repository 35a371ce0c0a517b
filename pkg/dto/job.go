package dto

import "github.com/google/uuid"

// CreateJobRequest submits a document for OCR, either against a
// previously-uploaded document or fresh bytes (handled by the multipart
// upload path), with an optional options override.
type CreateJobRequest struct {
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	LangList   []string   `json:"lang_list,omitempty"`
	Allowlist  string     `json:"allowlist,omitempty"`
	Blocklist  string     `json:"blocklist,omitempty"`
	MergeLines bool       `json:"merge_lines,omitempty"`
	CanvasSize int        `json:"canvas_size,omitempty"`
	Rotation   []int      `json:"rotation_info,omitempty"`
}

type JobResponse struct {
	ID           uuid.UUID `json:"id"`
	DocumentID   uuid.UUID `json:"document_id"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    string    `json:"created_at"`
	StartedAt    string    `json:"started_at,omitempty"`
	FinishedAt   string    `json:"finished_at,omitempty"`
}

type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}
