package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of an OCR job.
type JobStatus string

const (
	JobStatusQueued  JobStatus = "queued"
	JobStatusRunning JobStatus = "running"
	JobStatusDone    JobStatus = "done"
	JobStatusError   JobStatus = "error"
)

// Job is one queued OCR run over a Document, carrying the resolved Options
// it was (or will be) executed with.
type Job struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	DocumentID   uuid.UUID       `json:"document_id" db:"document_id"`
	Status       JobStatus       `json:"status" db:"status"`
	Options      json.RawMessage `json:"options" db:"options"`
	ErrorMessage string          `json:"error_message,omitempty" db:"error_message"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	StartedAt    *time.Time      `json:"started_at,omitempty" db:"started_at"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty" db:"finished_at"`
}

// JobTask is the message published to the job queue for worker processing.
type JobTask struct {
	JobID      uuid.UUID `json:"job_id"`
	DocumentID uuid.UUID `json:"document_id"`
	SourceKey  string    `json:"source_ref"` // MinIO object key of the source image
	Options    JobOptions `json:"options"`
}

// JobOptions is the wire-serializable subset of ocr.Options a client may
// submit alongside a job, validated and merged against defaults by the
// worker before the pipeline runs.
type JobOptions struct {
	LangList    []string `json:"lang_list,omitempty"`
	Allowlist   string   `json:"allowlist,omitempty"`
	Blocklist   string   `json:"blocklist,omitempty"`
	MergeLines  bool     `json:"merge_lines,omitempty"`
	CanvasSize  int      `json:"canvas_size,omitempty"`
	Rotation    []int    `json:"rotation_info,omitempty"`
}
