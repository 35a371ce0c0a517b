package models

import (
	"time"

	"github.com/google/uuid"
)

// Result is one recognized text region persisted from a finished Job,
// mirroring ocr.Result plus the foreign keys needed to look it up.
type Result struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	JobID      uuid.UUID  `json:"job_id" db:"job_id"`
	DocumentID uuid.UUID  `json:"document_id" db:"document_id"`
	Polygon    [4][2]float64 `json:"polygon" db:"polygon"` // clockwise from top-left
	Text       string     `json:"text" db:"text"`
	Confidence float32    `json:"confidence" db:"confidence"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// JobCompleted is the event published to the result stream when a worker
// finishes a job, broadcast to WebSocket subscribers by the API's hub.
type JobCompleted struct {
	JobID      uuid.UUID `json:"job_id"`
	DocumentID uuid.UUID `json:"document_id"`
	Status     JobStatus `json:"status"`
	ResultCount int      `json:"result_count"`
	Error      string    `json:"error,omitempty"`
}
