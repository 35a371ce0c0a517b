package dto

import "github.com/google/uuid"

type ResultResponse struct {
	ID         uuid.UUID     `json:"id"`
	JobID      uuid.UUID     `json:"job_id"`
	DocumentID uuid.UUID     `json:"document_id"`
	Polygon    [4][2]float64 `json:"polygon"`
	Text       string        `json:"text"`
	Confidence float32       `json:"confidence"`
}

type ResultListResponse struct {
	Results []ResultResponse `json:"results"`
}

// WSEvent is a WebSocket message for real-time job/trace delivery.
type WSEvent struct {
	Type  string    `json:"type"` // job_done or job_error
	JobID uuid.UUID `json:"job_id"`
	Data  any       `json:"data,omitempty"`
}
