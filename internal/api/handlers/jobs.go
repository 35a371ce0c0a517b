package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/goocr/internal/models"
	"github.com/your-org/goocr/internal/queue"
	"github.com/your-org/goocr/internal/storage"
	"github.com/your-org/goocr/pkg/dto"
)

type JobHandler struct {
	db       *storage.PostgresStore
	producer *queue.Producer
}

func NewJobHandler(db *storage.PostgresStore, producer *queue.Producer) *JobHandler {
	return &JobHandler{db: db, producer: producer}
}

// Create enqueues an OCR job against a previously-uploaded document.
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DocumentID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document_id is required"})
		return
	}

	doc, err := h.db.GetDocument(c.Request.Context(), *req.DocumentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	opts := models.JobOptions{
		LangList:   req.LangList,
		Allowlist:  req.Allowlist,
		Blocklist:  req.Blocklist,
		MergeLines: req.MergeLines,
		CanvasSize: req.CanvasSize,
		Rotation:   req.Rotation,
	}
	optsJSON, err := json.Marshal(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	job, err := h.db.CreateJob(c.Request.Context(), doc.ID, optsJSON)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	task := models.JobTask{
		JobID:      job.ID,
		DocumentID: doc.ID,
		SourceKey:  doc.SourceKey,
		Options:    opts,
	}
	if err := h.producer.PublishJob(c.Request.Context(), job.ID.String(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "enqueue job failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, jobToResponse(job))
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := h.db.GetJob(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	c.JSON(http.StatusOK, jobToResponse(job))
}

func (h *JobHandler) List(c *gin.Context) {
	var documentID *uuid.UUID
	if docStr := c.Query("document_id"); docStr != "" {
		id, err := uuid.Parse(docStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document_id"})
			return
		}
		documentID = &id
	}

	jobs, err := h.db.ListJobs(c.Request.Context(), documentID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, jobToResponse(&jobs[i]))
	}

	c.JSON(http.StatusOK, dto.JobListResponse{Jobs: resp})
}

// Results returns the recognized text regions for a finished job.
func (h *JobHandler) Results(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	results, err := h.db.ListResults(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.ResultResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, dto.ResultResponse{
			ID:         r.ID,
			JobID:      r.JobID,
			DocumentID: r.DocumentID,
			Polygon:    r.Polygon,
			Text:       r.Text,
			Confidence: r.Confidence,
		})
	}

	c.JSON(http.StatusOK, dto.ResultListResponse{Results: resp})
}

func jobToResponse(j *models.Job) dto.JobResponse {
	resp := dto.JobResponse{
		ID:           j.ID,
		DocumentID:   j.DocumentID,
		Status:       string(j.Status),
		ErrorMessage: j.ErrorMessage,
		CreatedAt:    j.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if j.StartedAt != nil {
		resp.StartedAt = j.StartedAt.Format("2006-01-02T15:04:05Z")
	}
	if j.FinishedAt != nil {
		resp.FinishedAt = j.FinishedAt.Format("2006-01-02T15:04:05Z")
	}
	return resp
}
