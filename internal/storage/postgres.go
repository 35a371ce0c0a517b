package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/your-org/goocr/internal/config"
	"github.com/your-org/goocr/internal/models"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(cfg config.DatabaseConfig) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// --- Documents ---

func (s *PostgresStore) CreateDocument(ctx context.Context, sourceKey, contentType string, width, height int, metadata json.RawMessage) (*models.Document, error) {
	if metadata == nil {
		metadata = json.RawMessage("{}")
	}
	d := &models.Document{
		ID:          uuid.New(),
		SourceKey:   sourceKey,
		Width:       width,
		Height:      height,
		ContentType: contentType,
		Metadata:    metadata,
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO documents (id, source_key, width, height, content_type, metadata) VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`,
		d.ID, d.SourceKey, d.Width, d.Height, d.ContentType, d.Metadata,
	).Scan(&d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return d, nil
}

func (s *PostgresStore) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	d := &models.Document{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, source_key, width, height, content_type, metadata, created_at FROM documents WHERE id = $1`, id,
	).Scan(&d.ID, &d.SourceKey, &d.Width, &d.Height, &d.ContentType, &d.Metadata, &d.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

func (s *PostgresStore) ListDocuments(ctx context.Context) ([]models.Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, source_key, width, height, content_type, metadata, created_at FROM documents ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.SourceKey, &d.Width, &d.Height, &d.ContentType, &d.Metadata, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// --- Jobs ---

func (s *PostgresStore) CreateJob(ctx context.Context, documentID uuid.UUID, options json.RawMessage) (*models.Job, error) {
	if options == nil {
		options = json.RawMessage("{}")
	}
	j := &models.Job{
		ID:         uuid.New(),
		DocumentID: documentID,
		Status:     models.JobStatusQueued,
		Options:    options,
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO jobs (id, document_id, status, options) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		j.ID, j.DocumentID, j.Status, j.Options,
	).Scan(&j.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return j, nil
}

func (s *PostgresStore) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	j := &models.Job{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, document_id, status, options, error_message, created_at, started_at, finished_at FROM jobs WHERE id = $1`, id,
	).Scan(&j.ID, &j.DocumentID, &j.Status, &j.Options, &j.ErrorMessage, &j.CreatedAt, &j.StartedAt, &j.FinishedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

func (s *PostgresStore) ListJobs(ctx context.Context, documentID *uuid.UUID, limit int) ([]models.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	const cols = `id, document_id, status, options, error_message, created_at, started_at, finished_at`

	var rows pgx.Rows
	var err error
	if documentID != nil {
		rows, err = s.pool.Query(ctx,
			`SELECT `+cols+` FROM jobs WHERE document_id = $1 ORDER BY created_at DESC LIMIT $2`, *documentID, limit)
	} else {
		rows, err = s.pool.Query(ctx,
			`SELECT `+cols+` FROM jobs ORDER BY created_at DESC LIMIT $1`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.DocumentID, &j.Status, &j.Options, &j.ErrorMessage, &j.CreatedAt, &j.StartedAt, &j.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func (s *PostgresStore) StartJob(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	_, err := s.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, started_at = $2 WHERE id = $3`,
		models.JobStatusRunning, now, id)
	return err
}

func (s *PostgresStore) FinishJob(ctx context.Context, id uuid.UUID, status models.JobStatus, errMsg string) error {
	now := time.Now()
	_, err := s.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, error_message = $2, finished_at = $3 WHERE id = $4`,
		status, errMsg, now, id)
	return err
}

// --- Results ---

func (s *PostgresStore) CreateResults(ctx context.Context, jobID, documentID uuid.UUID, results []models.Result) error {
	batch := &pgx.Batch{}
	for _, r := range results {
		r.ID = uuid.New()
		r.JobID = jobID
		r.DocumentID = documentID
		polyJSON, err := json.Marshal(r.Polygon)
		if err != nil {
			return fmt.Errorf("marshal result polygon: %w", err)
		}
		batch.Queue(
			`INSERT INTO results (id, job_id, document_id, polygon, text, confidence) VALUES ($1, $2, $3, $4, $5, $6)`,
			r.ID, r.JobID, r.DocumentID, polyJSON, r.Text, r.Confidence)
	}
	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range results {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert result: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) ListResults(ctx context.Context, jobID uuid.UUID) ([]models.Result, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_id, document_id, polygon, text, confidence, created_at FROM results WHERE job_id = $1 ORDER BY created_at`,
		jobID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		var r models.Result
		var polyJSON []byte
		if err := rows.Scan(&r.ID, &r.JobID, &r.DocumentID, &polyJSON, &r.Text, &r.Confidence, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if err := json.Unmarshal(polyJSON, &r.Polygon); err != nil {
			return nil, fmt.Errorf("unmarshal result polygon: %w", err)
		}
		results = append(results, r)
	}
	return results, nil
}
