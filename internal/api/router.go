package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/your-org/goocr/internal/api/handlers"
	"github.com/your-org/goocr/internal/api/ws"
	"github.com/your-org/goocr/internal/auth"
	"github.com/your-org/goocr/internal/ocr"
	"github.com/your-org/goocr/internal/queue"
	"github.com/your-org/goocr/internal/storage"
)

type RouterConfig struct {
	APIKey   string
	DB       *storage.PostgresStore
	MinIO    *storage.MinIOStore
	Producer *queue.Producer
	Hub      *ws.Hub

	// Engine is optional: when nil, /v1/ocr responds 503 and only the async
	// document/job path is available.
	Engine     *ocr.Engine
	EngineOpts ocr.Options
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggingMiddleware())
	r.Use(cors.Default())

	// System endpoints (no auth)
	systemH := handlers.NewSystemHandler(cfg.DB, cfg.MinIO, cfg.Producer)
	r.GET("/healthz", systemH.Healthz)
	r.GET("/readyz", systemH.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 (with auth)
	v1 := r.Group("/v1")
	v1.Use(auth.APIKeyMiddleware(cfg.APIKey))

	// WebSocket — subscribe to job completion events, optionally filtered by job_id
	v1.GET("/ws", cfg.Hub.HandleWS)

	// Documents
	docH := handlers.NewDocumentHandler(cfg.DB, cfg.MinIO)
	v1.POST("/documents", docH.Upload)
	v1.GET("/documents", docH.List)
	v1.GET("/documents/:id", docH.Get)

	// Jobs & Results
	jobH := handlers.NewJobHandler(cfg.DB, cfg.Producer)
	v1.POST("/jobs", jobH.Create)
	v1.GET("/jobs", jobH.List)
	v1.GET("/jobs/:id", jobH.Get)
	v1.GET("/jobs/:id/results", jobH.Results)

	// Synchronous recognition, bypassing the job queue entirely.
	ocrH := handlers.NewOCRHandler(cfg.Engine, cfg.EngineOpts)
	v1.POST("/ocr", ocrH.Recognize)

	return r
}
