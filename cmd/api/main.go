package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/your-org/goocr/internal/api"
	"github.com/your-org/goocr/internal/api/ws"
	"github.com/your-org/goocr/internal/config"
	"github.com/your-org/goocr/internal/models"
	"github.com/your-org/goocr/internal/observability"
	"github.com/your-org/goocr/internal/ocr"
	"github.com/your-org/goocr/internal/queue"
	"github.com/your-org/goocr/internal/storage"
	"github.com/your-org/goocr/pkg/dto"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	observability.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("starting OCR API service", "port", cfg.Server.Port)

	// The synchronous /v1/ocr path is best-effort: the API stays up for the
	// async document/job path even when no model files are mounted here.
	var engine *ocr.Engine
	ort.SetSharedLibraryPath(getONNXLibPath())
	if err := ort.InitializeEnvironment(); err != nil {
		slog.Warn("init onnx runtime, synchronous /v1/ocr disabled", "error", err)
	} else {
		defer ort.DestroyEnvironment()
		engine, err = ocr.LoadEngine(cfg.Models.ManifestPath, cfg.Models.RootDir, cfg.Models.DetectorName, cfg.Models.Language, nil)
		if err != nil {
			slog.Warn("load ocr engine, synchronous /v1/ocr disabled", "error", err)
		} else {
			defer engine.Detector.Close()
			defer engine.Recognizer.Close()
			slog.Info("synchronous ocr engine ready", "detector", cfg.Models.DetectorName, "language", cfg.Models.Language)
		}
	}
	engineOpts := ocr.OptionsFromConfig(cfg.OCR)

	db, err := storage.NewPostgresStore(cfg.Database)
	if err != nil {
		slog.Error("connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	minioStore, err := storage.NewMinIOStore(cfg.MinIO)
	if err != nil {
		slog.Error("connect to minio", "error", err)
		os.Exit(1)
	}
	if err := minioStore.EnsureBucket(context.Background()); err != nil {
		slog.Warn("ensure minio bucket", "error", err)
	}

	producer, err := queue.NewProducer(cfg.NATS.URL)
	if err != nil {
		slog.Error("connect to nats", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	if err := producer.EnsureStreams(context.Background()); err != nil {
		slog.Warn("ensure nats streams", "error", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	consumer, err := queue.NewConsumer(cfg.NATS.URL)
	if err != nil {
		slog.Error("create result consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Mirror job completion events into Postgres and fan them out over WebSocket.
	err = consumer.ConsumeResults(ctx, "api-results", func(ctx context.Context, msg jetstream.Msg) error {
		var completed models.JobCompleted
		if err := json.Unmarshal(msg.Data(), &completed); err != nil {
			return err
		}

		if err := db.FinishJob(ctx, completed.JobID, completed.Status, completed.Error); err != nil {
			slog.Error("finish job", "job_id", completed.JobID, "error", err)
		}

		evtType := "job_done"
		if completed.Status == models.JobStatusError {
			evtType = "job_error"
		}

		hub.BroadcastEvent(&dto.WSEvent{
			Type:  evtType,
			JobID: completed.JobID,
			Data:  completed,
		})

		return nil
	})
	if err != nil {
		slog.Warn("start result consumer", "error", err)
	}

	router := api.NewRouter(api.RouterConfig{
		APIKey:     cfg.Server.APIKey,
		DB:         db,
		MinIO:      minioStore,
		Producer:   producer,
		Hub:        hub,
		Engine:     engine,
		EngineOpts: engineOpts,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("API server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down API server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("API server stopped")
}

func getONNXLibPath() string {
	switch runtime.GOOS {
	case "windows":
		return "onnxruntime.dll"
	case "linux":
		return "libonnxruntime.so"
	case "darwin":
		return "libonnxruntime.dylib"
	default:
		return "onnxruntime.dll"
	}
}
