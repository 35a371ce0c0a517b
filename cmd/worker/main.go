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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/your-org/goocr/internal/config"
	"github.com/your-org/goocr/internal/imageio"
	"github.com/your-org/goocr/internal/models"
	"github.com/your-org/goocr/internal/observability"
	"github.com/your-org/goocr/internal/ocr"
	"github.com/your-org/goocr/internal/queue"
	"github.com/your-org/goocr/internal/storage"
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

	slog.Info("starting OCR worker",
		"workers", cfg.Models.WorkerCount,
		"cpu_cores", runtime.NumCPU(),
	)

	ort.SetSharedLibraryPath(getONNXLibPath())
	if err := ort.InitializeEnvironment(); err != nil {
		slog.Error("init onnx runtime", "error", err)
		os.Exit(1)
	}
	defer ort.DestroyEnvironment()

	engine, err := ocr.LoadEngine(cfg.Models.ManifestPath, cfg.Models.RootDir, cfg.Models.DetectorName, cfg.Models.Language, nil)
	if err != nil {
		slog.Error("load ocr engine", "error", err)
		os.Exit(1)
	}
	defer engine.Detector.Close()
	defer engine.Recognizer.Close()

	slog.Info("ocr engine ready", "detector", cfg.Models.DetectorName, "language", cfg.Models.Language)

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

	producer, err := queue.NewProducer(cfg.NATS.URL)
	if err != nil {
		slog.Error("connect to nats producer", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	if err := producer.EnsureStreams(context.Background()); err != nil {
		slog.Warn("ensure nats streams", "error", err)
	}

	consumer, err := queue.NewConsumer(cfg.NATS.URL)
	if err != nil {
		slog.Error("create consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	baseOpts := ocr.OptionsFromConfig(cfg.OCR)

	err = consumer.ConsumeJobs(ctx, "ocr-workers", func(ctx context.Context, msg jetstream.Msg) error {
		var task models.JobTask
		if err := json.Unmarshal(msg.Data(), &task); err != nil {
			slog.Error("unmarshal job task", "error", err)
			return nil // don't retry on unmarshal errors
		}
		return processJob(ctx, task, engine, baseOpts, db, minioStore, producer)
	}, cfg.Models.WorkerCount)
	if err != nil {
		slog.Error("start job consumer", "error", err)
		os.Exit(1)
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
		slog.Info("worker metrics listening", "addr", ":8082")
		if err := http.ListenAndServe(":8082", mux); err != nil {
			slog.Error("metrics server error", "error", err)
		}
	}()

	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				depth, err := producer.QueueDepth(ctx)
				if err == nil {
					observability.QueueDepth.Set(float64(depth))
				}
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down worker...")
	cancel()
	time.Sleep(2 * time.Second)
	slog.Info("worker stopped")
}

// processJob runs one OCR job end to end: fetch the source image, run the
// engine, persist results, mark the job finished, and publish a completion
// event for the API to relay over WebSocket.
func processJob(ctx context.Context, task models.JobTask, engine *ocr.Engine, baseOpts ocr.Options,
	db *storage.PostgresStore, minioStore *storage.MinIOStore, producer *queue.Producer) error {

	start := time.Now()
	if err := db.StartJob(ctx, task.JobID); err != nil {
		slog.Error("mark job running", "job_id", task.JobID, "error", err)
	}

	data, err := minioStore.GetObject(ctx, task.SourceKey)
	if err != nil {
		return finishWithError(ctx, db, producer, task, fmt.Errorf("fetch source image: %w", err))
	}

	img, err := imageio.Decode(data)
	if err != nil {
		return finishWithError(ctx, db, producer, task, fmt.Errorf("decode source image: %w", err))
	}

	overrides := ocr.OptionsFromJob(baseOpts, task.Options)

	results, err := engine.Run(img, overrides, ocr.NopTrace{})
	if err != nil {
		return finishWithError(ctx, db, producer, task, fmt.Errorf("run ocr engine: %w", err))
	}

	modelResults := make([]models.Result, len(results))
	for i, r := range results {
		modelResults[i] = models.Result{
			Polygon:    [4][2]float64{{r.Polygon[0].X, r.Polygon[0].Y}, {r.Polygon[1].X, r.Polygon[1].Y}, {r.Polygon[2].X, r.Polygon[2].Y}, {r.Polygon[3].X, r.Polygon[3].Y}},
			Text:       r.Text,
			Confidence: float32(r.Confidence),
		}
	}
	if err := db.CreateResults(ctx, task.JobID, task.DocumentID, modelResults); err != nil {
		return finishWithError(ctx, db, producer, task, fmt.Errorf("store results: %w", err))
	}

	if err := db.FinishJob(ctx, task.JobID, models.JobStatusDone, ""); err != nil {
		slog.Error("mark job done", "job_id", task.JobID, "error", err)
	}

	observability.JobsProcessed.WithLabelValues(string(models.JobStatusDone)).Inc()
	observability.RegionsRecognized.WithLabelValues(task.DocumentID.String()).Add(float64(len(results)))
	observability.StageDuration.WithLabelValues("run").Observe(time.Since(start).Seconds())

	if err := producer.PublishResult(ctx, task.JobID.String(), models.JobCompleted{
		JobID:       task.JobID,
		DocumentID:  task.DocumentID,
		Status:      models.JobStatusDone,
		ResultCount: len(results),
	}); err != nil {
		slog.Error("publish job completion", "job_id", task.JobID, "error", err)
	}

	return nil
}

func finishWithError(ctx context.Context, db *storage.PostgresStore, producer *queue.Producer, task models.JobTask, jobErr error) error {
	slog.Error("job failed", "job_id", task.JobID, "error", jobErr)

	if err := db.FinishJob(ctx, task.JobID, models.JobStatusError, jobErr.Error()); err != nil {
		slog.Error("mark job error", "job_id", task.JobID, "error", err)
	}

	observability.JobsProcessed.WithLabelValues(string(models.JobStatusError)).Inc()

	if err := producer.PublishResult(ctx, task.JobID.String(), models.JobCompleted{
		JobID:      task.JobID,
		DocumentID: task.DocumentID,
		Status:     models.JobStatusError,
		Error:      jobErr.Error(),
	}); err != nil {
		slog.Error("publish job failure", "job_id", task.JobID, "error", err)
	}

	// Fail-fast per job; the message itself is still acked by the consumer
	// loop since the failure is terminal (bad input/model), not transient.
	return nil
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
