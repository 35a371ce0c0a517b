package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goocr",
		Name:      "jobs_processed_total",
		Help:      "Total number of OCR jobs processed, by terminal status",
	}, []string{"status"})

	RegionsDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goocr",
		Name:      "regions_detected_total",
		Help:      "Total number of text regions produced by the detector",
	}, []string{"document_id"})

	RegionsRecognized = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goocr",
		Name:      "regions_recognized_total",
		Help:      "Total number of text regions successfully decoded by the recognizer",
	}, []string{"document_id"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "goocr",
		Name:      "stage_duration_seconds",
		Help:      "Duration of each pipeline stage",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
	}, []string{"stage"})

	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "goocr",
		Name:      "queue_depth",
		Help:      "Number of pending OCR job tasks in queue",
	})

	ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "goocr",
		Name:      "active_workers",
		Help:      "Number of currently running OCR workers",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "goocr",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	WSConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "goocr",
		Name:      "ws_connections",
		Help:      "Number of active WebSocket connections",
	})
)
