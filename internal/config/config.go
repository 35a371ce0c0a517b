package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	NATS     NATSConfig     `yaml:"nats"`
	MinIO    MinIOConfig    `yaml:"minio"`
	Models   ModelsConfig   `yaml:"models"`
	OCR      OCRConfig      `yaml:"ocr"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	MaxConns int    `yaml:"max_conns"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

type NATSConfig struct {
	URL string `yaml:"url"`
}

type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// ModelsConfig points at the on-disk model manifest and the root directory
// its onnxFile/charsetFile entries are resolved against.
type ModelsConfig struct {
	ManifestPath string `yaml:"manifest_path"`
	RootDir      string `yaml:"root_dir"`
	DetectorName string `yaml:"detector_name"`
	Language     string `yaml:"language"`
	WorkerCount  int    `yaml:"worker_count"`
}

// OCRConfig mirrors ocr.Options as a YAML-settable, field-wise overlay onto
// ocr.DefaultOptions — it is intentionally thinner than ocr.Options itself,
// exposing only the knobs an operator reasonably tunes per deployment.
type OCRConfig struct {
	CanvasSize    int     `yaml:"canvas_size"`
	MagRatio      float64 `yaml:"mag_ratio"`
	TextThreshold float64 `yaml:"text_threshold"`
	LowText       float64 `yaml:"low_text"`
	LinkThreshold float64 `yaml:"link_threshold"`
	MergeLines    bool    `yaml:"merge_lines"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads config from YAML file and applies environment variable overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 20
	}
	if cfg.Models.ManifestPath == "" {
		cfg.Models.ManifestPath = "models/manifest.json"
	}
	if cfg.Models.RootDir == "" {
		cfg.Models.RootDir = "models"
	}
	if cfg.Models.DetectorName == "" {
		cfg.Models.DetectorName = "craft"
	}
	if cfg.Models.Language == "" {
		cfg.Models.Language = "en"
	}
	if cfg.Models.WorkerCount == 0 {
		cfg.Models.WorkerCount = 4
	}
	if cfg.OCR.CanvasSize == 0 {
		cfg.OCR.CanvasSize = 2560
	}
	if cfg.OCR.MagRatio == 0 {
		cfg.OCR.MagRatio = 1.0
	}
	if cfg.OCR.TextThreshold == 0 {
		cfg.OCR.TextThreshold = 0.7
	}
	if cfg.OCR.LowText == 0 {
		cfg.OCR.LowText = 0.4
	}
	if cfg.OCR.LinkThreshold == 0 {
		cfg.OCR.LinkThreshold = 0.4
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OCR_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("OCR_API_KEY"); v != "" {
		cfg.Server.APIKey = v
	}
	if v := os.Getenv("OCR_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("OCR_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("OCR_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("OCR_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("OCR_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("OCR_NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("OCR_MINIO_ENDPOINT"); v != "" {
		cfg.MinIO.Endpoint = v
	}
	if v := os.Getenv("OCR_MINIO_ACCESS_KEY"); v != "" {
		cfg.MinIO.AccessKey = v
	}
	if v := os.Getenv("OCR_MINIO_SECRET_KEY"); v != "" {
		cfg.MinIO.SecretKey = v
	}
	if v := os.Getenv("OCR_MINIO_BUCKET"); v != "" {
		cfg.MinIO.Bucket = v
	}
	if v := os.Getenv("OCR_MODELS_ROOT_DIR"); v != "" {
		cfg.Models.RootDir = v
	}
	if v := os.Getenv("OCR_MODELS_MANIFEST_PATH"); v != "" {
		cfg.Models.ManifestPath = v
	}
	if v := os.Getenv("OCR_MODELS_WORKER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Models.WorkerCount = n
		}
	}
	if v := os.Getenv("OCR_MODELS_LANGUAGE"); v != "" {
		cfg.Models.Language = v
	}
}
