package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected explicit port 9090 preserved, got %d", cfg.Server.Port)
	}
	if cfg.Models.DetectorName != "craft" {
		t.Fatalf("expected default detector name 'craft', got %q", cfg.Models.DetectorName)
	}
	if cfg.Models.Language != "en" {
		t.Fatalf("expected default language 'en', got %q", cfg.Models.Language)
	}
	if cfg.OCR.CanvasSize != 2560 {
		t.Fatalf("expected default canvas size 2560, got %d", cfg.OCR.CanvasSize)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected default logging format 'json', got %q", cfg.Logging.Format)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "server: [this is not, a, valid map")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestApplyEnvOverridesTakePrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "models:\n  language: en\n")

	t.Setenv("OCR_MODELS_LANGUAGE", "fr")
	t.Setenv("OCR_SERVER_PORT", "7777")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Models.Language != "fr" {
		t.Fatalf("expected env override language 'fr', got %q", cfg.Models.Language)
	}
	if cfg.Server.Port != 7777 {
		t.Fatalf("expected env override port 7777, got %d", cfg.Server.Port)
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, Name: "ocr", User: "u", Password: "p"}
	want := "postgres://u:p@db:5432/ocr?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Fatalf("expected DSN %q, got %q", want, got)
	}
}
