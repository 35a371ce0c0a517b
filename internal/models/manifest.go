package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ModelKind distinguishes the two ONNX graph roles a manifest entry can
// describe.
type ModelKind string

const (
	ModelKindDetector   ModelKind = "detector"
	ModelKindRecognizer ModelKind = "recognizer"
)

// ManifestSchemaVersion is the only schema version this package understands;
// loading a manifest with a different value is an unsupported-config error.
const ManifestSchemaVersion = 1

// ModelEntry describes one installable ONNX model, persisted as part of the
// model manifest (spec §6). ONNXFile is always relative to and constrained
// under models/onnx/; CharsetFile is required when Kind is recognizer.
type ModelEntry struct {
	ModelName   string    `json:"modelName"`
	Kind        ModelKind `json:"kind"`
	Languages   []string  `json:"languages"` // ISO-ish codes, or "*" for language-agnostic
	ONNXFile    string    `json:"onnxFile"`
	CharsetFile string    `json:"charsetFile,omitempty"`
	SHA256      string    `json:"sha256"`
	Size        int64     `json:"size"`

	// Graph I/O names, as declared at export time. Optional: a zero value
	// falls back to the loader's conventional name for that role.
	InputName          string   `json:"inputName,omitempty"`
	SecondaryInputName string   `json:"secondaryInputName,omitempty"` // recognizer only
	OutputNames        []string `json:"outputNames,omitempty"`        // detector: [combined] or [text, link]
}

// Manifest is the top-level model manifest document.
type Manifest struct {
	SchemaVersion int          `json:"schemaVersion"`
	Models        []ModelEntry `json:"models"`
}

// LoadManifest reads and validates a manifest file: schema version must be
// ManifestSchemaVersion, every onnxFile must resolve under modelsRoot (no
// escaping via ".."), and every recognizer entry must declare a charsetFile.
func LoadManifest(path, modelsRoot string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model manifest %s: %w", path, err)
	}
	if m.SchemaVersion != ManifestSchemaVersion {
		return nil, fmt.Errorf("model manifest %s: unsupported schema version %d", path, m.SchemaVersion)
	}

	onnxRoot := filepath.Join(modelsRoot, "onnx")
	for _, entry := range m.Models {
		resolved := filepath.Join(onnxRoot, entry.ONNXFile)
		rel, err := filepath.Rel(onnxRoot, resolved)
		if err != nil || strings.HasPrefix(rel, "..") {
			return nil, fmt.Errorf("model manifest %s: entry %q escapes models/onnx/", path, entry.ModelName)
		}
		if entry.Kind == ModelKindRecognizer && entry.CharsetFile == "" {
			return nil, fmt.Errorf("model manifest %s: recognizer entry %q has no charsetFile", path, entry.ModelName)
		}
	}

	return &m, nil
}

// ByName finds a manifest entry by its modelName, or reports false.
func (m *Manifest) ByName(name string) (ModelEntry, bool) {
	for _, e := range m.Models {
		if e.ModelName == name {
			return e, true
		}
	}
	return ModelEntry{}, false
}
