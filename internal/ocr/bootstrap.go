package ocr

import (
	"fmt"
	"path/filepath"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/your-org/goocr/internal/detector"
	"github.com/your-org/goocr/internal/models"
	"github.com/your-org/goocr/internal/recognizer"
)

// Conventional graph I/O names used when a manifest entry does not declare
// its own (models exported by the reference toolchain use these).
const (
	defaultDetectorInput    = "input"
	defaultDetectorOutput   = "output"
	defaultRecognizerInput  = "input"
	defaultRecognizerOutput = "output"
)

// LoadEngine reads a model manifest, resolves the detector entry by name and
// the first recognizer entry serving lang, loads both ONNX graphs and the
// recognizer's charset file, and returns a ready-to-run Engine.
func LoadEngine(manifestPath, modelsRoot, detectorName, lang string, sessOpts *ort.SessionOptions) (*Engine, error) {
	manifest, err := models.LoadManifest(manifestPath, modelsRoot)
	if err != nil {
		return nil, err
	}

	detEntry, ok := manifest.ByName(detectorName)
	if !ok {
		return nil, fmt.Errorf("%w: detector model %q not found in manifest", ErrModelLoad, detectorName)
	}
	if detEntry.Kind != models.ModelKindDetector {
		return nil, fmt.Errorf("%w: model %q is not a detector", ErrUnsupportedConfig, detectorName)
	}

	recEntry, ok := recognizerFor(manifest, lang)
	if !ok {
		return nil, fmt.Errorf("%w: no recognizer model serves language %q", ErrUnsupportedConfig, lang)
	}

	detSession, err := loadDetector(modelsRoot, detEntry, sessOpts)
	if err != nil {
		return nil, err
	}

	recSession, charset, err := loadRecognizer(modelsRoot, recEntry, sessOpts)
	if err != nil {
		detSession.Close()
		return nil, err
	}

	return NewEngine(detSession, recSession, charset), nil
}

func recognizerFor(manifest *models.Manifest, lang string) (models.ModelEntry, bool) {
	for _, e := range manifest.Models {
		if e.Kind != models.ModelKindRecognizer {
			continue
		}
		for _, l := range e.Languages {
			if l == lang || l == "*" {
				return e, true
			}
		}
	}
	return models.ModelEntry{}, false
}

func loadDetector(modelsRoot string, entry models.ModelEntry, sessOpts *ort.SessionOptions) (*detector.Session, error) {
	path := filepath.Join(modelsRoot, "onnx", entry.ONNXFile)

	inputName := entry.InputName
	if inputName == "" {
		inputName = defaultDetectorInput
	}
	outputNames := entry.OutputNames
	if len(outputNames) == 0 {
		outputNames = []string{defaultDetectorOutput}
	}

	return detector.NewSession(path, inputName, outputNames, sessOpts)
}

func loadRecognizer(modelsRoot string, entry models.ModelEntry, sessOpts *ort.SessionOptions) (*recognizer.Session, []rune, error) {
	path := filepath.Join(modelsRoot, "onnx", entry.ONNXFile)

	inputName := entry.InputName
	if inputName == "" {
		inputName = defaultRecognizerInput
	}
	outputName := defaultRecognizerOutput
	if len(entry.OutputNames) > 0 {
		outputName = entry.OutputNames[0]
	}
	secondary := entry.SecondaryInputName

	charsetPath := filepath.Join(modelsRoot, entry.CharsetFile)
	charset, err := models.LoadCharset(charsetPath)
	if err != nil {
		return nil, nil, err
	}

	session, err := recognizer.NewSession(path, inputName, secondary, outputName, sessOpts)
	if err != nil {
		return nil, nil, err
	}

	return session, charset, nil
}
