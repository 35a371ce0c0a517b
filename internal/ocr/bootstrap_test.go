package ocr

import (
	"testing"

	"github.com/your-org/goocr/internal/models"
)

func TestRecognizerForExactLanguageMatch(t *testing.T) {
	manifest := &models.Manifest{Models: []models.ModelEntry{
		{ModelName: "crnn-en", Kind: models.ModelKindRecognizer, Languages: []string{"en"}},
		{ModelName: "crnn-fr", Kind: models.ModelKindRecognizer, Languages: []string{"fr"}},
	}}
	entry, ok := recognizerFor(manifest, "fr")
	if !ok || entry.ModelName != "crnn-fr" {
		t.Fatalf("expected exact match crnn-fr, got %+v ok=%v", entry, ok)
	}
}

func TestRecognizerForWildcardLanguage(t *testing.T) {
	manifest := &models.Manifest{Models: []models.ModelEntry{
		{ModelName: "crnn-any", Kind: models.ModelKindRecognizer, Languages: []string{"*"}},
	}}
	entry, ok := recognizerFor(manifest, "de")
	if !ok || entry.ModelName != "crnn-any" {
		t.Fatalf("expected wildcard entry to serve any language, got %+v ok=%v", entry, ok)
	}
}

func TestRecognizerForSkipsNonRecognizerEntries(t *testing.T) {
	manifest := &models.Manifest{Models: []models.ModelEntry{
		{ModelName: "craft", Kind: models.ModelKindDetector, Languages: []string{"en"}},
	}}
	if _, ok := recognizerFor(manifest, "en"); ok {
		t.Fatal("expected detector entries to never satisfy a recognizer lookup")
	}
}

func TestRecognizerForNoMatchReturnsFalse(t *testing.T) {
	manifest := &models.Manifest{Models: []models.ModelEntry{
		{ModelName: "crnn-en", Kind: models.ModelKindRecognizer, Languages: []string{"en"}},
	}}
	if _, ok := recognizerFor(manifest, "ja"); ok {
		t.Fatal("expected no match for unserved language")
	}
}
