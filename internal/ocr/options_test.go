package ocr

import "testing"

func TestDefaultOptionsMatchesDocumentedValues(t *testing.T) {
	d := DefaultOptions()
	if d.CanvasSize != 2560 || d.MagRatio != 1.0 || d.Align != 32 {
		t.Fatalf("unexpected canvas defaults: %+v", d)
	}
	if d.TextThreshold != 0.7 || d.LowText != 0.4 || d.LinkThreshold != 0.4 {
		t.Fatalf("unexpected threshold defaults: %+v", d)
	}
	if d.Recognizer.InputHeight != 64 || d.Recognizer.InputWidth != 100 {
		t.Fatalf("unexpected recognizer geometry defaults: %+v", d.Recognizer)
	}
	if d.MergeLines != false {
		t.Fatalf("expected MergeLines to default false")
	}
}

func TestMergeOverridesNonZeroFieldsOnly(t *testing.T) {
	merged := Merge(Options{CanvasSize: 1280, TextThreshold: 0.9})
	if merged.CanvasSize != 1280 {
		t.Fatalf("expected overridden canvas size 1280, got %v", merged.CanvasSize)
	}
	if merged.TextThreshold != 0.9 {
		t.Fatalf("expected overridden text threshold 0.9, got %v", merged.TextThreshold)
	}
	// Untouched fields fall back to defaults.
	if merged.MagRatio != 1.0 || merged.LowText != 0.4 {
		t.Fatalf("expected untouched fields to retain defaults, got %+v", merged)
	}
}

func TestMergeRecognizerSubRecordIsFieldWise(t *testing.T) {
	merged := Merge(Options{Recognizer: RecognizerOptions{InputHeight: 48}})
	if merged.Recognizer.InputHeight != 48 {
		t.Fatalf("expected overridden recognizer height 48, got %v", merged.Recognizer.InputHeight)
	}
	if merged.Recognizer.InputWidth != 100 {
		t.Fatalf("expected untouched recognizer width to retain default 100, got %v", merged.Recognizer.InputWidth)
	}
}

func TestMergeLangListAndListsOverrideWhenNonEmpty(t *testing.T) {
	merged := Merge(Options{LangList: []string{"en", "fr"}, Allowlist: "abc"})
	if len(merged.LangList) != 2 || merged.LangList[0] != "en" {
		t.Fatalf("expected overridden lang list, got %v", merged.LangList)
	}
	if merged.Allowlist != "abc" {
		t.Fatalf("expected overridden allowlist, got %v", merged.Allowlist)
	}
	if merged.Blocklist != "" {
		t.Fatalf("expected untouched blocklist to remain empty, got %v", merged.Blocklist)
	}
}

func TestMergeAlwaysAdoptsOverrideMergeLinesValue(t *testing.T) {
	// MergeLines is a plain bool override, not a "non-zero wins" field: an
	// explicit false in overrides must still replace the default.
	merged := Merge(Options{MergeLines: true})
	if !merged.MergeLines {
		t.Fatalf("expected MergeLines true to carry through")
	}
	merged = Merge(Options{MergeLines: false})
	if merged.MergeLines {
		t.Fatalf("expected MergeLines false to carry through unconditionally")
	}
}
