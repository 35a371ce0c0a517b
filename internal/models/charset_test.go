package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCharsetStripsTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charset.txt")
	if err := os.WriteFile(path, []byte("abc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chars, err := LoadCharset(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(chars) != "abc" {
		t.Fatalf("expected 'abc', got %q", string(chars))
	}
}

func TestLoadCharsetStripsCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charset.txt")
	if err := os.WriteFile(path, []byte("abc\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chars, err := LoadCharset(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(chars) != "abc" {
		t.Fatalf("expected CRLF stripped to 'abc', got %q", string(chars))
	}
}

func TestLoadCharsetRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charset.txt")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCharset(path); err == nil {
		t.Fatal("expected error for empty charset file")
	}
}

func TestLoadCharsetRejectsNewlineOnlyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charset.txt")
	if err := os.WriteFile(path, []byte("\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCharset(path); err == nil {
		t.Fatal("expected error for newline-only charset file")
	}
}

func TestLoadCharsetPreservesMultibyteRunes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charset.txt")
	if err := os.WriteFile(path, []byte("ñé中\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chars, err := LoadCharset(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(chars) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(chars))
	}
}

func TestLoadCharsetMissingFileErrors(t *testing.T) {
	if _, err := LoadCharset("/nonexistent/path/charset.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
