package models

import (
	"fmt"
	"os"
	"strings"
)

// LoadCharset reads a charset file: UTF-8 text, a single logical line
// (a trailing newline is tolerated and stripped), one character per
// codepoint slot. The blank class is not itself stored in the returned
// slice — callers add it implicitly at its configured index (spec §6).
func LoadCharset(path string) ([]rune, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read charset file %s: %w", path, err)
	}

	text := strings.TrimRight(string(raw), "\n")
	text = strings.TrimRight(text, "\r")
	if text == "" {
		return nil, fmt.Errorf("charset file %s is empty", path)
	}

	return []rune(text), nil
}
