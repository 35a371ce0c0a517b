package ocr

import "strings"

// defaultSymbols is the fallback symbol set unioned into every language's
// character set when filtering via langList (spec §4.H step 2).
const defaultSymbols = "0-9!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ "

// languageCharsets is a minimal per-language character inventory. Only the
// languages actually shipped as model manifests need entries; callers that
// pass an unlisted language code get unsupported-config at options
// validation, not a silent no-op filter.
var languageCharsets = map[string]string{
	"en": "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
}

// expandDigitRange expands "0-9" style ranges embedded in defaultSymbols
// into literal runes so set membership can use a plain map.
func expandDigitRange(s string) string {
	return strings.ReplaceAll(s, "0-9", "0123456789")
}

// SynthesizeIgnoreSet builds the set of charset rune values to ignore during
// CTC decoding, from (in priority order) allowlist, blocklist, langList.
// Only one of the three sources is consulted: allowlist wins if non-empty,
// else blocklist, else langList.
func SynthesizeIgnoreSet(charset []rune, allowlist, blocklist string, langList []string) map[rune]bool {
	ignore := make(map[rune]bool)

	switch {
	case allowlist != "":
		allowed := runeSet(allowlist)
		for _, c := range charset {
			if !allowed[c] {
				ignore[c] = true
			}
		}
	case blocklist != "":
		blocked := runeSet(blocklist)
		for _, c := range charset {
			if blocked[c] {
				ignore[c] = true
			}
		}
	case len(langList) > 0:
		allowed := runeSet(expandDigitRange(defaultSymbols))
		for _, lang := range langList {
			if chars, ok := languageCharsets[lang]; ok {
				for _, c := range chars {
					allowed[c] = true
				}
			}
		}
		for _, c := range charset {
			if !allowed[c] {
				ignore[c] = true
			}
		}
	}

	return ignore
}

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool, len(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}

// IgnoreIndices translates a charset-rune ignore set into charset-index
// ignore set (0-based positions within charset), then into class indices
// through the blank offset per spec §4.G: blank=0 -> index = charsetIdx+1.
func IgnoreIndices(charset []rune, ignoreRunes map[rune]bool, blank int) map[int]bool {
	out := make(map[int]bool, len(ignoreRunes))
	for i, c := range charset {
		if !ignoreRunes[c] {
			continue
		}
		var classIdx int
		if i < blank {
			classIdx = i
		} else {
			classIdx = i + 1
		}
		out[classIdx] = true
	}
	return out
}
