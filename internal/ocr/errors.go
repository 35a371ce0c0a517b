package ocr

import "github.com/your-org/goocr/internal/ocrerr"

// The five error kinds are defined in internal/ocrerr rather than here, so
// that internal/detector and internal/recognizer can wrap them without
// importing this package (which itself imports detector and recognizer).
// These aliases keep the errors.Is surface exactly where callers of this
// package expect it.
var (
	ErrBadInput          = ocrerr.ErrBadInput
	ErrModelLoad         = ocrerr.ErrModelLoad
	ErrShapeMismatch     = ocrerr.ErrShapeMismatch
	ErrUnsupportedConfig = ocrerr.ErrUnsupportedConfig
	ErrInference         = ocrerr.ErrInference
)
