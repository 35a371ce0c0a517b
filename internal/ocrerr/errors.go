// Package ocrerr defines the sentinel error kinds shared by every pipeline
// stage, per the error-kind taxonomy: bad-input, model-load-failure,
// model-shape-mismatch, unsupported-config, inference-failure. Stage
// functions wrap one of these with fmt.Errorf("...: %w", ...) so callers can
// branch with errors.Is regardless of which stage produced the error.
package ocrerr

import "errors"

var (
	ErrBadInput          = errors.New("bad input")
	ErrModelLoad         = errors.New("model load failure")
	ErrShapeMismatch     = errors.New("model shape mismatch")
	ErrUnsupportedConfig = errors.New("unsupported config")
	ErrInference         = errors.New("inference failure")
)
