package ocr

import (
	"github.com/your-org/goocr/internal/config"
	"github.com/your-org/goocr/internal/models"
)

// OptionsFromConfig builds a baseline Options override from the
// deployment-wide OCR config section.
func OptionsFromConfig(c config.OCRConfig) Options {
	return Options{
		CanvasSize:    c.CanvasSize,
		MagRatio:      c.MagRatio,
		TextThreshold: c.TextThreshold,
		LowText:       c.LowText,
		LinkThreshold: c.LinkThreshold,
		MergeLines:    c.MergeLines,
	}
}

// OptionsFromJob layers a job's per-call overrides on top of a baseline,
// with the job's fields taking priority whenever they are non-zero.
func OptionsFromJob(base Options, job models.JobOptions) Options {
	opts := base
	if len(job.LangList) > 0 {
		opts.LangList = job.LangList
	}
	if job.Allowlist != "" {
		opts.Allowlist = job.Allowlist
	}
	if job.Blocklist != "" {
		opts.Blocklist = job.Blocklist
	}
	if job.MergeLines {
		opts.MergeLines = true
	}
	if job.CanvasSize != 0 {
		opts.CanvasSize = job.CanvasSize
	}
	if len(job.Rotation) > 0 {
		opts.RotationInfo = job.Rotation
	}
	return opts
}
