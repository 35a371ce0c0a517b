package detector

import "log/slog"

// HeatmapRatio derives the detector's spatial downsampling ratio from the
// actual heatmap shape vs. the padded input shape fed to the model, rather
// than hard-coding the traditional CRAFT "/2". Falls back to 2 (with a
// logged warning) when the ratio is not a clean integer, since a fractional
// stride indicates an inconsistency worth surfacing rather than a model
// variant worth silently supporting.
func HeatmapRatio(inputW, inputH, heatmapW, heatmapH int) float64 {
	if heatmapW == 0 || heatmapH == 0 {
		slog.Warn("detector heatmap has zero dimension, falling back to ratio 2", "heatmapW", heatmapW, "heatmapH", heatmapH)
		return 2
	}
	ratioX := float64(inputW) / float64(heatmapW)
	ratioY := float64(inputH) / float64(heatmapH)
	if ratioX != ratioY || ratioX != float64(int(ratioX)) {
		slog.Warn("detector heatmap ratio is not a consistent integer, falling back to 2",
			"ratioX", ratioX, "ratioY", ratioY)
		return 2
	}
	return ratioX
}
