package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/goocr/internal/imageio"
	"github.com/your-org/goocr/internal/ocr"
	"github.com/your-org/goocr/pkg/dto"
)

// OCRHandler serves the synchronous recognition path: decode, run, respond,
// with no document/job persistence. Meant for small one-off images where the
// caller would rather block than poll a job.
type OCRHandler struct {
	engine   *ocr.Engine
	baseOpts ocr.Options
}

func NewOCRHandler(engine *ocr.Engine, baseOpts ocr.Options) *OCRHandler {
	return &OCRHandler{engine: engine, baseOpts: baseOpts}
}

// Recognize accepts a multipart image upload, runs it through the engine
// synchronously, and returns the recognized regions directly.
func (h *OCRHandler) Recognize(c *gin.Context) {
	if h.engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "synchronous recognition engine not loaded"})
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read image failed"})
		return
	}

	raster, err := imageio.Decode(data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	overrides := h.baseOpts
	if mergeLines := c.Query("merge_lines"); mergeLines == "true" {
		overrides.MergeLines = true
	}

	results, err := h.engine.Run(raster, overrides, ocr.NopTrace{})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	items := make([]dto.OCRResultItem, len(results))
	for i, r := range results {
		items[i] = dto.OCRResultItem{
			Polygon:    [4][2]float64{{r.Polygon[0].X, r.Polygon[0].Y}, {r.Polygon[1].X, r.Polygon[1].Y}, {r.Polygon[2].X, r.Polygon[2].Y}, {r.Polygon[3].X, r.Polygon[3].Y}},
			Text:       r.Text,
			Confidence: r.Confidence,
		}
	}

	c.JSON(http.StatusOK, dto.OCRResponse{Results: items})
}
