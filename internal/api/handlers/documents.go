package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/goocr/internal/imageio"
	"github.com/your-org/goocr/internal/storage"
	"github.com/your-org/goocr/pkg/dto"
)

type DocumentHandler struct {
	db    *storage.PostgresStore
	minio *storage.MinIOStore
}

func NewDocumentHandler(db *storage.PostgresStore, minio *storage.MinIOStore) *DocumentHandler {
	return &DocumentHandler{db: db, minio: minio}
}

// Upload accepts a multipart image, decodes it to capture width/height, and
// stores the original bytes in object storage alongside a Document row.
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
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

	sourceKey := "documents/" + uuid.New().String() + "_" + header.Filename
	contentType := header.Header.Get("Content-Type")
	if err := h.minio.PutObject(c.Request.Context(), sourceKey, data, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store image failed"})
		return
	}

	doc, err := h.db.CreateDocument(c.Request.Context(), sourceKey, contentType, raster.Width, raster.Height, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.DocumentResponse{
		ID:          doc.ID,
		Width:       doc.Width,
		Height:      doc.Height,
		ContentType: doc.ContentType,
		Metadata:    doc.Metadata,
		CreatedAt:   doc.CreatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document id"})
		return
	}

	doc, err := h.db.GetDocument(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	c.JSON(http.StatusOK, dto.DocumentResponse{
		ID:          doc.ID,
		Width:       doc.Width,
		Height:      doc.Height,
		ContentType: doc.ContentType,
		Metadata:    doc.Metadata,
		CreatedAt:   doc.CreatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.db.ListDocuments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, dto.DocumentResponse{
			ID:          d.ID,
			Width:       d.Width,
			Height:      d.Height,
			ContentType: d.ContentType,
			Metadata:    d.Metadata,
			CreatedAt:   d.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	c.JSON(http.StatusOK, dto.DocumentListResponse{Documents: resp})
}
