package media

import (
	"errors"
	"net/http"

	xerrors "lionscars-service/internal/pkg/errors"
	"lionscars-service/internal/service/media"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadHandler is the multipart upload boundary. Its responses keep the
// wire shape the storefront already depends on: {url} on success,
// {error, details} on failure.
type UploadHandler struct {
	ingestor *media.Ingestor
	logger   *zap.Logger
}

func NewUploadHandler(ingestor *media.Ingestor, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		ingestor: ingestor,
		logger:   logger,
	}
}

// Upload accepts one image plus the target vehicle's marca and modelo.
func (h *UploadHandler) Upload(c *gin.Context) {
	marca := c.PostForm("marca")
	modelo := c.PostForm("modelo")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se recibió imagen"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al leer la imagen", "details": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.ingestor.Ingest(c.Request.Context(), file, fileHeader.Filename, marca, modelo)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"url": url})
	case errors.Is(err, xerrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Marca y modelo son obligatorios para subir imagen"})
	case errors.Is(err, xerrors.ErrUnsupportedMedia):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de archivo no permitido", "details": err.Error()})
	default:
		h.logger.Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar la imagen", "details": err.Error()})
	}
}
