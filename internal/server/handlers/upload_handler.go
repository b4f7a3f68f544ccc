package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tally-service/internal/storage"
)

type UploadHandler struct {
	store *storage.MinIOClient
}

func NewUploadHandler(store *storage.MinIOClient) *UploadHandler {
	return &UploadHandler{store: store}
}

// @Summary Upload an attachment
// @Description Store a DR-form or incident photo and return its URL
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Attachment"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "attachment storage not configured"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	url, err := h.store.UploadAttachment(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
