package upload

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"picdrop/internal/hosting"
	"picdrop/internal/processor"
)

// Handler exposes the pipeline over HTTP. All responses are JSON; every
// failure is converted to a structured error body at this boundary.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /upload: multipart form with a required "file" field,
// optional "format" (webp|png|jpeg|jpg, default webp) and "name" (custom
// title). Responds 200 with {"image": ...} once the image is published and
// recorded.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("upload_error stage=open file=%q error=%q", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("upload_error stage=read file=%q error=%q", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	img, err := h.service.Upload(c.Request.Context(), UploadInput{
		Data:         data,
		OriginalName: fileHeader.Filename,
		Format:       c.PostForm("format"),
		CustomName:   c.PostForm("name"),
	})
	if err != nil {
		h.respondUploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": img})
}

func (h *Handler) respondUploadError(c *gin.Context, err error) {
	var upstream *hosting.UpstreamError

	switch {
	case errors.Is(err, ErrEmptyFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, hosting.ErrMissingAPIKey):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error: Missing API Key"})
	case errors.As(err, &upstream):
		log.Printf("upload_error stage=publish status=%d error=%q", upstream.StatusCode, upstream.Error())
		details := upstream.Body
		if details == "" && upstream.Err != nil {
			details = upstream.Err.Error()
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload to pic.in.th failed", "details": details})
	case errors.Is(err, hosting.ErrUnexpectedResponse):
		log.Printf("upload_error stage=parse error=%q", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to parse upload response"})
	case errors.Is(err, processor.ErrDecode):
		log.Printf("upload_error stage=transform error=%q", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		log.Printf("upload_error stage=record error=%q", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// List handles GET /upload: the full history as a bare JSON array, most
// recent first.
func (h *Handler) List(c *gin.Context) {
	images, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("history_error error=%q", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	if images == nil {
		images = []Image{}
	}
	c.JSON(http.StatusOK, images)
}

type deleteRequest struct {
	ID uint `json:"id"`
}

// Delete handles DELETE /upload with body {"id": N}. Deletion is idempotent:
// removing an id that no longer exists still responds 200.
func (h *Handler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		log.Printf("delete_error id=%d error=%q", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
