package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the pipeline endpoints. The route shape matches what
// the drag-and-drop UI calls: one path, three methods.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/upload", h.Upload)
	r.GET("/upload", h.List)
	r.DELETE("/upload", h.Delete)
}
