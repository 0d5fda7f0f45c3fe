package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/session", h.getSession)
		api.POST("/images", h.uploadImages)
		api.POST("/images/url", h.addImagesByURL)
		api.POST("/images/:id/position", h.setPosition)
		api.DELETE("/images/:id", h.removeImage)
		api.POST("/grid", h.setGrid)
		api.POST("/cellwidth", h.setCellWidth)
		api.POST("/arrange", h.arrange)
		api.POST("/clear", h.clear)
		api.GET("/sheet.png", h.sheetPNG)
		api.POST("/export", h.exportSheet)
		api.GET("/qr", h.qrHandler)
	}
}
