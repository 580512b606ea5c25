package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	docs := rg.Group("/documents")
	{
		docs.POST("/sync", h.SyncDocument)
		docs.POST("/sync-all", h.SyncAll)
	}
}
