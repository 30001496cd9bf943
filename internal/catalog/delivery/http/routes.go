package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// A single GET handler serves /items/:item_id with q optional.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	items := rg.Group("/items")
	{
		items.POST("/", h.Create)
		items.GET("/:item_id", h.Read)
		items.PUT("/:item_id", h.Replace)
	}
}
