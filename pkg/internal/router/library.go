package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/internal/handle"
)

// RegisterLibraryRoutes 注册菌株库路由. 创建只走批量导入.
func RegisterLibraryRoutes(g *gin.RouterGroup) {
	libraries := g.Group("/libraries")
	{
		libraries.POST("/import", handle.ImportLibrary)
		libraries.GET("", handle.ListLibraries)
		libraries.GET("/:id", handle.GetLibrary)
		libraries.DELETE("/:id", handle.DeleteLibrary)
	}
}
