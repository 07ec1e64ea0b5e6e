// Package router 管理路由配置，用于设置HTTP服务的路由规则.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/internal/handle"
)

// RegisterAll 把全部业务路由挂到给定分组（通常是 /api/v1）.
func RegisterAll(g *gin.RouterGroup) {
	RegisterHealthCheckRoute(g)
	RegisterInventoryRoutes(g)
	RegisterLibraryRoutes(g)
	RegisterAttachmentRoutes(g)
	RegisterBookmarkRoutes(g)
	RegisterActionLogRoutes(g)
	RegisterSchedulerRoutes(g)
}

// registerCatalog 为一个目录实体挂一套 REST 路由.
func registerCatalog(g *gin.RouterGroup, path string, routes handle.CatalogRoutes) {
	group := g.Group(path)
	{
		group.POST("", routes.Create)
		group.GET("", routes.List)
		group.GET("/:id", routes.Get)
		group.PUT("/:id", routes.Update)
		group.DELETE("/:id", routes.Delete)
	}
}
