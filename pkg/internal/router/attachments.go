package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/internal/handle"
)

// RegisterAttachmentRoutes 注册附件路由.
func RegisterAttachmentRoutes(g *gin.RouterGroup) {
	attachments := g.Group("/attachments")
	{
		// 按实体列出与上传
		attachments.GET("/:entity_type/:entity_id", handle.ListAttachments)
		attachments.POST("/:entity_type/:entity_id", handle.UploadAttachment)

		// 按附件 ID 下载与删除
		attachments.GET("/:entity_type/:entity_id/:id/download", handle.DownloadAttachment)
		attachments.DELETE("/:entity_type/:entity_id/:id", handle.DeleteAttachment)
	}
}

// RegisterBookmarkRoutes 注册收藏路由.
func RegisterBookmarkRoutes(g *gin.RouterGroup) {
	bookmarks := g.Group("/bookmarks")
	{
		bookmarks.POST("", handle.AddBookmark)
		bookmarks.DELETE("", handle.RemoveBookmark)
		bookmarks.GET("/overview", handle.BookmarkOverview)
	}
}

// RegisterActionLogRoutes 注册操作历史路由.
func RegisterActionLogRoutes(g *gin.RouterGroup) {
	g.GET("/actionlog", handle.ListActionLog)
}
