package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
)

// AddBookmark 收藏一个实体. 不去重，重复收藏产生多行.
func AddBookmark(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	var req types.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	svc := service.NewBookmarkService(c.Request.Context())

	bm, err := svc.Add(c.Request.Context(), user, &req)
	if err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusCreated, bm)
}

// RemoveBookmark 移除该用户对该实体的全部收藏.
func RemoveBookmark(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	var req types.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	svc := service.NewBookmarkService(c.Request.Context())
	if err := svc.Remove(c.Request.Context(), user, &req); err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "removed"})
}

// BookmarkOverview 该用户的收藏按实体类型分桶聚合.
func BookmarkOverview(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	svc := service.NewBookmarkService(c.Request.Context())

	overview, err := svc.Overview(c.Request.Context(), user)
	if err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, overview)
}
