package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
)

// ListActionLog 查询操作历史.
func ListActionLog(c *gin.Context) {
	var q types.ActionLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})

		return
	}

	svc := service.NewActionLogService(c.Request.Context())

	res, err := svc.List(c.Request.Context(), &q)
	if err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, res)
}
