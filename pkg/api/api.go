// Package api 汇总对外 HTTP 接口的注册.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/internal/router"
)

// RegisterGroup 把业务路由注册到 /api/v1 分组.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	router.RegisterAll(e.Group("/api/v1"))

	return e
}
