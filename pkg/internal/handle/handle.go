// Package handle 提供 HTTP 请求处理器实现.
package handle

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/rule"
)

func DefaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "Not Implemented"})
}

// checkUser 提取操作用户身份. 部署在 oauth2-proxy 之类的认证网关后面，
// 网关注入的 Header 优先；非 Release 模式下给个测试默认值.
func checkUser(c *gin.Context) (string, error) {
	user := c.GetHeader("X-Auth-Request-Email")
	if user == "" {
		user = c.GetHeader("X-Forwarded-Email")
	}

	if user == "" {
		user = c.GetHeader("X-User")
	}

	if user == "" && gin.Mode() != gin.ReleaseMode {
		user = "test-user@example.com"
	}

	user = strings.TrimSpace(user)

	if err := rule.ValidateVar(user, "required,email"); err != nil {
		return "", err
	}

	return user, nil
}

// pathID 解析 :id 路径参数.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})

		return 0, false
	}

	return uint(id), true
}

// respondServiceError 把服务层错误映射为 HTTP 状态码.
// 唯一约束冲突（编码分配撞号等）原样向上抛成 409，不做重试.
func respondServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrUnknownEntityType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": verrs.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
