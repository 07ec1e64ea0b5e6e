package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
	"github.com/yeisme/labvault/pkg/log"
)

// ImportLibrary 上传工作簿创建菌株库. 库名来自表单字段 library_name，
// 任意一行校验失败时整批拒绝，库本身也不会创建.
func ImportLibrary(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	libraryName := c.PostForm("library_name")

	blob, name, err := readUploadedWorkbook(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload: " + err.Error()})

		return
	}

	svc := service.NewIngestService(c.Request.Context())

	res, err := svc.ImportLibrary(c.Request.Context(), user, libraryName, blob)
	if err != nil {
		log.Logger().Warn().Err(err).Str("file", name).Str("library", libraryName).Msg("library import rejected")
		respondImportError(c, err)

		return
	}

	c.JSON(http.StatusCreated, res)
}

// GetLibrary 菌株库详情，带全部样本行.
func GetLibrary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewLibraryService(c.Request.Context())

	library, stocks, err := svc.GetWithStocks(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"library": library, "stocks": stocks})
}

// ListLibraries 菌株库列表.
func ListLibraries(c *gin.Context) {
	var q types.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})

		return
	}

	svc := service.NewLibraryService(c.Request.Context())

	res, err := svc.List(c.Request.Context(), &q)
	if err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, res)
}

// DeleteLibrary 删除菌株库，样本行随外键级联删除.
func DeleteLibrary(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewLibraryService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), user, id); err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
