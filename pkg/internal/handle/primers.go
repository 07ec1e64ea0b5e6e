package handle

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/configs"
	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
	"github.com/yeisme/labvault/pkg/log"
)

// CreatePrimer 新建引物.
func CreatePrimer(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	var req types.PrimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	svc := service.NewPrimerService(c.Request.Context())

	primer, err := svc.Create(c.Request.Context(), user, &req)
	if err != nil {
		log.Logger().Warn().Err(err).Msg("create primer failed")
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusCreated, primer)
}

// GetPrimer 引物详情.
func GetPrimer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewPrimerService(c.Request.Context())

	primer, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, primer)
}

// ListPrimers 引物列表.
func ListPrimers(c *gin.Context) {
	var q types.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})

		return
	}

	svc := service.NewPrimerService(c.Request.Context())

	res, err := svc.List(c.Request.Context(), &q)
	if err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, res)
}

// UpdatePrimer 更新引物.
func UpdatePrimer(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.PrimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	svc := service.NewPrimerService(c.Request.Context())

	primer, err := svc.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, primer)
}

// DeletePrimer 删除引物.
func DeletePrimer(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewPrimerService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), user, id); err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// readUploadedWorkbook 从 multipart 表单读出上传的工作簿内容.
func readUploadedWorkbook(c *gin.Context) ([]byte, string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", err
	}

	maxBytes := configs.GetConfig().Server.MaxUploadBytes()
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, fh.Filename, errors.New("file too large")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fh.Filename, err
	}
	defer f.Close()

	blob, err := io.ReadAll(f)
	if err != nil {
		return nil, fh.Filename, err
	}

	return blob, fh.Filename, nil
}

// respondImportError 把导入错误映射为响应. 坏行号一次性全量返回.
func respondImportError(c *gin.Context, err error) {
	var (
		colErr  *service.ColumnCountError
		rowErrs *service.RowErrors
	)

	switch {
	case errors.Is(err, service.ErrUnreadableWorkbook):
		c.JSON(http.StatusBadRequest, types.ImportErrorResponse{Error: "failed to read file"})
	case errors.Is(err, service.ErrEmptyWorkbook):
		c.JSON(http.StatusBadRequest, types.ImportErrorResponse{Error: "workbook has no data rows"})
	case errors.As(err, &colErr):
		c.JSON(http.StatusBadRequest, types.ImportErrorResponse{
			Error: "incorrect number of columns in file",
			Want:  colErr.Want,
			Got:   colErr.Got,
		})
	case errors.As(err, &rowErrs):
		c.JSON(http.StatusUnprocessableEntity, types.ImportErrorResponse{
			Error: "file contains errors in the listed rows",
			Rows:  rowErrs.Rows,
		})
	default:
		respondServiceError(c, err)
	}
}

// ImportPrimers 从上传的工作簿批量导入引物，整批成功或整批拒绝.
func ImportPrimers(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	blob, name, err := readUploadedWorkbook(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload: " + err.Error()})

		return
	}

	svc := service.NewIngestService(c.Request.Context())

	res, err := svc.ImportPrimers(c.Request.Context(), user, blob)
	if err != nil {
		log.Logger().Warn().Err(err).Str("file", name).Msg("primer import rejected")
		respondImportError(c, err)

		return
	}

	c.JSON(http.StatusCreated, res)
}
