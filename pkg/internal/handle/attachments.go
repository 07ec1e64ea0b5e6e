package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/configs"
	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/log"
)

// UploadAttachment 给实体挂附件. 路径参数指定目标实体，文件走 multipart 表单.
func UploadAttachment(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	entityType := c.Param("entity_type")

	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil || entityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entity id"})

		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})

		return
	}

	maxBytes := configs.GetConfig().Server.MaxUploadBytes()
	if maxBytes > 0 && fh.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})

		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})

		return
	}
	defer f.Close()

	svc := service.NewAttachmentService(c.Request.Context())

	file, err := svc.Upload(c.Request.Context(), user, entityType, uint(entityID),
		fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		log.Logger().Warn().Err(err).Str("entity_type", entityType).Msg("attachment upload failed")
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusCreated, file)
}

// ListAttachments 列出实体的附件.
func ListAttachments(c *gin.Context) {
	entityType := c.Param("entity_type")

	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil || entityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entity id"})

		return
	}

	svc := service.NewAttachmentService(c.Request.Context())

	files, err := svc.List(c.Request.Context(), entityType, uint(entityID))
	if err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"items": files})
}

// DownloadAttachment 下载附件内容.
func DownloadAttachment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewAttachmentService(c.Request.Context())

	file, reader, err := svc.Download(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)

		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.DataFromReader(http.StatusOK, file.Size, "application/octet-stream", reader, nil)
}

// DeleteAttachment 删除单个附件.
func DeleteAttachment(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewAttachmentService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), user, id); err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
