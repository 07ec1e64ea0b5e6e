package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
	"github.com/yeisme/labvault/pkg/log"
)

// CreateChemical 新建化学品，编号由服务端分配.
func CreateChemical(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	var req types.ChemicalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	svc := service.NewChemicalService(c.Request.Context())

	chem, err := svc.Create(c.Request.Context(), user, &req)
	if err != nil {
		log.Logger().Warn().Err(err).Msg("create chemical failed")
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusCreated, svc.ToResponse(chem))
}

// GetChemical 化学品详情.
func GetChemical(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewChemicalService(c.Request.Context())

	chem, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, svc.ToResponse(chem))
}

// ListChemicals 化学品列表.
func ListChemicals(c *gin.Context) {
	var q types.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})

		return
	}

	svc := service.NewChemicalService(c.Request.Context())

	res, err := svc.List(c.Request.Context(), &q)
	if err != nil {
		respondServiceError(c, err)

		return
	}

	items := make([]*types.ChemicalResponse, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, svc.ToResponse(&res.Items[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"total":     res.Total,
		"page":      res.Page,
		"page_size": res.PageSize,
	})
}

// UpdateChemical 更新化学品，换 label 会重新分配编号.
func UpdateChemical(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.ChemicalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	svc := service.NewChemicalService(c.Request.Context())

	chem, err := svc.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		log.Logger().Warn().Err(err).Uint("id", id).Msg("update chemical failed")
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, svc.ToResponse(chem))
}

// DeleteChemical 删除化学品并级联清理附件与收藏.
func DeleteChemical(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := service.NewChemicalService(c.Request.Context())
	if err := svc.Delete(c.Request.Context(), user, id); err != nil {
		respondServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
