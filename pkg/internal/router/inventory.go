package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/internal/handle"
)

// RegisterInventoryRoutes 注册库存实体路由.
// 化学品和引物有专属业务规则（编码分配、序列归一化），其余实体走通用目录服务.
func RegisterInventoryRoutes(g *gin.RouterGroup) {
	chemicals := g.Group("/chemicals")
	{
		chemicals.POST("", handle.CreateChemical)
		chemicals.GET("", handle.ListChemicals)
		chemicals.GET("/:id", handle.GetChemical)
		chemicals.PUT("/:id", handle.UpdateChemical)
		chemicals.DELETE("/:id", handle.DeleteChemical)
	}

	primers := g.Group("/primers")
	{
		primers.POST("", handle.CreatePrimer)
		primers.GET("", handle.ListPrimers)
		primers.GET("/:id", handle.GetPrimer)
		primers.PUT("/:id", handle.UpdatePrimer)
		primers.DELETE("/:id", handle.DeletePrimer)

		// 批量导入，整批成功或整批拒绝
		primers.POST("/import", handle.ImportPrimers)
	}

	registerCatalog(g, "/manufacturers", handle.ManufacturerRoutes)
	registerCatalog(g, "/locations", handle.LocationRoutes)
	registerCatalog(g, "/plasmids", handle.PlasmidRoutes)
	registerCatalog(g, "/strains", handle.StrainRoutes)
	registerCatalog(g, "/stocks", handle.StockRoutes)
	registerCatalog(g, "/libstocks", handle.LibStockRoutes)
	registerCatalog(g, "/tags", handle.TagRoutes)
	registerCatalog(g, "/protocols", handle.ProtocolRoutes)
	registerCatalog(g, "/genomes", handle.GenomeRoutes)
}
