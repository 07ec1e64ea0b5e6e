package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/types"
	"github.com/yeisme/labvault/pkg/log"
)

// CatalogRoutes 一组目录实体的 REST 处理器.
type CatalogRoutes struct {
	Create gin.HandlerFunc
	Get    gin.HandlerFunc
	List   gin.HandlerFunc
	Update gin.HandlerFunc
	Delete gin.HandlerFunc
}

// NewCatalogRoutes 为一个目录实体生成整套处理器.
func NewCatalogRoutes[T any](entityType string, searchColumns []string, orderBy string) CatalogRoutes {
	svc := func(c *gin.Context) *service.CatalogService[T] {
		return service.NewCatalogService[T](c.Request.Context(), entityType, searchColumns, orderBy)
	}

	return CatalogRoutes{
		Create: func(c *gin.Context) {
			user, err := checkUser(c)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

				return
			}

			var item T
			if err := c.ShouldBindJSON(&item); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

				return
			}

			created, err := svc(c).Create(c.Request.Context(), user, &item)
			if err != nil {
				log.Logger().Warn().Err(err).Str("entity_type", entityType).Msg("catalog create failed")
				respondServiceError(c, err)

				return
			}

			c.JSON(http.StatusCreated, created)
		},
		Get: func(c *gin.Context) {
			id, ok := pathID(c)
			if !ok {
				return
			}

			item, err := svc(c).Get(c.Request.Context(), id)
			if err != nil {
				respondServiceError(c, err)

				return
			}

			c.JSON(http.StatusOK, item)
		},
		List: func(c *gin.Context) {
			var q types.ListQuery
			if err := c.ShouldBindQuery(&q); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})

				return
			}

			res, err := svc(c).List(c.Request.Context(), &q)
			if err != nil {
				respondServiceError(c, err)

				return
			}

			c.JSON(http.StatusOK, res)
		},
		Update: func(c *gin.Context) {
			user, err := checkUser(c)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

				return
			}

			id, ok := pathID(c)
			if !ok {
				return
			}

			var item T
			if err := c.ShouldBindJSON(&item); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

				return
			}

			updated, err := svc(c).Update(c.Request.Context(), user, id, &item)
			if err != nil {
				respondServiceError(c, err)

				return
			}

			c.JSON(http.StatusOK, updated)
		},
		Delete: func(c *gin.Context) {
			user, err := checkUser(c)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})

				return
			}

			id, ok := pathID(c)
			if !ok {
				return
			}

			if err := svc(c).Delete(c.Request.Context(), user, id); err != nil {
				respondServiceError(c, err)

				return
			}

			c.JSON(http.StatusOK, gin.H{"message": "deleted"})
		},
	}
}

// 各目录实体的处理器集合，路由层直接挂载.
var (
	ManufacturerRoutes = NewCatalogRoutes[model.Manufacturer](model.EntityManufacturer, []string{"name"}, "name")
	LocationRoutes     = NewCatalogRoutes[model.StorageLocation](model.EntityLocation, []string{"name"}, "name")
	PlasmidRoutes      = NewCatalogRoutes[model.Plasmid](model.EntityPlasmid, []string{"name", "marker"}, "name")
	StrainRoutes       = NewCatalogRoutes[model.Strain](model.EntityStrain, []string{"name", "species"}, "name")
	StockRoutes        = NewCatalogRoutes[model.Stock](model.EntityStock, nil, "id")
	LibStockRoutes     = NewCatalogRoutes[model.LibStock](model.EntityLibStock, []string{"stock_id", "species", "gene_target"}, "plate, letter, number")
	TagRoutes          = NewCatalogRoutes[model.Tag](model.EntityTag, []string{"name"}, "name")
	ProtocolRoutes     = NewCatalogRoutes[model.Protocol](model.EntityProtocol, []string{"title"}, "title")
	GenomeRoutes       = NewCatalogRoutes[model.Genome](model.EntityGenome, []string{"title"}, "title")
)
