package service

import (
	"context"
	"fmt"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/types"
)

// BookmarkService 收藏服务. 收藏不去重：同一用户重复收藏同一实体会产生多行，
// 移除时一次清掉该用户对该实体的所有收藏行.
type BookmarkService struct {
	baseService
}

func NewBookmarkService(c context.Context) *BookmarkService {
	return &BookmarkService{baseService: newBaseService(c)}
}

// Add 添加收藏，目标实体必须存在.
func (bs *BookmarkService) Add(ctx context.Context, user string, req *types.BookmarkRequest) (*model.Bookmark, error) {
	target := model.NewEntity(req.EntityType)
	if target == nil {
		return nil, ErrUnknownEntityType
	}

	if err := bs.dbClient.WithContext(ctx).First(target, req.EntityID).Error; err != nil {
		return nil, err
	}

	bm := &model.Bookmark{
		User:       user,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
	}

	if err := bs.dbClient.WithContext(ctx).Create(bm).Error; err != nil {
		return nil, err
	}

	return bm, nil
}

// Remove 移除该用户对该实体的全部收藏行.
func (bs *BookmarkService) Remove(ctx context.Context, user string, req *types.BookmarkRequest) error {
	return bs.dbClient.WithContext(ctx).
		Where("user_name = ? AND entity_type = ? AND entity_id = ?", user, req.EntityType, req.EntityID).
		Delete(&model.Bookmark{}).Error
}

// overviewBuckets 聚合视图的固定桶集合. 不在这个集合里的收藏行（来自已下线的
// 实体类型）不报错，静默跳过.
var overviewBuckets = []string{
	model.EntityChemical,
	model.EntityManufacturer,
	model.EntityLocation,
	model.EntityPrimer,
	model.EntityPlasmid,
	model.EntityStrain,
	model.EntityStock,
	model.EntityLibStock,
	model.EntityGenome,
	model.EntityProtocol,
	model.EntityTag,
}

// Overview 按实体类型分桶聚合该用户的收藏.
func (bs *BookmarkService) Overview(ctx context.Context, user string) (*types.BookmarkOverview, error) {
	var bookmarks []model.Bookmark

	err := bs.dbClient.WithContext(ctx).
		Where("user_name = ?", user).
		Order("id").
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]types.BookmarkedItem, len(overviewBuckets))
	for _, b := range overviewBuckets {
		buckets[b] = []types.BookmarkedItem{}
	}

	for _, bm := range bookmarks {
		items, known := buckets[bm.EntityType]
		if !known {
			continue
		}

		display, err := bs.displayFor(ctx, bm.EntityType, bm.EntityID)
		if err != nil {
			continue
		}

		buckets[bm.EntityType] = append(items, types.BookmarkedItem{
			EntityID: bm.EntityID,
			Display:  display,
		})
	}

	return &types.BookmarkOverview{
		Chemicals:     buckets[model.EntityChemical],
		Manufacturers: buckets[model.EntityManufacturer],
		Locations:     buckets[model.EntityLocation],
		Primers:       buckets[model.EntityPrimer],
		Plasmids:      buckets[model.EntityPlasmid],
		Strains:       buckets[model.EntityStrain],
		Stocks:        buckets[model.EntityStock],
		LibStocks:     buckets[model.EntityLibStock],
		Genomes:       buckets[model.EntityGenome],
		Protocols:     buckets[model.EntityProtocol],
		Tags:          buckets[model.EntityTag],
	}, nil
}

// displayFor 渲染收藏项的人类可读标识.
func (bs *BookmarkService) displayFor(ctx context.Context, entityType string, entityID uint) (string, error) {
	db := bs.dbClient.WithContext(ctx)

	switch entityType {
	case model.EntityChemical:
		var chem model.Chemical
		if err := db.First(&chem, entityID).Error; err != nil {
			return "", err
		}

		return fmt.Sprintf("%s %s", chem.Code(), chem.Name), nil
	case model.EntityManufacturer:
		var m model.Manufacturer
		if err := db.First(&m, entityID).Error; err != nil {
			return "", err
		}

		return m.Name, nil
	case model.EntityLocation:
		var l model.StorageLocation
		if err := db.First(&l, entityID).Error; err != nil {
			return "", err
		}

		return l.Name, nil
	case model.EntityPrimer:
		var p model.Primer
		if err := db.First(&p, entityID).Error; err != nil {
			return "", err
		}

		return p.Sequence, nil
	case model.EntityPlasmid:
		var p model.Plasmid
		if err := db.First(&p, entityID).Error; err != nil {
			return "", err
		}

		return p.Name, nil
	case model.EntityStrain:
		var s model.Strain
		if err := db.First(&s, entityID).Error; err != nil {
			return "", err
		}

		return s.Name, nil
	case model.EntityStock:
		var s model.Stock
		if err := db.Preload("Strain").Preload("Plasmid").First(&s, entityID).Error; err != nil {
			return "", err
		}

		return stockDisplay(&s), nil
	case model.EntityLibStock:
		var s model.LibStock
		if err := db.First(&s, entityID).Error; err != nil {
			return "", err
		}

		return fmt.Sprintf("%s (%s)", s.StockID, s.Location()), nil
	case model.EntityGenome:
		var g model.Genome
		if err := db.First(&g, entityID).Error; err != nil {
			return "", err
		}

		return g.Title, nil
	case model.EntityProtocol:
		var p model.Protocol
		if err := db.First(&p, entityID).Error; err != nil {
			return "", err
		}

		return p.Title, nil
	case model.EntityTag:
		var t model.Tag
		if err := db.First(&t, entityID).Error; err != nil {
			return "", err
		}

		return t.Name, nil
	default:
		return "", ErrUnknownEntityType
	}
}

func stockDisplay(s *model.Stock) string {
	strain := "-"
	if s.Strain != nil {
		strain = s.Strain.Name
	}

	plasmid := "-"
	if s.Plasmid != nil {
		plasmid = s.Plasmid.Name
	}

	return fmt.Sprintf("%s / %s", strain, plasmid)
}
