package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/types"
	"github.com/yeisme/labvault/pkg/metrics"
	"github.com/yeisme/labvault/pkg/queue"
)

// LibraryService 菌株库的查询与删除. 创建只走批量导入（见 IngestService）.
type LibraryService struct {
	baseService
}

func NewLibraryService(c context.Context) *LibraryService {
	return &LibraryService{baseService: newBaseService(c)}
}

// GetWithStocks 取库和它的全部样本行，按物理位置排序.
func (ls *LibraryService) GetWithStocks(ctx context.Context, id uint) (*model.Library, []model.LibStock, error) {
	var library model.Library
	if err := ls.dbClient.WithContext(ctx).First(&library, id).Error; err != nil {
		return nil, nil, err
	}

	var stocks []model.LibStock

	err := ls.dbClient.WithContext(ctx).
		Where("library_id = ?", id).
		Order("plate, letter, number").
		Find(&stocks).Error
	if err != nil {
		return nil, nil, err
	}

	return &library, stocks, nil
}

// List 分页列出菌株库.
func (ls *LibraryService) List(ctx context.Context, q *types.ListQuery) (*types.ListResponse[model.Library], error) {
	q.Normalize()

	query := ls.dbClient.WithContext(ctx).Model(&model.Library{})
	if q.Search != "" {
		query = query.Where("name LIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []model.Library

	err := query.Order("name").
		Offset(q.Offset()).Limit(q.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &types.ListResponse[model.Library]{
		Items: items, Total: total, Page: q.Page, PageSize: q.PageSize,
	}, nil
}

// Delete 删除菌株库. 样本行、它们的附件和收藏都在同一事务里清掉，
// 不依赖数据库端的外键级联（sqlite 默认不开）.
func (ls *LibraryService) Delete(ctx context.Context, user string, id uint) error {
	var library model.Library

	err := ls.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&library, id).Error; err != nil {
			return err
		}

		var stocks []model.LibStock
		if err := tx.Where("library_id = ?", id).Find(&stocks).Error; err != nil {
			return err
		}

		for _, stock := range stocks {
			if err := deleteAttachmentsFor(ctx, tx, ls.s3Client, model.EntityLibStock, stock.ID); err != nil {
				return err
			}
		}

		if err := tx.Where("library_id = ?", id).Delete(&model.LibStock{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.Library{}, id).Error; err != nil {
			return err
		}

		return appendActionLog(tx, user, model.ActionDelete, model.EntityLibrary, id, library.Name)
	})
	if err != nil {
		return err
	}

	metrics.EntityCounter.WithLabelValues(model.EntityLibrary, model.ActionDelete).Inc()
	ls.publishEntityEvent(queue.TopicEntityDeleted, model.EntityLibrary, id, library.Name, user)

	return nil
}
