package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/types"
	"github.com/yeisme/labvault/pkg/metrics"
	"github.com/yeisme/labvault/pkg/queue"
	"github.com/yeisme/labvault/pkg/rule"
)

// creatorSetter 能记录创建者的模型.
type creatorSetter interface {
	SetCreator(string)
}

// CatalogService 按实体类型参数化的通用 CRUD 服务，
// 承载没有专属业务规则的目录实体（生产商、位置、质粒、菌株等）.
type CatalogService[T any] struct {
	baseService

	entityType    string
	searchColumns []string
	orderBy       string
}

// NewCatalogService 构造目录服务. searchColumns 是 List 搜索命中的列.
func NewCatalogService[T any](c context.Context, entityType string, searchColumns []string, orderBy string) *CatalogService[T] {
	return &CatalogService[T]{
		baseService:   newBaseService(c),
		entityType:    entityType,
		searchColumns: searchColumns,
		orderBy:       orderBy,
	}
}

func (cs *CatalogService[T]) display(item *T) string {
	if s, ok := any(item).(fmt.Stringer); ok {
		return s.String()
	}

	return cs.entityType
}

func (cs *CatalogService[T]) idOf(item *T) uint {
	if e, ok := any(item).(model.Entity); ok {
		return e.GetID()
	}

	return 0
}

// Create 校验后插入，实现 creatorSetter 的模型会盖上创建者.
func (cs *CatalogService[T]) Create(ctx context.Context, user string, item *T) (*T, error) {
	if setter, ok := any(item).(creatorSetter); ok {
		setter.SetCreator(user)
	}

	if err := rule.ValidateStruct(item); err != nil {
		return nil, err
	}

	err := cs.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}

		return appendActionLog(tx, user, model.ActionCreate, cs.entityType, cs.idOf(item), cs.display(item))
	})
	if err != nil {
		return nil, err
	}

	metrics.EntityCounter.WithLabelValues(cs.entityType, model.ActionCreate).Inc()
	cs.publishEntityEvent(queue.TopicEntityCreated, cs.entityType, cs.idOf(item), cs.display(item), user)

	return item, nil
}

// Get 按主键取记录.
func (cs *CatalogService[T]) Get(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := cs.dbClient.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

// List 分页列出记录.
func (cs *CatalogService[T]) List(ctx context.Context, q *types.ListQuery) (*types.ListResponse[T], error) {
	q.Normalize()

	var zero T

	query := cs.dbClient.WithContext(ctx).Model(&zero)

	if q.Search != "" && len(cs.searchColumns) > 0 {
		clauses := make([]string, 0, len(cs.searchColumns))
		args := make([]any, 0, len(cs.searchColumns))

		for _, col := range cs.searchColumns {
			clauses = append(clauses, col+" LIKE ?")
			args = append(args, "%"+q.Search+"%")
		}

		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	if cs.orderBy != "" {
		query = query.Order(cs.orderBy)
	}

	var items []T
	if err := query.Offset(q.Offset()).Limit(q.PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return &types.ListResponse[T]{
		Items: items, Total: total, Page: q.Page, PageSize: q.PageSize,
	}, nil
}

// Update 全量更新. ID、创建者与创建时间不可改，零值字段照常覆盖.
func (cs *CatalogService[T]) Update(ctx context.Context, user string, id uint, item *T) (*T, error) {
	if err := rule.ValidateStruct(item); err != nil {
		return nil, err
	}

	var existing T

	err := cs.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		err := tx.Model(&existing).
			Select("*").
			Omit("id", "creator", "created_at").
			Updates(item).Error
		if err != nil {
			return err
		}

		return appendActionLog(tx, user, model.ActionUpdate, cs.entityType, id, cs.display(item))
	})
	if err != nil {
		return nil, err
	}

	if err := cs.dbClient.WithContext(ctx).First(&existing, id).Error; err != nil {
		return nil, err
	}

	metrics.EntityCounter.WithLabelValues(cs.entityType, model.ActionUpdate).Inc()
	cs.publishEntityEvent(queue.TopicEntityUpdated, cs.entityType, id, cs.display(&existing), user)

	return &existing, nil
}

// Delete 删除记录并级联清理附件与收藏.
func (cs *CatalogService[T]) Delete(ctx context.Context, user string, id uint) error {
	var existing T

	err := cs.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		if err := deleteAttachmentsFor(ctx, tx, cs.s3Client, cs.entityType, id); err != nil {
			return err
		}

		if err := tx.Delete(&existing, id).Error; err != nil {
			return err
		}

		return appendActionLog(tx, user, model.ActionDelete, cs.entityType, id, cs.display(&existing))
	})
	if err != nil {
		return err
	}

	metrics.EntityCounter.WithLabelValues(cs.entityType, model.ActionDelete).Inc()
	cs.publishEntityEvent(queue.TopicEntityDeleted, cs.entityType, id, cs.display(&existing), user)

	return nil
}
