package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/types"
	"github.com/yeisme/labvault/pkg/metrics"
	"github.com/yeisme/labvault/pkg/queue"
	"github.com/yeisme/labvault/pkg/rule"
)

// PrimerService 引物服务. 序列先归一化为大写再校验，不合字母表的序列整条拒绝.
type PrimerService struct {
	baseService
}

func NewPrimerService(c context.Context) *PrimerService {
	return &PrimerService{baseService: newBaseService(c)}
}

// NormalizeSequence 归一化引物序列：去空白、转大写.
func NormalizeSequence(seq string) string {
	return strings.ToUpper(strings.TrimSpace(seq))
}

func (ps *PrimerService) fromRequest(req *types.PrimerRequest, user string) (*model.Primer, error) {
	primer := &model.Primer{
		Sequence:         NormalizeSequence(req.Sequence),
		Tm:               req.Tm,
		Template:         req.Template,
		Location:         req.Location,
		RestrictionSites: req.RestrictionSites,
		Notes:            req.Notes,
	}
	primer.SetCreator(user)

	if err := rule.ValidateStruct(primer); err != nil {
		return nil, err
	}

	return primer, nil
}

// Create 新建引物.
func (ps *PrimerService) Create(ctx context.Context, user string, req *types.PrimerRequest) (*model.Primer, error) {
	primer, err := ps.fromRequest(req, user)
	if err != nil {
		return nil, err
	}

	err = ps.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(primer).Error; err != nil {
			return err
		}

		return appendActionLog(tx, user, model.ActionCreate, model.EntityPrimer, primer.ID, primer.Sequence)
	})
	if err != nil {
		return nil, err
	}

	metrics.EntityCounter.WithLabelValues(model.EntityPrimer, model.ActionCreate).Inc()
	ps.publishEntityEvent(queue.TopicEntityCreated, model.EntityPrimer, primer.ID, primer.Sequence, user)

	return primer, nil
}

// Update 更新引物，序列同样走归一化和校验.
func (ps *PrimerService) Update(ctx context.Context, user string, id uint, req *types.PrimerRequest) (*model.Primer, error) {
	var primer model.Primer

	err := ps.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&primer, id).Error; err != nil {
			return err
		}

		primer.Sequence = NormalizeSequence(req.Sequence)
		primer.Tm = req.Tm
		primer.Template = req.Template
		primer.Location = req.Location
		primer.RestrictionSites = req.RestrictionSites
		primer.Notes = req.Notes

		if err := rule.ValidateStruct(&primer); err != nil {
			return err
		}

		if err := tx.Save(&primer).Error; err != nil {
			return err
		}

		return appendActionLog(tx, user, model.ActionUpdate, model.EntityPrimer, primer.ID, primer.Sequence)
	})
	if err != nil {
		return nil, err
	}

	metrics.EntityCounter.WithLabelValues(model.EntityPrimer, model.ActionUpdate).Inc()
	ps.publishEntityEvent(queue.TopicEntityUpdated, model.EntityPrimer, primer.ID, primer.Sequence, user)

	return &primer, nil
}

// Get 按主键取引物.
func (ps *PrimerService) Get(ctx context.Context, id uint) (*model.Primer, error) {
	var primer model.Primer
	if err := ps.dbClient.WithContext(ctx).First(&primer, id).Error; err != nil {
		return nil, err
	}

	return &primer, nil
}

// List 分页列出引物，search 匹配序列或模板.
func (ps *PrimerService) List(ctx context.Context, q *types.ListQuery) (*types.ListResponse[model.Primer], error) {
	q.Normalize()

	query := ps.dbClient.WithContext(ctx).Model(&model.Primer{})
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("sequence LIKE ? OR template LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []model.Primer

	err := query.Order("id").
		Offset(q.Offset()).Limit(q.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &types.ListResponse[model.Primer]{
		Items: items, Total: total, Page: q.Page, PageSize: q.PageSize,
	}, nil
}

// Delete 删除引物并级联清理附件与收藏.
func (ps *PrimerService) Delete(ctx context.Context, user string, id uint) error {
	var primer model.Primer

	err := ps.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&primer, id).Error; err != nil {
			return err
		}

		if err := deleteAttachmentsFor(ctx, tx, ps.s3Client, model.EntityPrimer, id); err != nil {
			return err
		}

		if err := tx.Delete(&model.Primer{}, id).Error; err != nil {
			return err
		}

		return appendActionLog(tx, user, model.ActionDelete, model.EntityPrimer, id, primer.Sequence)
	})
	if err != nil {
		return err
	}

	metrics.EntityCounter.WithLabelValues(model.EntityPrimer, model.ActionDelete).Inc()
	ps.publishEntityEvent(queue.TopicEntityDeleted, model.EntityPrimer, id, primer.Sequence, user)

	return nil
}
