package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/types"
	"github.com/yeisme/labvault/pkg/metrics"
	"github.com/yeisme/labvault/pkg/queue"
	"github.com/yeisme/labvault/pkg/rule"
)

// ChemicalService 化学品服务，编码分配是唯一入口：Number 永远由 allocateNumber 产生.
type ChemicalService struct {
	baseService
}

func NewChemicalService(c context.Context) *ChemicalService {
	return &ChemicalService{baseService: newBaseService(c)}
}

// allocateNumber 在事务内取 label 当前最大编号加一.
// (label, number) 上有唯一索引兜底：并发分配撞号时插入报错，错误原样上抛，绝不吞掉.
func allocateNumber(tx *gorm.DB, label string) (int, error) {
	var maxNumber int

	err := tx.Model(&model.Chemical{}).
		Where("label = ?", label).
		Select("COALESCE(MAX(number), 0)").
		Scan(&maxNumber).Error
	if err != nil {
		return 0, fmt.Errorf("query max number for label %q: %w", label, err)
	}

	return maxNumber + 1, nil
}

// Create 新建化学品，编号在插入事务内分配.
func (cs *ChemicalService) Create(ctx context.Context, user string, req *types.ChemicalRequest) (*model.Chemical, error) {
	if err := rule.ValidateStruct(req); err != nil {
		return nil, err
	}

	chem := &model.Chemical{
		Name:           req.Name,
		Label:          req.Label,
		ManufacturerID: req.ManufacturerID,
		LocationID:     req.LocationID,
		InStock:        true,
		MSDS:           req.MSDS,
		Notes:          req.Notes,
	}
	if req.InStock != nil {
		chem.InStock = *req.InStock
	}

	chem.SetCreator(user)

	err := cs.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := allocateNumber(tx, chem.Label)
		if err != nil {
			return err
		}

		chem.Number = number

		if err := tx.Create(chem).Error; err != nil {
			return err
		}

		return appendActionLog(tx, user, model.ActionCreate, model.EntityChemical, chem.ID, chem.Code())
	})
	if err != nil {
		return nil, err
	}

	metrics.EntityCounter.WithLabelValues(model.EntityChemical, model.ActionCreate).Inc()
	cs.publishEntityEvent(queue.TopicEntityCreated, model.EntityChemical, chem.ID, chem.Code(), user)

	return chem, nil
}

// Update 更新化学品. 换 label 会在同一事务里重新分配编号，旧编号不回收；
// 客户端传来的 number 一律忽略.
func (cs *ChemicalService) Update(ctx context.Context, user string, id uint, req *types.ChemicalRequest) (*model.Chemical, error) {
	if err := rule.ValidateStruct(req); err != nil {
		return nil, err
	}

	var chem model.Chemical

	err := cs.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&chem, id).Error; err != nil {
			return err
		}

		if req.Label != chem.Label {
			number, err := allocateNumber(tx, req.Label)
			if err != nil {
				return err
			}

			chem.Label = req.Label
			chem.Number = number
		}

		chem.Name = req.Name
		chem.ManufacturerID = req.ManufacturerID
		chem.LocationID = req.LocationID
		chem.MSDS = req.MSDS
		chem.Notes = req.Notes

		if req.InStock != nil {
			chem.InStock = *req.InStock
		}

		if err := tx.Save(&chem).Error; err != nil {
			return err
		}

		return appendActionLog(tx, user, model.ActionUpdate, model.EntityChemical, chem.ID, chem.Code())
	})
	if err != nil {
		return nil, err
	}

	metrics.EntityCounter.WithLabelValues(model.EntityChemical, model.ActionUpdate).Inc()
	cs.publishEntityEvent(queue.TopicEntityUpdated, model.EntityChemical, chem.ID, chem.Code(), user)

	return &chem, nil
}

// Get 按主键取化学品.
func (cs *ChemicalService) Get(ctx context.Context, id uint) (*model.Chemical, error) {
	var chem model.Chemical

	err := cs.dbClient.WithContext(ctx).
		Preload("Manufacturer").
		Preload("Location").
		First(&chem, id).Error
	if err != nil {
		return nil, err
	}

	return &chem, nil
}

// List 分页列出化学品，search 匹配名称.
func (cs *ChemicalService) List(ctx context.Context, q *types.ListQuery) (*types.ListResponse[model.Chemical], error) {
	q.Normalize()

	query := cs.dbClient.WithContext(ctx).Model(&model.Chemical{})
	if q.Search != "" {
		query = query.Where("name LIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []model.Chemical

	err := query.Order("label, number").
		Offset(q.Offset()).Limit(q.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &types.ListResponse[model.Chemical]{
		Items: items, Total: total, Page: q.Page, PageSize: q.PageSize,
	}, nil
}

// Delete 删除化学品并级联清理附件、收藏与历史归档.
func (cs *ChemicalService) Delete(ctx context.Context, user string, id uint) error {
	var chem model.Chemical

	err := cs.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&chem, id).Error; err != nil {
			return err
		}

		if err := deleteAttachmentsFor(ctx, tx, cs.s3Client, model.EntityChemical, id); err != nil {
			return err
		}

		if err := tx.Delete(&model.Chemical{}, id).Error; err != nil {
			return err
		}

		return appendActionLog(tx, user, model.ActionDelete, model.EntityChemical, id, chem.Code())
	})
	if err != nil {
		return err
	}

	metrics.EntityCounter.WithLabelValues(model.EntityChemical, model.ActionDelete).Inc()
	cs.publishEntityEvent(queue.TopicEntityDeleted, model.EntityChemical, id, chem.Code(), user)

	return nil
}

// ToResponse 转换为响应 DTO，附带渲染后的编码.
func (cs *ChemicalService) ToResponse(chem *model.Chemical) *types.ChemicalResponse {
	return &types.ChemicalResponse{
		ID:             chem.ID,
		Name:           chem.Name,
		Label:          chem.Label,
		Number:         chem.Number,
		Code:           chem.Code(),
		ManufacturerID: chem.ManufacturerID,
		LocationID:     chem.LocationID,
		InStock:        chem.InStock,
		MSDS:           chem.MSDS,
		Notes:          chem.Notes,
		Creator:        chem.Creator,
	}
}
