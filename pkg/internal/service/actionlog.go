package service

import (
	"context"
	"time"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/types"
	nlog "github.com/yeisme/labvault/pkg/log"
)

// ActionLogService 操作历史查询与清理.
type ActionLogService struct {
	baseService
}

func NewActionLogService(c context.Context) *ActionLogService {
	return &ActionLogService{baseService: newBaseService(c)}
}

// List 按条件分页查询操作日志，新的在前.
func (as *ActionLogService) List(ctx context.Context, q *types.ActionLogQuery) (*types.ListResponse[model.ActionLog], error) {
	q.Normalize()

	query := as.dbClient.WithContext(ctx).Model(&model.ActionLog{})

	if q.EntityType != "" {
		query = query.Where("entity_type = ?", q.EntityType)
	}

	if q.EntityID != 0 {
		query = query.Where("entity_id = ?", q.EntityID)
	}

	if q.User != "" {
		query = query.Where("user_name = ?", q.User)
	}

	if q.Action != "" {
		query = query.Where("action = ?", q.Action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []model.ActionLog

	err := query.Order("id DESC").
		Offset(q.Offset()).Limit(q.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &types.ListResponse[model.ActionLog]{
		Items: items, Total: total, Page: q.Page, PageSize: q.PageSize,
	}, nil
}

// Prune 删除早于保留期的日志，返回删除行数. 由定时任务调用.
func (as *ActionLogService) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	result := as.dbClient.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.ActionLog{})
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		nlog.Logger().Info().Int64("rows", result.RowsAffected).Time("cutoff", cutoff).Msg("action log pruned")
	}

	return result.RowsAffected, nil
}
