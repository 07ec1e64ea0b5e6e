// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	"github.com/yeisme/labvault/pkg/configs"
	ctxPkg "github.com/yeisme/labvault/pkg/context"
	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/service"
	"github.com/yeisme/labvault/pkg/internal/storage"
	"github.com/yeisme/labvault/pkg/log"
	"github.com/yeisme/labvault/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：
//   - 每天 03:30 按保留期清理操作日志
//   - 每周日 04:00 清理指向已删除实体的孤儿附件元数据
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	_ = sched.AddCron(JobActionLogPrune, CronActionLogPrune, func(ctx context.Context) {
		runActionLogPrune(baseCtx)
	}, baseCtx)

	_ = sched.AddCron(JobAttachmentOrphanGC, CronAttachmentOrphanGC, func(ctx context.Context) {
		runAttachmentOrphanGC(baseCtx, mgr)
	}, baseCtx)

	return nil
}

// runActionLogPrune 按配置的保留天数清理过期操作日志.
func runActionLogPrune(ctx context.Context) {
	l := log.Logger().With().Str("job", JobActionLogPrune).Logger()

	days := configs.GetConfig().Audit.RetentionDays
	svc := service.NewActionLogService(ctx)

	n, err := svc.Prune(ctx, days)
	if err != nil {
		l.Error().Err(err).Msg("prune failed")

		return
	}

	l.Info().Int64("pruned", n).Int("retention_days", days).Msg("action log prune done")
}

// runAttachmentOrphanGC 扫描指向不存在实体的附件元数据并删除.
// 正常路径靠删除时的级联清理，这里兜底处理历史残留.
func runAttachmentOrphanGC(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobAttachmentOrphanGC).Logger()

	dbc := mgr.GetDBClient()
	if dbc == nil || dbc.GetDB() == nil {
		l.Error().Msg("db not initialized")

		return
	}

	dbx := dbc.GetDB().WithContext(ctx)

	var files []model.File
	if err := dbx.Find(&files).Error; err != nil {
		l.Error().Err(err).Msg("list attachments failed")

		return
	}

	s3c := mgr.GetS3Client()
	removed := 0

	for _, f := range files {
		target := model.NewEntity(f.EntityType)
		if target == nil {
			continue
		}

		err := dbx.First(target, f.EntityID).Error
		if err == nil {
			continue
		}

		// 只有确认实体不存在才算孤儿，瞬时数据库错误不能当删除依据
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			l.Error().Err(err).Uint("file_id", f.ID).Msg("entity lookup failed, skipping")

			continue
		}

		if err := dbx.Delete(&model.File{}, f.ID).Error; err != nil {
			l.Error().Err(err).Uint("file_id", f.ID).Msg("delete orphan failed")

			continue
		}

		// 元数据删掉后对象也一并回收，失败只记日志
		if s3c != nil {
			if err := s3c.RemoveObject(ctx, s3c.Bucket(), f.ObjectKey, minio.RemoveObjectOptions{}); err != nil {
				l.Warn().Err(err).Str("object_key", f.ObjectKey).Msg("orphan object removal failed")
			}
		}

		removed++
	}

	if removed > 0 {
		l.Info().Int("removed", removed).Msg("orphan attachment metadata cleaned")
	}
}
