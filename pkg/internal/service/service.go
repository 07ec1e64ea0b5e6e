// Package service 实现库存业务逻辑：编码分配、批量导入、附件与收藏.
package service

import (
	"context"

	ctxPkg "github.com/yeisme/labvault/pkg/context"
	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/storage/db"
	"github.com/yeisme/labvault/pkg/internal/storage/mq"
	"github.com/yeisme/labvault/pkg/internal/storage/s3"
	nlog "github.com/yeisme/labvault/pkg/log"
	"github.com/yeisme/labvault/pkg/queue"
	"gorm.io/gorm"
)

const producerName = "labvault"

// baseService 持有所有业务服务共享的存储客户端.
type baseService struct {
	dbClient *db.Client
	s3Client *s3.Client
	mqClient *mq.Client
}

func newBaseService(c context.Context) baseService {
	return baseService{
		dbClient: ctxPkg.GetDBClient(c),
		s3Client: ctxPkg.GetS3Client(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// publishEntityEvent 发布实体变更事件. MQ 未配置或发布失败只记日志，不影响主流程.
func (s *baseService) publishEntityEvent(topic, entityType string, entityID uint, display, actor string) {
	if s.mqClient == nil {
		return
	}

	payload := queue.EntityEventPayload{
		Entity: queue.EntityRef{EntityType: entityType, EntityID: entityID, Display: display},
		Actor:  actor,
	}

	msg, err := queue.NewWatermillMessage(topic, payload, queue.WithProducer(producerName))
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("encode entity event failed")

		return
	}

	if err := s.mqClient.Publish(context.Background(), topic, msg); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("publish entity event failed")
	}
}

// appendActionLog 在给定事务/连接上追加一条操作日志.
func appendActionLog(tx *gorm.DB, user, action, entityType string, entityID uint, detail string) error {
	entry := model.ActionLog{
		User:       user,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}

	return tx.Create(&entry).Error
}
