package service

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/storage/s3"
	nlog "github.com/yeisme/labvault/pkg/log"
	"github.com/yeisme/labvault/pkg/queue"
)

// AttachmentService 附件服务. 文件内容放对象存储，元数据进数据库，
// 通过 (entity_type, entity_id) 关联到任意已知实体.
type AttachmentService struct {
	baseService
}

func NewAttachmentService(c context.Context) *AttachmentService {
	return &AttachmentService{baseService: newBaseService(c)}
}

// Upload 上传附件：先写对象存储，再登记元数据. 同名附件覆盖对象但新增元数据行.
func (as *AttachmentService) Upload(ctx context.Context, user, entityType string, entityID uint,
	fileName string, reader io.Reader, size int64, contentType string,
) (*model.File, error) {
	if !model.ValidEntityType(entityType) {
		return nil, ErrUnknownEntityType
	}

	if err := as.ensureEntityExists(ctx, entityType, entityID); err != nil {
		return nil, err
	}

	objectKey := model.AttachmentObjectKey(entityType, entityID, fileName)

	_, err := as.s3Client.PutObject(ctx, as.s3Client.Bucket(), objectKey, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, err
	}

	file := &model.File{
		EntityType: entityType,
		EntityID:   entityID,
		FileName:   fileName,
		ObjectKey:  objectKey,
		Size:       size,
		Creator:    user,
	}

	err = as.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(file).Error; err != nil {
			return err
		}

		return assignPlasmidMap(tx, file)
	})
	if err != nil {
		// 元数据失败时回收已写入的对象，避免孤儿
		if rmErr := as.s3Client.RemoveObject(ctx, as.s3Client.Bucket(), objectKey, minio.RemoveObjectOptions{}); rmErr != nil {
			nlog.Logger().Warn().Err(rmErr).Str("object_key", objectKey).Msg("orphan object cleanup failed")
		}

		return nil, err
	}

	as.publishAttachmentEvent(queue.TopicAttachmentStored, entityType, entityID, objectKey, fileName, size, user)

	return file, nil
}

// List 列出某实体的附件元数据.
func (as *AttachmentService) List(ctx context.Context, entityType string, entityID uint) ([]model.File, error) {
	if !model.ValidEntityType(entityType) {
		return nil, ErrUnknownEntityType
	}

	var files []model.File

	err := as.dbClient.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("id").
		Find(&files).Error
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Download 按附件 ID 取对象内容流，调用方负责 Close.
func (as *AttachmentService) Download(ctx context.Context, id uint) (*model.File, io.ReadCloser, error) {
	var file model.File
	if err := as.dbClient.WithContext(ctx).First(&file, id).Error; err != nil {
		return nil, nil, err
	}

	obj, err := as.s3Client.GetObject(ctx, as.s3Client.Bucket(), file.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, err
	}

	return &file, obj, nil
}

// Delete 删除单个附件. 先删元数据再删对象：对象删除失败只留下可被
// 孤儿清理兜底的残留 blob，反过来会留下指向空对象的元数据行.
func (as *AttachmentService) Delete(ctx context.Context, user string, id uint) error {
	var file model.File
	if err := as.dbClient.WithContext(ctx).First(&file, id).Error; err != nil {
		return err
	}

	err := as.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.File{}, id).Error; err != nil {
			return err
		}

		return releasePlasmidMap(tx, &file)
	})
	if err != nil {
		return err
	}

	if as.s3Client != nil {
		err := as.s3Client.RemoveObject(ctx, as.s3Client.Bucket(), file.ObjectKey, minio.RemoveObjectOptions{})
		if err != nil {
			nlog.Logger().Warn().Err(err).Str("object_key", file.ObjectKey).Msg("attachment object removal failed")
		}
	}

	as.publishAttachmentEvent(queue.TopicAttachmentDeleted, file.EntityType, file.EntityID,
		file.ObjectKey, file.FileName, file.Size, user)

	return nil
}

// assignPlasmidMap 菌株库样本的最新附件就是它的质粒图谱，上传时更新指针.
func assignPlasmidMap(tx *gorm.DB, file *model.File) error {
	if file.EntityType != model.EntityLibStock {
		return nil
	}

	return tx.Model(&model.LibStock{}).
		Where("id = ?", file.EntityID).
		Update("plasmid_map_key", file.ObjectKey).Error
}

// releasePlasmidMap 被删的附件如果正是样本当前的质粒图谱，连指针一起清掉.
func releasePlasmidMap(tx *gorm.DB, file *model.File) error {
	if file.EntityType != model.EntityLibStock {
		return nil
	}

	return tx.Model(&model.LibStock{}).
		Where("id = ? AND plasmid_map_key = ?", file.EntityID, file.ObjectKey).
		Update("plasmid_map_key", "").Error
}

// ensureEntityExists 确认关联目标存在.
func (as *AttachmentService) ensureEntityExists(ctx context.Context, entityType string, entityID uint) error {
	target := model.NewEntity(entityType)
	if target == nil {
		return ErrUnknownEntityType
	}

	return as.dbClient.WithContext(ctx).First(target, entityID).Error
}

func (as *AttachmentService) publishAttachmentEvent(topic, entityType string, entityID uint,
	objectKey, fileName string, size int64, actor string,
) {
	if as.mqClient == nil {
		return
	}

	payload := queue.AttachmentEventPayload{
		Entity:    queue.EntityRef{EntityType: entityType, EntityID: entityID},
		ObjectKey: objectKey,
		FileName:  fileName,
		Size:      size,
		Actor:     actor,
	}

	msg, err := queue.NewWatermillMessage(topic, payload, queue.WithProducer(producerName))
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("encode attachment event failed")

		return
	}

	if err := as.mqClient.Publish(context.Background(), topic, msg); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("publish attachment event failed")
	}
}

// deleteAttachmentsFor 实体删除时的级联清理：附件元数据、对象与收藏一起清掉.
// S3 未配置（纯数据库部署或测试）时跳过对象删除，对象删除失败只记日志，
// 不让残留对象阻塞记录删除.
func deleteAttachmentsFor(ctx context.Context, tx *gorm.DB, s3Client *s3.Client, entityType string, entityID uint) error {
	var files []model.File

	err := tx.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Find(&files).Error
	if err != nil {
		return err
	}

	if s3Client != nil {
		for _, f := range files {
			err := s3Client.RemoveObject(ctx, s3Client.Bucket(), f.ObjectKey, minio.RemoveObjectOptions{})
			if err != nil {
				nlog.Logger().Warn().Err(err).Str("object_key", f.ObjectKey).Msg("cascade object delete failed")
			}
		}
	}

	err = tx.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Delete(&model.File{}).Error
	if err != nil {
		return err
	}

	return tx.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Delete(&model.Bookmark{}).Error
}
