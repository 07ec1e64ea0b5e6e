package model

import (
	"fmt"
	"time"
)

// File 附件元数据，实体通过 (entity_type, entity_id) 松耦合关联.
// 对象内容存到 S3，ObjectKey 是桶内路径.
type File struct {
	ID         uint      `gorm:"primaryKey"                         json:"id"`
	EntityType string    `gorm:"size:64;index:idx_file_entity"      json:"entity_type"`
	EntityID   uint      `gorm:"index:idx_file_entity"              json:"entity_id"`
	FileName   string    `gorm:"size:512"                           json:"file_name"`
	ObjectKey  string    `gorm:"size:1024"                          json:"object_key"`
	Size       int64     `json:"size"`
	Creator    string    `gorm:"size:255"                           json:"creator"`
	CreatedAt  time.Time `json:"created"`
}

// Bookmark 用户收藏，某实体可被同一用户收藏多次，删除时全部清除.
type Bookmark struct {
	ID         uint      `gorm:"primaryKey"                         json:"id"`
	User       string    `gorm:"column:user_name;size:255;index:idx_bm_user" json:"user"`
	EntityType string    `gorm:"size:64;index:idx_bm_entity"        json:"entity_type"`
	EntityID   uint      `gorm:"index:idx_bm_entity"                json:"entity_id"`
	CreatedAt  time.Time `json:"created"`
}

// AttachmentObjectKey 生成对象存储路径: {EntityType}/{EntityID}/{FileName}.
func AttachmentObjectKey(entityType string, entityID uint, fileName string) string {
	return fmt.Sprintf("%s/%d/%s", entityType, entityID, fileName)
}
