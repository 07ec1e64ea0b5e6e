package model

import "time"

// 操作类型常量.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionImport = "import"
)

// ActionLog 记录实体的变更历史，定期按保留期清理.
type ActionLog struct {
	ID         uint      `gorm:"primaryKey"                        json:"id"`
	User       string    `gorm:"column:user_name;size:255;index"   json:"user"`
	Action     string    `gorm:"size:32"                           json:"action"`
	EntityType string    `gorm:"size:64;index:idx_al_entity"       json:"entity_type"`
	EntityID   uint      `gorm:"index:idx_al_entity"               json:"entity_id"`
	Detail     string    `gorm:"type:text"                         json:"detail"`
	CreatedAt  time.Time `gorm:"index"                             json:"created"`
}
