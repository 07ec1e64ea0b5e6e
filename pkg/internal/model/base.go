// Package model 定义实验室库存的 GORM 实体模式.
package model

import (
	"time"
)

// BaseModel 为记录创建者信息的实体提供公共字段.
// Creator 为空表示匿名/系统创建；Created/Updated 由存储层自动维护，调用方不可设置.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey"     json:"id"`
	Creator   string    `gorm:"size:255;index" json:"creator"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// SetCreator 记录操作用户身份.
func (b *BaseModel) SetCreator(actor string) {
	b.Creator = actor
}

// GetID 返回主键.
func (b *BaseModel) GetID() uint {
	return b.ID
}
