package model

import (
	"fmt"
)

// Manufacturer 化学品生产商.
type Manufacturer struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255"   json:"name" rule:"required"`
}

func (m *Manufacturer) GetID() uint { return m.ID }

// StorageLocation 存放位置（冰箱、货架等）.
type StorageLocation struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255"   json:"name" rule:"required"`
}

func (l *StorageLocation) GetID() uint { return l.ID }

// Chemical 化学品记录. (label, number) 组成全局唯一编码，例如 "A12".
// Number 由代码分配器在保存时生成，永远不接受外部输入.
type Chemical struct {
	BaseModel
	Name           string           `gorm:"size:255"                           json:"name"  rule:"required"`
	Label          string           `gorm:"size:1;index:idx_chem_code,unique"  json:"label" rule:"chemlabel"`
	Number         int              `gorm:"index:idx_chem_code,unique"         json:"number"`
	ManufacturerID *uint            `json:"manufacturer_id"`
	Manufacturer   *Manufacturer    `gorm:"constraint:OnDelete:SET NULL" json:"manufacturer,omitempty"`
	LocationID     *uint            `json:"location_id"`
	Location       *StorageLocation `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`
	InStock        bool             `gorm:"default:true" json:"in_stock"`
	MSDS           string           `gorm:"size:512"     json:"msds"  rule:"omitempty,url"`
	Notes          string           `gorm:"type:text"    json:"notes"`
}

// Code 渲染化学品编码，例如 "A12".
func (c *Chemical) Code() string {
	return fmt.Sprintf("%s%d", c.Label, c.Number)
}

func (c *Chemical) String() string {
	return c.Name
}
