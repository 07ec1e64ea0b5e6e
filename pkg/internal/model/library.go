package model

import (
	"fmt"
)

// Library 批量导入生成的菌株库集合.
type Library struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255"   json:"name" rule:"required"`
}

func (l *Library) String() string {
	return l.Name
}

func (l *Library) GetID() uint { return l.ID }

// LibStock 库内单支样本，带物理位置三元组 (plate, letter, number).
// StockID 是自由格式编号，可能是数字也可能是字母串.
type LibStock struct {
	ID         uint     `gorm:"primaryKey"                                     json:"id"`
	LibraryID  uint     `gorm:"index"                                          json:"library_id"`
	Library    *Library `gorm:"constraint:OnDelete:CASCADE"                    json:"library,omitempty"`
	StockID    string   `gorm:"column:stock_id;size:255"                       json:"stock_id" rule:"required"`
	Plate      int      `json:"plate"  rule:"min=1"`
	Letter     string   `gorm:"size:1" json:"letter" rule:"wellletter"`
	Number     int      `json:"number" rule:"min=1"`
	Species    string   `gorm:"size:255" json:"species" rule:"required"`
	GeneTarget string   `gorm:"size:255" json:"gene_target"`
	// PlasmidMapKey 当前质粒图谱附件的对象键，随样本附件的上传/删除维护.
	PlasmidMapKey   string  `gorm:"size:1024" json:"plasmid_map_key"`
	ForwardPrimerID *uint   `json:"forward_primer_id"`
	ForwardPrimer   *Primer `gorm:"constraint:OnDelete:SET NULL" json:"forward_primer,omitempty"`
	Resistance      string  `gorm:"size:255"  json:"resistance"`
	Notes           string  `gorm:"type:text" json:"notes"`
}

func (s *LibStock) GetID() uint { return s.ID }

// Location 渲染物理位置，例如 "Plate 2, well B7".
func (s *LibStock) Location() string {
	return fmt.Sprintf("Plate %d, well %s%d", s.Plate, s.Letter, s.Number)
}
