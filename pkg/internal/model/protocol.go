package model

// Tag 协议标签.
type Tag struct {
	ID   uint   `gorm:"primaryKey"           json:"id"`
	Name string `gorm:"size:255;uniqueIndex" json:"name" rule:"required,slug"`
}

func (t *Tag) GetID() uint { return t.ID }

// Protocol 实验协议，长文本正文加标签.
type Protocol struct {
	BaseModel
	Title string `gorm:"size:255"                json:"title" rule:"required"`
	Body  string `gorm:"type:text"               json:"body"  rule:"required"`
	Tags  []Tag  `gorm:"many2many:protocol_tags" json:"tags,omitempty"`
}

func (p *Protocol) String() string {
	return p.Title
}

// Genome 基因组记录，长文本正文.
type Genome struct {
	BaseModel
	Title string `gorm:"size:255"  json:"title" rule:"required"`
	Body  string `gorm:"type:text" json:"body"  rule:"required"`
}

func (g *Genome) String() string {
	return g.Title
}
