package model

// Plasmid 质粒记录，名称唯一且 slug 安全，和引物多对多关联.
type Plasmid struct {
	BaseModel
	Name    string   `gorm:"size:255;uniqueIndex"       json:"name" rule:"required,slug"`
	Marker  string   `gorm:"size:255"                   json:"marker"`
	Notes   string   `gorm:"type:text"                  json:"notes"`
	Primers []Primer `gorm:"many2many:plasmid_primers;" json:"primers,omitempty"`
}

func (p *Plasmid) String() string {
	return p.Name
}
