package model

// Strain 菌株记录，名称唯一且 slug 安全.
type Strain struct {
	BaseModel
	Name       string `gorm:"size:255;uniqueIndex" json:"name" rule:"required,slug"`
	Species    string `gorm:"size:255"             json:"species" rule:"required"`
	Genotype   string `gorm:"size:255"             json:"genotype"`
	Resistance string `gorm:"size:255"             json:"resistance"`
	Notes      string `gorm:"type:text"            json:"notes"`
}

func (s *Strain) String() string {
	return s.Name
}

// Stock 物理样本，组合可选的菌株与可选的质粒.
type Stock struct {
	BaseModel
	StrainID  *uint    `json:"strain_id"`
	Strain    *Strain  `gorm:"constraint:OnDelete:SET NULL" json:"strain,omitempty"`
	PlasmidID *uint    `json:"plasmid_id"`
	Plasmid   *Plasmid `gorm:"constraint:OnDelete:SET NULL" json:"plasmid,omitempty"`
	Notes     string   `gorm:"type:text" json:"notes"`
}
