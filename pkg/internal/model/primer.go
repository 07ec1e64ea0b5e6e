package model

// Primer 引物记录. Sequence 保存时归一化为大写，字母表限定 {A,T,C,G,N,R,Y}.
type Primer struct {
	BaseModel
	Sequence         string  `gorm:"size:255"  json:"sequence" rule:"required,dnaseq"`
	Tm               float64 `json:"tm"`
	Template         string  `gorm:"size:255"  json:"template"`
	Location         string  `gorm:"size:255"  json:"location"`
	RestrictionSites string  `gorm:"size:255"  json:"restriction_sites"`
	Notes            string  `gorm:"type:text" json:"notes"`
}
