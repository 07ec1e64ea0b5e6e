package types

// PrimerRequest 创建/更新引物，序列在服务端归一化为大写后校验.
type PrimerRequest struct {
	Sequence         string  `json:"sequence" rule:"required,max=255"`
	Tm               float64 `json:"tm"`
	Template         string  `json:"template"          rule:"omitempty,max=255"`
	Location         string  `json:"location"          rule:"omitempty,max=255"`
	RestrictionSites string  `json:"restriction_sites" rule:"omitempty,max=255"`
	Notes            string  `json:"notes"`
}
