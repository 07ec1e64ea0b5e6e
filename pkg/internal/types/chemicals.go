package types

// ChemicalRequest 创建/更新化学品，编号由服务端分配，不接受客户端提交.
type ChemicalRequest struct {
	Name           string `json:"name"            rule:"required,max=255"`
	Label          string `json:"label"           rule:"required,chemlabel"` // 单个大写字母
	ManufacturerID *uint  `json:"manufacturer_id"`
	LocationID     *uint  `json:"location_id"`
	InStock        *bool  `json:"in_stock"`
	MSDS           string `json:"msds"            rule:"omitempty,url,max=1024"`
	Notes          string `json:"notes"`
}

// ChemicalResponse 化学品响应，Code 是 label+number 渲染结果.
type ChemicalResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Label          string `json:"label"`
	Number         int    `json:"number"`
	Code           string `json:"code"`
	ManufacturerID *uint  `json:"manufacturer_id"`
	LocationID     *uint  `json:"location_id"`
	InStock        bool   `json:"in_stock"`
	MSDS           string `json:"msds"`
	Notes          string `json:"notes"`
	Creator        string `json:"creator"`
}
