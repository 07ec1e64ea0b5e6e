package types

// ListQuery 通用分页查询参数.
type ListQuery struct {
	Page     int    `form:"page"      json:"page"      rule:"omitempty,min=1"`
	PageSize int    `form:"page_size" json:"page_size" rule:"omitempty,min=1,max=500"`
	Search   string `form:"search"    json:"search"    rule:"omitempty,max=255"`
}

// Normalize 填充分页默认值.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 50
	}
}

// Offset 计算 SQL 偏移量.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// ListResponse 通用分页响应.
type ListResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}
