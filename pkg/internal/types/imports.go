package types

// ImportResult 批量导入成功响应.
type ImportResult struct {
	Imported int    `json:"imported"`          // 写入行数
	Library  string `json:"library,omitempty"` // 菌株库导入时的库名
}

// ImportErrorResponse 批量导入被拒时返回的错误体.
// Rows 采用表格行号（表头为第 1 行）.
type ImportErrorResponse struct {
	Error string `json:"error"`
	Want  int    `json:"want_columns,omitempty"`
	Got   int    `json:"got_columns,omitempty"`
	Rows  []int  `json:"rows,omitempty"`
}
