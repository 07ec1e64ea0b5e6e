package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在.
	ErrNotFound = gorm.ErrRecordNotFound

	// ErrUnknownEntityType 实体类型不在已知集合内.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrUnreadableWorkbook 上传内容无法作为工作簿解析.
	ErrUnreadableWorkbook = errors.New("unreadable workbook")

	// ErrEmptyWorkbook 工作簿没有数据行.
	ErrEmptyWorkbook = errors.New("workbook has no data rows")
)

// ColumnCountError 工作簿列数与导入目标不匹配，整批拒绝.
type ColumnCountError struct {
	Want int
	Got  int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("workbook has %d columns, want %d", e.Got, e.Want)
}

// RowErrors 汇总所有校验失败的数据行，行号按表格计（表头为第 1 行）.
// 整批拒绝时一次性返回全部坏行，而不是在第一行就停下.
type RowErrors struct {
	Rows []int
}

func (e *RowErrors) Error() string {
	parts := make([]string, 0, len(e.Rows))
	for _, r := range e.Rows {
		parts = append(parts, fmt.Sprintf("%d", r))
	}

	return fmt.Sprintf("invalid rows: %s", strings.Join(parts, ", "))
}

// addRow 记录坏行并保持有序.
func (e *RowErrors) addRow(n int) {
	e.Rows = append(e.Rows, n)
	sort.Ints(e.Rows)
}

// hasErrors 是否存在坏行.
func (e *RowErrors) hasErrors() bool {
	return len(e.Rows) > 0
}
