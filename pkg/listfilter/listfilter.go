package listfilter

import (
	"strings"
)

// 列表过滤管道：自由文本搜索 + 若干分类等值过滤，AND 组合。
// 每次都从完整的原始列表重新计算，放宽过滤条件时记录才能回来；
// 过滤只做筛选不做排序，输出保持输入的相对顺序。

// Query 一次过滤的全部条件
type Query struct {
	// Text 自由文本，大小写不敏感的子串匹配，命中任一 SearchFields 即通过；空串恒通过
	Text string
	// SearchFields 参与自由文本匹配的字段名
	SearchFields []string
	// Selections 分类过滤：字段名 -> 选中值，精确字符串相等；空串表示未选择，忽略
	Selections map[string]string
}

// FieldFunc 取一条记录上某个命名字段的字符串值
type FieldFunc[T any] func(item T, field string) string

// Apply 对 items 应用过滤管道，返回新切片，不改动输入
func Apply[T any](items []T, q Query, field FieldFunc[T]) []T {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchText(item, text, q.SearchFields, field) {
			continue
		}
		if !matchSelections(item, q.Selections, field) {
			continue
		}
		out = append(out, item)
	}

	return out
}

func matchText[T any](item T, text string, fields []string, field FieldFunc[T]) bool {
	if text == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(field(item, f)), text) {
			return true
		}
	}
	return false
}

func matchSelections[T any](item T, selections map[string]string, field FieldFunc[T]) bool {
	for f, want := range selections {
		if want == "" {
			continue
		}
		if field(item, f) != want {
			return false
		}
	}
	return true
}

// Paginate 过滤后的定长分页，pageNum 从 1 开始，越界返回空切片
func Paginate[T any](items []T, pageNum, pageSize int) []T {
	if pageNum < 1 || pageSize < 1 {
		return items[:0]
	}

	start := (pageNum - 1) * pageSize
	if start >= len(items) {
		return items[:0]
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
