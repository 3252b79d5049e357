package dto

// ========== 列表查询通用 DTO ==========

// ListFilter 列表过滤条件，free-text 搜索加精确匹配的分类过滤
type ListFilter struct {
	Search     string            `json:"search"`
	Selections map[string]string `json:"selections"` // filter-name -> selected value，空串等于没选
}

// ListRequest 列表查询请求，页码从 1 开始
type ListRequest struct {
	PageNum  int        `json:"pageNum"`
	PageSize int        `json:"pageSize"`
	Filter   ListFilter `json:"filter"`
}

// ListMeta 列表分页元信息
type ListMeta struct {
	PageNum  int   `json:"pageNum"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"` // 过滤后的总数
}
