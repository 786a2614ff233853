package dto

// ==================== 页面数据 DTO ====================

// RefResp 参照数据条目 (分类/城区)
type RefResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemFormPageResp 物品表单页的预取数据
// 服务端在表单首次渲染之前一次性下发，表单核心自身不再拉取
type ItemFormPageResp struct {
	Categories []RefResp `json:"categories"`
	Locations  []RefResp `json:"locations"`
}
