package dto

// ==================== 响应 DTO ====================

// OwnerResp 物品归属者的公开信息
type OwnerResp struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

// ItemResp 物品详情
type ItemResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PricePerDay float64   `json:"pricePerDay"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CategoryID  string    `json:"categoryId"`
	Category    string    `json:"category,omitempty"`
	LocationID  string    `json:"locationId"`
	Location    string    `json:"location,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Owner       OwnerResp `json:"owner"`
	CreatedAt   string    `json:"createdAt"`
}

// ItemListResp 物品列表响应
type ItemListResp struct {
	Code     int        `json:"code"`
	Message  string     `json:"message"`
	Data     []ItemResp `json:"data"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// SubmitItemResp 创建/更新成功响应，data 至少带回 id
type SubmitItemResp struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Data    ItemResp `json:"data"`
}
