package model

import "github.com/lib/pq"

// Listing 出租物品 (annons)
type Listing struct {
	BaseModel

	// --- 基本信息 ---
	// 长度上限与校验规则保持一致: 标题 50、描述 250
	Title       string  `gorm:"size:50;not null;index" json:"title"`
	Description string  `gorm:"size:250;not null" json:"description"`
	PricePerDay float64 `gorm:"default:0" json:"pricePerDay"` // 日租金，0 表示免费
	ImageURL    string  `gorm:"size:255" json:"imageUrl"`

	// --- 分类与地区 (引用完整性由后端保证) ---
	CategoryID string    `gorm:"size:36;not null;index" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	LocationID string    `gorm:"size:36;not null;index" json:"locationId"`
	Location   *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`

	// --- 归属 ---
	// 只有 owner 本人可以编辑
	OwnerID string `gorm:"size:36;not null;index" json:"ownerId"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	// --- 搜索标签 (Postgres Array) ---
	Tags pq.StringArray `gorm:"type:text[]" json:"tags"`
}
