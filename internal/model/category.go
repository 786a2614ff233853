package model

// Category 物品分类，表单下拉框的只读参照数据
type Category struct {
	BaseModel
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}
