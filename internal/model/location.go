package model

// Location 城区/街区 (stadsdel)，同样是只读参照数据
type Location struct {
	BaseModel
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}
