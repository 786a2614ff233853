package model

// ==================== 用户状态 ====================

type UserStatus int

const (
	UserStatusDisabled UserStatus = 0
	UserStatusActive   UserStatus = 1
)

// ==================== 用户模型 ====================

// User 平台用户，既可以是物品主人 (owner) 也可以是租客 (renter)
type User struct {
	BaseModel
	Email    string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string     `gorm:"size:255;not null" json:"-"` // bcrypt hash
	Name     string     `gorm:"size:15" json:"name"`
	Image    string     `gorm:"size:255" json:"image"`
	Bio      string     `gorm:"size:150" json:"bio"`
	Status   UserStatus `gorm:"default:1" json:"status"`

	// 用户发布的物品
	Listings []Listing `gorm:"foreignKey:OwnerID" json:"-"`
}
