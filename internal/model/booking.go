package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 预订状态 ====================

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"   // 等待物主处理
	BookingStatusAccepted  BookingStatus = "accepted"  // 物主已接受
	BookingStatusDeclined  BookingStatus = "declined"  // 物主已拒绝
	BookingStatusExpired   BookingStatus = "expired"   // 起租日前未处理，定时任务置为过期
	BookingStatusCancelled BookingStatus = "cancelled" // 租客主动取消
	BookingStatusDone      BookingStatus = "done"      // 归还完成
)

// ValidBookingStatus 判断是否为合法状态值
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusDeclined,
		BookingStatusExpired, BookingStatusCancelled, BookingStatusDone:
		return true
	}
	return false
}

// ==================== 预订模型 ====================

// Booking 租借请求
// 不挂关联 struct，只存外键。下单时的物品标题/价格会快照进 Snapshot，
// 物品后续被改价或下架也不影响历史预订的展示
type Booking struct {
	BaseModel
	ListingID string        `gorm:"size:36;not null;index" json:"itemId"`
	RenterID  string        `gorm:"size:36;not null;index" json:"renterId"`
	OwnerID   string        `gorm:"size:36;not null;index" json:"ownerId"` // 冗余存储，查询"我收到的预订"用
	StartDate time.Time     `gorm:"not null" json:"startDate"`
	EndDate   time.Time     `gorm:"not null" json:"endDate"`
	Status    BookingStatus `gorm:"size:20;default:pending;index" json:"status"`

	// 下单时物品信息快照 (title / pricePerDay / imageUrl)
	Snapshot datatypes.JSON `json:"snapshot"`
}
