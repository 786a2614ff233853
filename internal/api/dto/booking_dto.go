package dto

// ==================== 预订 DTO ====================

// UpdateBookingStatusReq 预订状态流转请求
type UpdateBookingStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// BookingResp 预订详情
type BookingResp struct {
	ID        string         `json:"id"`
	ItemID    string         `json:"itemId"`
	RenterID  string         `json:"renterId"`
	OwnerID   string         `json:"ownerId"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Status    string         `json:"status"`
	Snapshot  map[string]any `json:"snapshot,omitempty"`
	CreatedAt string         `json:"createdAt"`
}
