package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"hyrstacken_api/internal/api/dto"
	"hyrstacken_api/internal/model"
	"hyrstacken_api/internal/repository"
	"hyrstacken_api/internal/schema"
)

// ==================== 错误定义 ====================

var (
	ErrBookingNotFound     = errors.New("预订不存在")
	ErrOwnBooking          = errors.New("不能预订自己的物品")
	ErrInvalidPeriod       = errors.New("归还日期不能早于起租日期")
	ErrNotParticipant      = errors.New("无权操作该预订")
	ErrForbiddenTransition = errors.New("当前状态不允许该操作")
)

// ==================== BookingService 预订服务 ====================

// BookingService 租借请求的创建与状态流转
// 状态机: pending -> accepted/declined (物主)、pending -> cancelled (租客)、
// pending -> expired (定时任务)、accepted -> done (物主)
type BookingService struct {
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
}

// NewBookingService 创建预订服务
func NewBookingService(bookingRepo repository.BookingRepository, listingRepo repository.ListingRepository) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
	}
}

// Create 发起租借请求，in 必须是 schema.ValidateBooking 的产物
func (s *BookingService) Create(ctx context.Context, renterID string, in *schema.BookingInput) (*model.Booking, error) {
	if in.EndDate.Before(in.StartDate) {
		return nil, ErrInvalidPeriod
	}

	listing, err := s.listingRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	if listing.OwnerID == renterID {
		return nil, ErrOwnBooking
	}

	// 快照下单时的物品信息
	snapshot, err := json.Marshal(map[string]any{
		"title":       listing.Title,
		"pricePerDay": listing.PricePerDay,
		"imageUrl":    listing.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		ListingID: listing.ID,
		RenterID:  renterID,
		OwnerID:   listing.OwnerID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    model.BookingStatusPending,
		Snapshot:  snapshot,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateStatus 状态流转，actorID 为当前会话用户
func (s *BookingService) UpdateStatus(ctx context.Context, id, actorID string, status string) (*model.Booking, error) {
	if !model.ValidBookingStatus(status) {
		return nil, ErrForbiddenTransition
	}
	target := model.BookingStatus(status)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if actorID != booking.OwnerID && actorID != booking.RenterID {
		return nil, ErrNotParticipant
	}

	if !allowedTransition(booking, actorID, target) {
		return nil, ErrForbiddenTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	booking.Status = target
	return booking, nil
}

// allowedTransition 谁在什么状态下可以把预订改成什么
func allowedTransition(b *model.Booking, actorID string, target model.BookingStatus) bool {
	isOwner := actorID == b.OwnerID
	isRenter := actorID == b.RenterID

	switch b.Status {
	case model.BookingStatusPending:
		if isOwner && (target == model.BookingStatusAccepted || target == model.BookingStatusDeclined) {
			return true
		}
		if isRenter && target == model.BookingStatusCancelled {
			return true
		}
	case model.BookingStatusAccepted:
		if isOwner && target == model.BookingStatusDone {
			return true
		}
	}
	return false
}

// ListForUser 用户相关的全部预订：发出的 (租客) + 收到的 (物主)
func (s *BookingService) ListForUser(ctx context.Context, userID string) (sent, received []model.Booking, err error) {
	sent, err = s.bookingRepo.ListByRenter(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	received, err = s.bookingRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return sent, received, nil
}

// ExpireStale 把起租日已过且仍未处理的预订置为 expired，定时任务调用
func (s *BookingService) ExpireStale(ctx context.Context) (int64, error) {
	count, err := s.bookingRepo.ExpirePendingBefore(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Printf("[Booking] %d 条超期未处理的预订已置为 expired", count)
	}
	return count, nil
}

// ==================== DTO 转换 ====================

// ToBookingResp Model -> 响应 DTO
func (s *BookingService) ToBookingResp(b *model.Booking) dto.BookingResp {
	resp := dto.BookingResp{
		ID:        b.ID,
		ItemID:    b.ListingID,
		RenterID:  b.RenterID,
		OwnerID:   b.OwnerID,
		StartDate: b.StartDate.Format("2006-01-02"),
		EndDate:   b.EndDate.Format("2006-01-02"),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if len(b.Snapshot) > 0 {
		var snap map[string]any
		if err := json.Unmarshal(b.Snapshot, &snap); err == nil {
			resp.Snapshot = snap
		}
	}
	return resp
}
