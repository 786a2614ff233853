package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hyrstacken_api/internal/model"
)

// ==================== BookingRepository 预订仓库 ====================

// BookingRepository 预订仓库接口
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error
	ListByRenter(ctx context.Context, renterID string) ([]model.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Booking, error)
	// ExpirePendingBefore 把起租日早于 cutoff 且仍为 pending 的预订置为 expired，
	// 返回受影响条数
	ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ==================== 实现 ====================

type bookingRepo struct {
	db *gorm.DB
}

// NewBookingRepository 创建预订仓库
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepo) ListByRenter(ctx context.Context, renterID string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("renter_id = ?", renterID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("status = ? AND start_date < ?", model.BookingStatusPending, cutoff).
		Update("status", model.BookingStatusExpired)
	return res.RowsAffected, res.Error
}
