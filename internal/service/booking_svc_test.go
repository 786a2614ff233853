package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"hyrstacken_api/internal/model"
	"hyrstacken_api/internal/schema"
)

// ==================== 内存预订仓储 ====================

type fakeBookingRepo struct {
	bookings map[string]*model.Booking
	nextID   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*model.Booking{}}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *model.Booking) error {
	r.nextID++
	b.ID = fmt.Sprintf("b%d", r.nextID)
	b.CreatedAt = time.Now()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status model.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) ListByRenter(_ context.Context, renterID string) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range r.bookings {
		if b.RenterID == renterID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range r.bookings {
		if b.OwnerID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ExpirePendingBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if b.Status == model.BookingStatusPending && b.StartDate.Before(cutoff) {
			b.Status = model.BookingStatusExpired
			n++
		}
	}
	return n, nil
}

// ==================== 测试环境 ====================

func newBookingService(t *testing.T) (*BookingService, *fakeBookingRepo) {
	t.Helper()

	listingRepo := newFakeListingRepo()
	listing := &model.Listing{
		Title:       "Kajak",
		Description: "Tvåsitsig",
		PricePerDay: 200,
		CategoryID:  "c1",
		LocationID:  "l1",
		OwnerID:     "owner",
	}
	listing.ID = "p1"
	if err := listingRepo.Create(context.Background(), listing); err != nil {
		t.Fatalf("准备物品失败: %v", err)
	}

	bookingRepo := newFakeBookingRepo()
	return NewBookingService(bookingRepo, listingRepo), bookingRepo
}

func makeBooking(t *testing.T, svc *BookingService, renterID string) *model.Booking {
	t.Helper()
	b, err := svc.Create(context.Background(), renterID, bookingInput("p1", 3, 5))
	if err != nil {
		t.Fatalf("创建预订失败: %v", err)
	}
	return b
}

func bookingInput(itemID string, startDays, endDays int) *schema.BookingInput {
	return &schema.BookingInput{
		ItemID:    itemID,
		StartDate: time.Now().AddDate(0, 0, startDays),
		EndDate:   time.Now().AddDate(0, 0, endDays),
	}
}

// ==================== 创建 ====================

func TestBookingService_Create(t *testing.T) {
	svc, _ := newBookingService(t)

	b := makeBooking(t, svc, "renter")
	if b.Status != model.BookingStatusPending {
		t.Errorf("新预订状态 = %v, want pending", b.Status)
	}
	if b.OwnerID != "owner" || b.RenterID != "renter" {
		t.Errorf("参与方不正确: owner=%q renter=%q", b.OwnerID, b.RenterID)
	}

	// 快照保存下单时的物品信息
	var snap map[string]any
	if err := json.Unmarshal(b.Snapshot, &snap); err != nil {
		t.Fatalf("快照解析失败: %v", err)
	}
	if snap["title"] != "Kajak" || snap["pricePerDay"] != float64(200) {
		t.Errorf("快照内容不对: %v", snap)
	}
}

func TestBookingService_CreateRejections(t *testing.T) {
	svc, _ := newBookingService(t)

	// 自己的物品不能租
	if _, err := svc.Create(context.Background(), "owner", bookingInput("p1", 3, 5)); !errors.Is(err, ErrOwnBooking) {
		t.Errorf("物主自租应返回 ErrOwnBooking, 实际 %v", err)
	}

	// 归还早于起租
	if _, err := svc.Create(context.Background(), "renter", bookingInput("p1", 5, 3)); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("区间倒置应返回 ErrInvalidPeriod, 实际 %v", err)
	}

	// 物品不存在
	if _, err := svc.Create(context.Background(), "renter", bookingInput("ghost", 3, 5)); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("未知物品应返回 ErrListingNotFound, 实际 %v", err)
	}
}

// ==================== 状态流转 ====================

func TestBookingService_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		target  string
		wantErr error
	}{
		{"物主接受", "owner", "accepted", nil},
		{"物主拒绝", "owner", "declined", nil},
		{"租客取消", "renter", "cancelled", nil},
		{"租客不能替物主接受", "renter", "accepted", ErrForbiddenTransition},
		{"物主不能替租客取消", "owner", "cancelled", ErrForbiddenTransition},
		{"pending 不能直接 done", "owner", "done", ErrForbiddenTransition},
		{"局外人无权操作", "stranger", "accepted", ErrNotParticipant},
		{"非法状态值", "owner", "banana", ErrForbiddenTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newBookingService(t)
			b := makeBooking(t, svc, "renter")

			updated, err := svc.UpdateStatus(context.Background(), b.ID, tt.actor, tt.target)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("流转失败: %v", err)
			}
			if string(updated.Status) != tt.target {
				t.Errorf("status = %v, want %v", updated.Status, tt.target)
			}
		})
	}
}

func TestBookingService_AcceptedThenDone(t *testing.T) {
	svc, _ := newBookingService(t)
	b := makeBooking(t, svc, "renter")

	if _, err := svc.UpdateStatus(context.Background(), b.ID, "owner", "accepted"); err != nil {
		t.Fatalf("接受失败: %v", err)
	}
	// accepted 之后租客不能再取消
	if _, err := svc.UpdateStatus(context.Background(), b.ID, "renter", "cancelled"); !errors.Is(err, ErrForbiddenTransition) {
		t.Fatalf("accepted 后取消应被拒绝, 实际 %v", err)
	}
	// 物主归还确认
	if _, err := svc.UpdateStatus(context.Background(), b.ID, "owner", "done"); err != nil {
		t.Fatalf("完成失败: %v", err)
	}
}

// ==================== 列表与过期 ====================

func TestBookingService_ListForUser(t *testing.T) {
	svc, _ := newBookingService(t)
	makeBooking(t, svc, "renter")

	sent, received, err := svc.ListForUser(context.Background(), "renter")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(sent) != 1 || len(received) != 0 {
		t.Errorf("租客视角 sent=%d received=%d, want 1/0", len(sent), len(received))
	}

	sent, received, err = svc.ListForUser(context.Background(), "owner")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(sent) != 0 || len(received) != 1 {
		t.Errorf("物主视角 sent=%d received=%d, want 0/1", len(sent), len(received))
	}
}

func TestBookingService_ExpireStale(t *testing.T) {
	svc, repo := newBookingService(t)
	b := makeBooking(t, svc, "renter")

	// 把起租日改到过去，模拟超期未处理
	repo.bookings[b.ID].StartDate = time.Now().AddDate(0, 0, -2)

	count, err := svc.ExpireStale(context.Background())
	if err != nil {
		t.Fatalf("过期任务失败: %v", err)
	}
	if count != 1 {
		t.Errorf("过期条数 = %d, want 1", count)
	}

	expired, _ := repo.GetByID(context.Background(), b.ID)
	if expired.Status != model.BookingStatusExpired {
		t.Errorf("status = %v, want expired", expired.Status)
	}
}
