package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"hyrstacken_api/internal/model"
	"hyrstacken_api/internal/repository"
	"hyrstacken_api/internal/schema"
)

// ==================== 内存仓储 ====================

// fakeListingRepo 内存物品仓储，测试服务层时替代数据库
type fakeListingRepo struct {
	listings map[string]*model.Listing
	nextID   int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*model.Listing{}}
}

func (r *fakeListingRepo) Create(_ context.Context, l *model.Listing) error {
	if l.ID == "" {
		r.nextID++
		l.ID = "p" + string(rune('0'+r.nextID))
	}
	l.CreatedAt = time.Now()
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id string) (*model.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeListingRepo) Update(_ context.Context, l *model.Listing) error {
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	l, ok := r.listings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["title"]; ok {
		l.Title = v.(string)
	}
	if v, ok := fields["description"]; ok {
		l.Description = v.(string)
	}
	if v, ok := fields["price_per_day"]; ok {
		l.PricePerDay = v.(float64)
	}
	if v, ok := fields["image_url"]; ok {
		l.ImageURL = v.(string)
	}
	if v, ok := fields["category_id"]; ok {
		l.CategoryID = v.(string)
	}
	if v, ok := fields["location_id"]; ok {
		l.LocationID = v.(string)
	}
	return nil
}

func (r *fakeListingRepo) Delete(_ context.Context, id string) error {
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) List(_ context.Context, filter repository.ListingFilter) ([]model.Listing, int64, error) {
	var out []model.Listing
	for _, l := range r.listings {
		if filter.CategoryID != "" && l.CategoryID != filter.CategoryID {
			continue
		}
		if filter.OwnerID != "" && l.OwnerID != filter.OwnerID {
			continue
		}
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Listing, error) {
	var out []model.Listing
	for _, l := range r.listings {
		if l.OwnerID == ownerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

// fakeRefRepo 同时充当分类仓储和城区仓储
type fakeRefRepo struct {
	ids map[string]string // id -> name
}

func newFakeRefRepo(ids ...string) *fakeRefRepo {
	m := map[string]string{}
	for _, id := range ids {
		m[id] = "ref-" + id
	}
	return &fakeRefRepo{ids: m}
}

func (r *fakeRefRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.ids[id]
	return ok, nil
}

func (r *fakeRefRepo) List(_ context.Context) ([]model.Category, error) {
	var out []model.Category
	for id, name := range r.ids {
		c := model.Category{Name: name}
		c.ID = id
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeRefRepo) FirstOrCreate(_ context.Context, name string) (*model.Category, error) {
	c := &model.Category{Name: name}
	c.ID = name
	r.ids[name] = name
	return c, nil
}

// fakeLocationRepo 城区仓储，复用 fakeRefRepo 的存储
type fakeLocationRepo struct {
	*fakeRefRepo
}

func (r *fakeLocationRepo) List(_ context.Context) ([]model.Location, error) {
	var out []model.Location
	for id, name := range r.ids {
		l := model.Location{Name: name}
		l.ID = id
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeLocationRepo) FirstOrCreate(_ context.Context, name string) (*model.Location, error) {
	l := &model.Location{Name: name}
	l.ID = name
	r.ids[name] = name
	return l, nil
}

func newListingService() (*ListingService, *fakeListingRepo) {
	repo := newFakeListingRepo()
	svc := NewListingService(repo, newFakeRefRepo("c1"), &fakeLocationRepo{newFakeRefRepo("l1")})
	return svc, repo
}

func mustValidate(t *testing.T, raw map[string]any) *schema.ItemInput {
	t.Helper()
	in, errs := schema.ValidateItem(raw)
	if errs != nil {
		t.Fatalf("测试数据没有通过校验: %v", errs)
	}
	return in
}

// ==================== 创建 ====================

func TestListingService_CreateStampsOwner(t *testing.T) {
	svc, repo := newListingService()

	// payload 里带了别人的 ownerId，必须被会话身份覆盖
	in := mustValidate(t, map[string]any{
		"title":       "Borrmaskin",
		"description": "Knappt använd",
		"price":       float64(50),
		"categoryId":  "c1",
		"locationId":  "l1",
		"ownerId":     "attacker",
	})

	created, err := svc.Create(context.Background(), in, "u1")
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if created.OwnerID != "u1" {
		t.Errorf("ownerId = %q, want u1 (会话身份)", created.OwnerID)
	}

	stored, _ := repo.GetByID(context.Background(), created.ID)
	if stored.OwnerID != "u1" {
		t.Errorf("落库 ownerId = %q, want u1", stored.OwnerID)
	}
}

func TestListingService_CreateRejectsUnknownReferences(t *testing.T) {
	svc, _ := newListingService()

	in := mustValidate(t, map[string]any{
		"title":       "Borrmaskin",
		"description": "Knappt använd",
		"price":       float64(50),
		"categoryId":  "missing",
		"locationId":  "l1",
	})
	if _, err := svc.Create(context.Background(), in, "u1"); !errors.Is(err, ErrBadCategory) {
		t.Errorf("未知分类应返回 ErrBadCategory, 实际 %v", err)
	}

	in.CategoryID = "c1"
	in.LocationID = "missing"
	if _, err := svc.Create(context.Background(), in, "u1"); !errors.Is(err, ErrBadLocation) {
		t.Errorf("未知城区应返回 ErrBadLocation, 实际 %v", err)
	}
}

// ==================== 更新与归属 ====================

func TestListingService_UpdateOwnershipCheck(t *testing.T) {
	svc, _ := newListingService()

	in := mustValidate(t, map[string]any{
		"title":       "Borrmaskin",
		"description": "Knappt använd",
		"price":       float64(50),
		"categoryId":  "c1",
		"locationId":  "l1",
	})
	created, err := svc.Create(context.Background(), in, "u1")
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// 非物主：拒绝，记录不变
	in.Title = "Stulen borrmaskin"
	if _, err := svc.Update(context.Background(), created.ID, in, "u2"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("非物主更新应返回 ErrNotOwner, 实际 %v", err)
	}
	unchanged, _ := svc.Get(context.Background(), created.ID)
	if unchanged.Title != "Borrmaskin" {
		t.Errorf("被拒绝的更新不应落库: %q", unchanged.Title)
	}

	// 物主本人：通过
	in.Title = "Borrmaskin Bosch"
	in.PricePerDay = 75
	updated, err := svc.Update(context.Background(), created.ID, in, "u1")
	if err != nil {
		t.Fatalf("物主更新失败: %v", err)
	}
	if updated.Title != "Borrmaskin Bosch" || updated.PricePerDay != 75 {
		t.Errorf("更新未生效: %+v", updated)
	}
}

func TestListingService_UpdateMissingListing(t *testing.T) {
	svc, _ := newListingService()

	in := mustValidate(t, map[string]any{
		"title":       "Borrmaskin",
		"description": "Knappt använd",
		"price":       float64(50),
		"categoryId":  "c1",
		"locationId":  "l1",
	})
	if _, err := svc.Update(context.Background(), "ghost", in, "u1"); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("不存在的物品应返回 ErrListingNotFound, 实际 %v", err)
	}
	if _, err := svc.Get(context.Background(), "ghost"); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("详情同样应返回 ErrListingNotFound, 实际 %v", err)
	}
}
