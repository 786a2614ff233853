package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hyrstacken_api/internal/api/dto"
	"hyrstacken_api/internal/model"
	"hyrstacken_api/internal/repository"
	"hyrstacken_api/internal/schema"
)

// ==================== 错误定义 ====================

var (
	ErrListingNotFound = errors.New("物品不存在")
	ErrNotOwner        = errors.New("只有物主本人可以编辑该物品")
	ErrBadCategory     = errors.New("分类不存在")
	ErrBadLocation     = errors.New("城区不存在")
)

// ==================== ListingService 物品服务 ====================

// ListingService 物品服务
// 创建时以会话身份盖章 ownerId；更新时做服务端归属校验，
// 与表单侧的 Ownership Guard 互为兜底
type ListingService struct {
	listingRepo  repository.ListingRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
}

// NewListingService 创建物品服务
func NewListingService(
	listingRepo repository.ListingRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
) *ListingService {
	return &ListingService{
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// Create 创建物品
// in 必须是 schema.ValidateItem 的产物；ownerID 来自会话，不信任 payload 里的 ownerId
func (s *ListingService) Create(ctx context.Context, in *schema.ItemInput, ownerID string) (*model.Listing, error) {
	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	listing := &model.Listing{
		Title:       in.Title,
		Description: in.Description,
		PricePerDay: in.PricePerDay,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
		OwnerID:     ownerID,
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Update 更新物品，viewerID 必须等于记录中的 ownerId
func (s *ListingService) Update(ctx context.Context, id string, in *schema.ItemInput, viewerID string) (*model.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	if listing.OwnerID != viewerID {
		return nil, ErrNotOwner
	}

	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"title":         in.Title,
		"description":   in.Description,
		"price_per_day": in.PricePerDay,
		"image_url":     in.ImageURL,
		"category_id":   in.CategoryID,
		"location_id":   in.LocationID,
	}
	if err := s.listingRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.listingRepo.GetByID(ctx, id)
}

// Get 物品详情
func (s *ListingService) Get(ctx context.Context, id string) (*model.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

// List 按分类/城区/关键字浏览
func (s *ListingService) List(ctx context.Context, filter repository.ListingFilter) ([]model.Listing, int64, error) {
	return s.listingRepo.List(ctx, filter)
}

// checkReferences 校验 categoryId/locationId 指向真实存在的参照数据
// 本地校验只保证非空，存在性在这里兜底
func (s *ListingService) checkReferences(ctx context.Context, in *schema.ItemInput) error {
	ok, err := s.categoryRepo.Exists(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBadCategory
	}

	ok, err = s.locationRepo.Exists(ctx, in.LocationID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBadLocation
	}
	return nil
}

// ==================== DTO 转换 ====================

// ToItemResp Model -> 响应 DTO
func (s *ListingService) ToItemResp(l *model.Listing) dto.ItemResp {
	resp := dto.ItemResp{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		PricePerDay: l.PricePerDay,
		ImageURL:    l.ImageURL,
		CategoryID:  l.CategoryID,
		LocationID:  l.LocationID,
		Tags:        l.Tags,
		Owner:       dto.OwnerResp{ID: l.OwnerID},
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
	if l.Category != nil {
		resp.Category = l.Category.Name
	}
	if l.Location != nil {
		resp.Location = l.Location.Name
	}
	if l.Owner != nil {
		resp.Owner.Name = l.Owner.Name
		resp.Owner.Image = l.Owner.Image
	}
	return resp
}
