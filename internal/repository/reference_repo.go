package repository

import (
	"context"

	"gorm.io/gorm"

	"hyrstacken_api/internal/model"
)

// ==================== 参照数据仓储 ====================

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	Exists(ctx context.Context, id string) (bool, error)
	FirstOrCreate(ctx context.Context, name string) (*model.Category, error)
}

// LocationRepository 城区仓储接口
type LocationRepository interface {
	List(ctx context.Context) ([]model.Location, error)
	Exists(ctx context.Context, id string) (bool, error)
	FirstOrCreate(ctx context.Context, name string) (*model.Location, error)
}

// ==================== 实现 ====================

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// List 按名称排序返回全部分类，顺序即表单下拉框展示顺序
func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *categoryRepo) FirstOrCreate(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(&category, model.Category{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepository 创建城区仓储
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error
	return locations, err
}

func (r *locationRepo) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Location{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *locationRepo) FirstOrCreate(ctx context.Context, name string) (*model.Location, error) {
	var location model.Location
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(&location, model.Location{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}
