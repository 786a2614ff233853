package service

import (
	"context"

	"hyrstacken_api/internal/api/dto"
	"hyrstacken_api/internal/repository"
	"hyrstacken_api/internal/schema"
)

// ==================== UserService 用户服务 ====================

// UserService 个人资料读写
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile 查看自己的资料
func (s *UserService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResp, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.ProfileResp{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Image: user.Image,
		Bio:   user.Bio,
	}, nil
}

// UpdateProfile 更新资料，in 必须是 schema.ValidateProfile 的产物
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in *schema.ProfileInput) (*dto.ProfileResp, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	fields := map[string]interface{}{
		"name":  in.Name,
		"bio":   in.Bio,
		"image": in.Image,
	}
	if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}
