package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"hyrstacken_api/internal/api/dto"
	"hyrstacken_api/internal/middleware"
	"hyrstacken_api/internal/model"
	"hyrstacken_api/internal/repository"
)

// ==================== 错误定义 ====================

var (
	ErrEmailTaken         = errors.New("邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserDisabled       = errors.New("账号已被禁用")
	ErrUserNotFound       = errors.New("用户不存在")
)

// ==================== AuthService 认证服务 ====================

// AuthService 注册/登录/会话身份
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 注册新用户
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterReq) (*model.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
		Status:   model.UserStatusActive,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 登录，成功返回 Token 对
func (s *AuthService) Login(ctx context.Context, req *dto.LoginReq) (*dto.TokenResp, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status != model.UserStatusActive {
		return nil, ErrUserDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.Name)
	if err != nil {
		return nil, err
	}

	cfg := middleware.GetJWTConfig()
	return &dto.TokenResp{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(cfg.AccessTokenTTL.Seconds()),
	}, nil
}

// Session 当前会话身份
// 这是表单侧 Ownership Guard 要调的接口：只要 id，name/image 顺带给出
func (s *AuthService) Session(ctx context.Context, userID string) (*dto.SessionResp, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.SessionResp{
		ID:    user.ID,
		Name:  user.Name,
		Image: user.Image,
	}, nil
}
