package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hyrstacken_api/internal/api/dto"
	"hyrstacken_api/internal/middleware"
	"hyrstacken_api/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register 注册
// @Summary 注册新用户
// @Tags Auth
// @Param payload body dto.RegisterReq true "注册信息"
// @Success 200 {object} dto.SessionResp
// @Router /api/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "无效的请求体: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	user, err := ctrl.authService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(409, gin.H{"code": 409, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"code": 500, "message": "注册失败: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    dto.SessionResp{ID: user.ID, Name: user.Name},
	})
}

// Login 登录
// @Summary 邮箱密码登录，返回 Token 对
// @Tags Auth
// @Param payload body dto.LoginReq true "登录信息"
// @Success 200 {object} dto.TokenResp
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "无效的请求体: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	tokens, err := ctrl.authService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrUserDisabled) {
			c.JSON(401, gin.H{"code": 401, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"code": 500, "message": "登录失败: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    tokens,
	})
}

// Session 当前会话身份
// @Summary 获取当前登录用户的身份 (归属判断用)
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} dto.SessionResp
// @Router /api/auth/session [get]
func (ctrl *AuthController) Session(c *gin.Context) {
	ctx := c.Request.Context()
	session, err := ctrl.authService.Session(ctx, middleware.GetUserID(c))
	if err != nil {
		c.JSON(404, gin.H{"code": 404, "message": "用户不存在"})
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    session,
	})
}
