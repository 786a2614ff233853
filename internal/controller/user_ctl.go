package controller

import (
	"github.com/gin-gonic/gin"

	"hyrstacken_api/internal/middleware"
	"hyrstacken_api/internal/schema"
	"hyrstacken_api/internal/service"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile 我的资料
// @Summary 查看自己的个人资料
// @Tags User
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResp
// @Router /api/profile [get]
func (ctrl *UserController) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	profile, err := ctrl.userService.GetProfile(ctx, middleware.GetUserID(c))
	if err != nil {
		c.JSON(404, gin.H{"code": 404, "message": "用户不存在"})
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "success", "data": profile})
}

// UpdateProfile 更新资料
// @Summary 更新自己的个人资料
// @Tags User
// @Security BearerAuth
// @Param payload body map[string]any true "资料表单"
// @Success 200 {object} dto.ProfileResp
// @Router /api/profile [put]
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	raw, ok := bindRawPayload(c)
	if !ok {
		return
	}

	in, fieldErrs := schema.ValidateProfile(raw)
	if fieldErrs != nil {
		c.JSON(400, gin.H{
			"code":    400,
			"message": "校验未通过",
			"errors":  fieldErrs.Messages(),
		})
		return
	}

	ctx := c.Request.Context()
	profile, err := ctrl.userService.UpdateProfile(ctx, middleware.GetUserID(c), in)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "更新失败: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "success", "data": profile})
}
