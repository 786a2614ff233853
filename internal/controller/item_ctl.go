package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"hyrstacken_api/internal/api/dto"
	"hyrstacken_api/internal/middleware"
	"hyrstacken_api/internal/repository"
	"hyrstacken_api/internal/schema"
	"hyrstacken_api/internal/service"
)

type ItemController struct {
	listingService *service.ListingService
}

func NewItemController(listingService *service.ListingService) *ItemController {
	return &ItemController{listingService: listingService}
}

// ==================== 查询接口 ====================

// GetItems 浏览物品列表
// @Summary 按分类/城区/关键字浏览物品
// @Tags Item
// @Param category_id query string false "分类ID"
// @Param location_id query string false "城区ID"
// @Param keyword query string false "标题搜索"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} dto.ItemListResp
// @Router /api/items [get]
func (ctrl *ItemController) GetItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := repository.ListingFilter{
		CategoryID: c.Query("category_id"),
		LocationID: c.Query("location_id"),
		OwnerID:    c.Query("owner_id"),
		Keyword:    c.Query("keyword"),
		Page:       page,
		PageSize:   pageSize,
	}

	ctx := c.Request.Context()
	listings, total, err := ctrl.listingService.List(ctx, filter)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	respList := make([]dto.ItemResp, 0, len(listings))
	for _, l := range listings {
		respList = append(respList, ctrl.listingService.ToItemResp(&l))
	}

	c.JSON(200, dto.ItemListResp{
		Code:     0,
		Message:  "success",
		Data:     respList,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetItem 物品详情 (提交成功后的跳转目标)
// @Summary 获取单个物品详情
// @Tags Item
// @Param id path string true "物品ID"
// @Success 200 {object} dto.SubmitItemResp
// @Router /api/items/{id} [get]
func (ctrl *ItemController) GetItem(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()
	listing, err := ctrl.listingService.Get(ctx, id)
	if err != nil {
		c.JSON(404, gin.H{"code": 404, "message": "物品不存在"})
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.listingService.ToItemResp(listing),
	})
}

// ==================== 写入接口 ====================

// CreateItem 创建物品 (create 操作)
// @Summary 发布新物品
// @Tags Item
// @Security BearerAuth
// @Param payload body map[string]any true "物品表单"
// @Success 200 {object} dto.SubmitItemResp
// @Failure 400 {object} map[string]any "字段级校验错误在 errors 里"
// @Router /api/items [post]
func (ctrl *ItemController) CreateItem(c *gin.Context) {
	raw, ok := bindRawPayload(c)
	if !ok {
		return
	}

	// 客户端和服务端跑同一套校验规则
	in, fieldErrs := schema.ValidateItem(raw)
	if fieldErrs != nil {
		c.JSON(400, gin.H{
			"code":    400,
			"message": "校验未通过",
			"errors":  fieldErrs.Messages(),
		})
		return
	}

	ctx := c.Request.Context()
	listing, err := ctrl.listingService.Create(ctx, in, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrBadCategory) || errors.Is(err, service.ErrBadLocation) {
			c.JSON(400, gin.H{"code": 400, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"code": 500, "message": "创建失败: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.listingService.ToItemResp(listing),
	})
}

// UpdateItem 更新物品 (update 操作，payload 带已有 id)
// @Summary 编辑已有物品，仅物主可操作
// @Tags Item
// @Security BearerAuth
// @Param id path string true "物品ID"
// @Param payload body map[string]any true "物品表单"
// @Success 200 {object} dto.SubmitItemResp
// @Failure 403 {object} map[string]any
// @Router /api/items/{id} [put]
func (ctrl *ItemController) UpdateItem(c *gin.Context) {
	id := c.Param("id")

	raw, ok := bindRawPayload(c)
	if !ok {
		return
	}

	in, fieldErrs := schema.ValidateItem(raw)
	if fieldErrs != nil {
		c.JSON(400, gin.H{
			"code":    400,
			"message": "校验未通过",
			"errors":  fieldErrs.Messages(),
		})
		return
	}

	ctx := c.Request.Context()
	listing, err := ctrl.listingService.Update(ctx, id, in, middleware.GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrListingNotFound):
			c.JSON(404, gin.H{"code": 404, "message": "物品不存在"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(403, gin.H{"code": 403, "message": "没有权限修改该物品"})
		case errors.Is(err, service.ErrBadCategory), errors.Is(err, service.ErrBadLocation):
			c.JSON(400, gin.H{"code": 400, "message": err.Error()})
		default:
			c.JSON(500, gin.H{"code": 500, "message": "更新失败: " + err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.listingService.ToItemResp(listing),
	})
}

// bindRawPayload 表单 payload 是未定型的 key-value，原样解出来交给 schema 校验
func bindRawPayload(c *gin.Context) (map[string]any, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "无效的请求体"})
		return nil, false
	}
	return raw, true
}
