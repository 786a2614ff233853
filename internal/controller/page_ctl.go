package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"hyrstacken_api/internal/api/dto"
	"hyrstacken_api/internal/repository"
	"hyrstacken_api/pkg/utils"
)

// 参照数据缓存
const (
	itemFormPageCacheKey = "page:item-form"
	itemFormPageCacheTTL = 10 * time.Minute
)

// PageController 服务端页面数据预取
// 物品表单页需要在首次渲染前拿到全部分类和城区，这里一次性下发
type PageController struct {
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
}

func NewPageController(categoryRepo repository.CategoryRepository, locationRepo repository.LocationRepository) *PageController {
	return &PageController{
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// ItemFormPage 物品表单页数据
// @Summary 物品表单页预取数据 (分类+城区)
// @Tags Page
// @Success 200 {object} dto.ItemFormPageResp
// @Router /api/pages/item-form [get]
func (ctrl *PageController) ItemFormPage(c *gin.Context) {
	if cached, ok := utils.GetCache(itemFormPageCacheKey); ok {
		c.JSON(200, gin.H{"code": 0, "message": "success", "data": cached})
		return
	}

	ctx := c.Request.Context()

	categories, err := ctrl.categoryRepo.List(ctx)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询分类失败: " + err.Error()})
		return
	}
	locations, err := ctrl.locationRepo.List(ctx)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询城区失败: " + err.Error()})
		return
	}

	resp := dto.ItemFormPageResp{
		Categories: make([]dto.RefResp, 0, len(categories)),
		Locations:  make([]dto.RefResp, 0, len(locations)),
	}
	for _, cat := range categories {
		resp.Categories = append(resp.Categories, dto.RefResp{ID: cat.ID, Name: cat.Name})
	}
	for _, loc := range locations {
		resp.Locations = append(resp.Locations, dto.RefResp{ID: loc.ID, Name: loc.Name})
	}

	utils.SetCache(itemFormPageCacheKey, resp, itemFormPageCacheTTL)

	c.JSON(200, gin.H{"code": 0, "message": "success", "data": resp})
}

// Categories 全部分类
// @Summary 分类列表
// @Tags Page
// @Success 200 {object} []dto.RefResp
// @Router /api/categories [get]
func (ctrl *PageController) Categories(c *gin.Context) {
	ctx := c.Request.Context()
	categories, err := ctrl.categoryRepo.List(ctx)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询分类失败: " + err.Error()})
		return
	}

	list := make([]dto.RefResp, 0, len(categories))
	for _, cat := range categories {
		list = append(list, dto.RefResp{ID: cat.ID, Name: cat.Name})
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": list})
}

// Locations 全部城区
// @Summary 城区列表
// @Tags Page
// @Success 200 {object} []dto.RefResp
// @Router /api/locations [get]
func (ctrl *PageController) Locations(c *gin.Context) {
	ctx := c.Request.Context()
	locations, err := ctrl.locationRepo.List(ctx)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询城区失败: " + err.Error()})
		return
	}

	list := make([]dto.RefResp, 0, len(locations))
	for _, loc := range locations {
		list = append(list, dto.RefResp{ID: loc.ID, Name: loc.Name})
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": list})
}
