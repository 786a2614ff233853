package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hyrstacken_api/internal/api/dto"
	"hyrstacken_api/internal/middleware"
	"hyrstacken_api/internal/schema"
	"hyrstacken_api/internal/service"
)

type BookingController struct {
	bookingService *service.BookingService
}

func NewBookingController(bookingService *service.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// CreateBooking 发起租借请求
// @Summary 预订一件物品
// @Tags Booking
// @Security BearerAuth
// @Param payload body map[string]any true "预订表单"
// @Success 200 {object} dto.BookingResp
// @Router /api/bookings [post]
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	raw, ok := bindRawPayload(c)
	if !ok {
		return
	}

	in, fieldErrs := schema.ValidateBooking(raw)
	if fieldErrs != nil {
		c.JSON(400, gin.H{
			"code":    400,
			"message": "校验未通过",
			"errors":  fieldErrs.Messages(),
		})
		return
	}

	ctx := c.Request.Context()
	booking, err := ctrl.bookingService.Create(ctx, middleware.GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrListingNotFound):
			c.JSON(404, gin.H{"code": 404, "message": "物品不存在"})
		case errors.Is(err, service.ErrOwnBooking), errors.Is(err, service.ErrInvalidPeriod):
			c.JSON(400, gin.H{"code": 400, "message": err.Error()})
		default:
			c.JSON(500, gin.H{"code": 500, "message": "预订失败: " + err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.bookingService.ToBookingResp(booking),
	})
}

// GetMyBookings 我的预订（发出的 + 收到的）
// @Summary 当前用户相关的全部预订
// @Tags Booking
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /api/bookings [get]
func (ctrl *BookingController) GetMyBookings(c *gin.Context) {
	ctx := c.Request.Context()
	sent, received, err := ctrl.bookingService.ListForUser(ctx, middleware.GetUserID(c))
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	sentResp := make([]dto.BookingResp, 0, len(sent))
	for _, b := range sent {
		sentResp = append(sentResp, ctrl.bookingService.ToBookingResp(&b))
	}
	receivedResp := make([]dto.BookingResp, 0, len(received))
	for _, b := range received {
		receivedResp = append(receivedResp, ctrl.bookingService.ToBookingResp(&b))
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"sent":     sentResp,
			"received": receivedResp,
		},
	})
}

// UpdateBookingStatus 预订状态流转
// @Summary 接受/拒绝/取消/完成一条预订
// @Tags Booking
// @Security BearerAuth
// @Param id path string true "预订ID"
// @Param payload body dto.UpdateBookingStatusReq true "目标状态"
// @Success 200 {object} dto.BookingResp
// @Router /api/bookings/{id}/status [put]
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateBookingStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "无效的请求体"})
		return
	}

	ctx := c.Request.Context()
	booking, err := ctrl.bookingService.UpdateStatus(ctx, id, middleware.GetUserID(c), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			c.JSON(404, gin.H{"code": 404, "message": "预订不存在"})
		case errors.Is(err, service.ErrNotParticipant):
			c.JSON(403, gin.H{"code": 403, "message": err.Error()})
		case errors.Is(err, service.ErrForbiddenTransition):
			c.JSON(400, gin.H{"code": 400, "message": err.Error()})
		default:
			c.JSON(500, gin.H{"code": 500, "message": "操作失败: " + err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.bookingService.ToBookingResp(booking),
	})
}
