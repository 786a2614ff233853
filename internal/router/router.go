package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "hyrstacken_api/docs"

	"hyrstacken_api/internal/controller"
	"hyrstacken_api/internal/middleware"
)

// Controllers 控制器集合
type Controllers struct {
	Auth    *controller.AuthController
	Item    *controller.ItemController
	Page    *controller.PageController
	Booking *controller.BookingController
	User    *controller.UserController
}

// SetupRouter 注册所有路由
func SetupRouter(ctl *Controllers) *gin.Engine {
	r := gin.Default()

	// Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// auth 鉴权组
		auth := api.Group("/auth")
		{
			auth.POST("/register", ctl.Auth.Register)
			auth.POST("/login", ctl.Auth.Login)
			// 表单的归属判断靠这个接口拿当前身份
			auth.GET("/session", middleware.JWTAuth(), ctl.Auth.Session)
		}

		// 页面数据预取
		pages := api.Group("/pages")
		{
			pages.GET("/item-form", ctl.Page.ItemFormPage)
		}
		api.GET("/categories", ctl.Page.Categories)
		api.GET("/locations", ctl.Page.Locations)

		// item 物品组
		items := api.Group("/items")
		{
			items.GET("", ctl.Item.GetItems)
			items.GET("/:id", ctl.Item.GetItem)
			// 创建/编辑必须登录，编辑还要通过归属校验
			items.POST("", middleware.JWTAuth(), ctl.Item.CreateItem)
			items.PUT("/:id", middleware.JWTAuth(), ctl.Item.UpdateItem)
		}

		// booking 预订组，全部要求登录
		bookings := api.Group("/bookings", middleware.JWTAuth())
		{
			bookings.POST("", ctl.Booking.CreateBooking)
			bookings.GET("", ctl.Booking.GetMyBookings)
			bookings.PUT("/:id/status", ctl.Booking.UpdateBookingStatus)
		}

		// profile 个人资料
		profile := api.Group("/profile", middleware.JWTAuth())
		{
			profile.GET("", ctl.User.GetProfile)
			profile.PUT("", ctl.User.UpdateProfile)
		}
	}

	return r
}
