package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hyrstacken_api/internal/controller"
	"hyrstacken_api/internal/middleware"
	"hyrstacken_api/internal/model"
	"hyrstacken_api/internal/repository"
	"hyrstacken_api/internal/router"
	"hyrstacken_api/internal/service"
	"hyrstacken_api/internal/task"
	"hyrstacken_api/pkg/database"
)

func main() {
	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 种子参照数据 (分类/城区)
	seedReferenceData(deps.Repos)

	// 4. 启动定时任务
	initTasks(deps)

	// 5. 初始化路由
	r := router.SetupRouter(deps.Controllers)

	// 6. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User     repository.UserRepository
	Listing  repository.ListingRepository
	Category repository.CategoryRepository
	Location repository.LocationRepository
	Booking  repository.BookingRepository
}

// Services 服务集合
type Services struct {
	Auth    *service.AuthService
	User    *service.UserService
	Listing *service.ListingService
	Booking *service.BookingService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := getEnv("DATABASE_URL",
		"host=localhost user=hyrstacken password=hyrstacken dbname=hyrstacken port=5432 sslmode=disable")

	return database.InitDB(dsn,
		// Identity
		&model.User{},
		// Reference
		&model.Category{}, &model.Location{},
		// Marketplace
		&model.Listing{}, &model.Booking{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		User:     repository.NewUserRepository(db),
		Listing:  repository.NewListingRepository(db),
		Category: repository.NewCategoryRepository(db),
		Location: repository.NewLocationRepository(db),
		Booking:  repository.NewBookingRepository(db),
	}

	// -------- JWT 配置 --------
	if secret := getEnv("JWT_SECRET", ""); secret != "" {
		cfg := middleware.DefaultJWTConfig()
		cfg.SecretKey = secret
		middleware.SetJWTConfig(cfg)
	}

	// -------- 业务服务 --------
	services := &Services{
		Auth:    service.NewAuthService(repos.User),
		User:    service.NewUserService(repos.User),
		Listing: service.NewListingService(repos.Listing, repos.Category, repos.Location),
	}
	services.Booking = service.NewBookingService(repos.Booking, repos.Listing)

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:    controller.NewAuthController(services.Auth),
		Item:    controller.NewItemController(services.Listing),
		Page:    controller.NewPageController(repos.Category, repos.Location),
		Booking: controller.NewBookingController(services.Booking),
		User:    controller.NewUserController(services.User),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// seedReferenceData 保证基础分类/城区存在
// 参照数据是只读下拉框的来源，库里没有时表单无法提交
func seedReferenceData(repos *Repositories) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	categories := []string{
		"Verktyg", "Sport & Fritid", "Elektronik", "Kläder", "Fordon", "Hem & Trädgård",
	}
	for _, name := range categories {
		if _, err := repos.Category.FirstOrCreate(ctx, name); err != nil {
			log.Printf("警告: 分类种子写入失败 %q: %v", name, err)
		}
	}

	locations := []string{
		"Centrum", "Majorna", "Hisingen", "Örgryte", "Angered", "Frölunda",
	}
	for _, name := range locations {
		if _, err := repos.Location.FirstOrCreate(ctx, name); err != nil {
			log.Printf("警告: 城区种子写入失败 %q: %v", name, err)
		}
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	expiryTask := task.NewBookingExpiryTask(deps.Services.Booking)
	expiryTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
