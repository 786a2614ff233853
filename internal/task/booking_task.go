package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"hyrstacken_api/internal/service"
)

// BookingExpiryTask 预订过期任务
// 起租日已过但物主一直没处理的 pending 预订没有意义，定期扫一遍置为 expired
type BookingExpiryTask struct {
	BookingService *service.BookingService
	Cron           *cron.Cron
}

// NewBookingExpiryTask 创建预订过期任务
func NewBookingExpiryTask(bookingService *service.BookingService) *BookingExpiryTask {
	return &BookingExpiryTask{
		BookingService: bookingService,
		Cron:           cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务
func (t *BookingExpiryTask) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		log.Println("[Task] 服务启动，正在执行首次预订过期检查...")
		t.expireJob(ctx)
	}()

	// 每 30 分钟扫一次
	_, err := t.Cron.AddFunc("0 0/30 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		t.expireJob(ctx)
	})

	if err != nil {
		log.Fatalf("无法启动预订过期任务: %v", err)
	}

	t.Cron.Start()
	log.Println("预订过期任务已启动 (每30分钟检查一次)")
}

// Stop 停止定时任务
func (t *BookingExpiryTask) Stop() {
	t.Cron.Stop()
}

func (t *BookingExpiryTask) expireJob(ctx context.Context) {
	count, err := t.BookingService.ExpireStale(ctx)
	if err != nil {
		log.Printf("[Cron] 预订过期扫描失败: %v", err)
		return
	}
	if count > 0 {
		log.Printf("[Cron] 本轮置为过期的预订: %d 条", count)
	}
}
