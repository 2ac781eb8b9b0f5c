package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/scentscape/scentscape-backend/internal/app/service"
	"github.com/scentscape/scentscape-backend/pkg/logger"
)

// staleCartAge is how long a cart line may sit untouched before the
// nightly job removes it.
const staleCartAge = 30 * 24 * time.Hour

// CartCleanupScheduler purges abandoned cart lines on a schedule.
type CartCleanupScheduler struct {
	cron        *cron.Cron
	cartService service.CartService
}

func NewCartCleanupScheduler(cartService service.CartService) *CartCleanupScheduler {
	return &CartCleanupScheduler{
		cron:        cron.New(),
		cartService: cartService,
	}
}

// Start registers the nightly purge at 4:00 AM.
func (s *CartCleanupScheduler) Start() error {
	_, err := s.cron.AddFunc("0 4 * * *", func() {
		logger.Info("Starting scheduled cart cleanup", nil)

		deleted, err := s.cartService.PurgeStale(staleCartAge)
		if err != nil {
			logger.Error("Failed to purge stale cart items from scheduler", err)
			return
		}

		logger.Info("Scheduled cart cleanup completed", map[string]interface{}{
			"deleted_count": deleted,
		})
	})
	if err != nil {
		logger.Error("Failed to add cron job for cart cleanup", err)
		return err
	}

	s.cron.Start()
	logger.Info("Cart cleanup scheduler started successfully (daily at 4:00 AM)", nil)

	return nil
}

// Stop halts the scheduler.
func (s *CartCleanupScheduler) Stop() {
	logger.Info("Stopping cart cleanup scheduler...", nil)
	s.cron.Stop()
	logger.Info("Cart cleanup scheduler stopped", nil)
}
