package utils

import (
	"cdax/logger"
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// orderExpirer is satisfied by services.PurchaseService
type orderExpirer interface {
	ExpirePendingOrders(ctx context.Context, now time.Time) (int64, error)
}

// sweepPendingOrders flips CREATED orders past their deadline to EXPIRED
func sweepPendingOrders(orders orderExpirer, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	expired, err := orders.ExpirePendingOrders(ctx, time.Now())
	if err != nil {
		log.Error("Error expiring pending orders", "error", err)
		return
	}
	if expired > 0 {
		log.Info("Pending orders expired", "count", expired)
	}
}

// InitializeOrderScheduler registers the pending-order sweep on schedule
// (a cron expression or @every descriptor) and starts the scheduler.
func InitializeOrderScheduler(schedule string, orders orderExpirer, baseLog *logger.Logger) (*cron.Cron, error) {
	log := baseLog.With("scheduler", "orders")
	log.Info("Initializing order scheduler", "schedule", schedule)

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		sweepPendingOrders(orders, log)
	}); err != nil {
		return nil, err
	}

	c.Start()

	log.Info("Order scheduler initialized successfully")
	return c, nil
}
