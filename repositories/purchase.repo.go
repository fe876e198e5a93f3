package repositories

import (
	"cdax/logger"
	courseModels "cdax/models/course"
	"context"
	"time"

	"gorm.io/gorm"
)

type PurchaseRepo interface {
	Create(ctx context.Context, purchase *courseModels.Purchase) error
	ExistsByUserAndCourse(ctx context.Context, userID, courseID uint) (bool, error)
	CountByUserAndCourse(ctx context.Context, userID, courseID uint) (int64, error)
}

type purchaseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPurchaseRepo(db *gorm.DB, baseLog *logger.Logger) PurchaseRepo {
	return &purchaseRepo{db: db, log: baseLog.With("repo", "PurchaseRepo")}
}

func (r *purchaseRepo) Create(ctx context.Context, purchase *courseModels.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepo) ExistsByUserAndCourse(ctx context.Context, userID, courseID uint) (bool, error) {
	return exists(ctx, r.db, &courseModels.Purchase{}, "user_id = ? AND course_id = ?", userID, courseID)
}

func (r *purchaseRepo) CountByUserAndCourse(ctx context.Context, userID, courseID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&courseModels.Purchase{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count, err
}

type PendingOrderRepo interface {
	Create(ctx context.Context, order *courseModels.PendingOrder) error
	FindByOrderID(ctx context.Context, orderID string) (*courseModels.PendingOrder, error)
	MarkPaid(ctx context.Context, orderID string) (int64, error)
	ExpireBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type pendingOrderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPendingOrderRepo(db *gorm.DB, baseLog *logger.Logger) PendingOrderRepo {
	return &pendingOrderRepo{db: db, log: baseLog.With("repo", "PendingOrderRepo")}
}

func (r *pendingOrderRepo) Create(ctx context.Context, order *courseModels.PendingOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByOrderID returns gorm.ErrRecordNotFound when no order carries the id.
func (r *pendingOrderRepo) FindByOrderID(ctx context.Context, orderID string) (*courseModels.PendingOrder, error) {
	var order courseModels.PendingOrder
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// MarkPaid flips a CREATED or EXPIRED order to PAID. A late gateway callback
// still settles the order.
func (r *pendingOrderRepo) MarkPaid(ctx context.Context, orderID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&courseModels.PendingOrder{}).
		Where("order_id = ? AND status <> ?", orderID, courseModels.OrderStatusPaid).
		Update("status", courseModels.OrderStatusPaid)
	return result.RowsAffected, result.Error
}

func (r *pendingOrderRepo) ExpireBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&courseModels.PendingOrder{}).
		Where("status = ? AND expires_at < ?", courseModels.OrderStatusCreated, cutoff).
		Update("status", courseModels.OrderStatusExpired)
	return result.RowsAffected, result.Error
}
