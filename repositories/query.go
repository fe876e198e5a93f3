package repositories

import (
	"context"

	"gorm.io/gorm"
)

// findByParent loads child rows for the given foreign keys in id order.
func findByParent[T any](ctx context.Context, db *gorm.DB, column string, parentIDs []uint) ([]T, error) {
	results := []T{}
	if len(parentIDs) == 0 {
		return results, nil
	}
	if err := db.WithContext(ctx).
		Where(column+" IN ?", parentIDs).
		Order("id asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func exists(ctx context.Context, db *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
