package testutil

import (
	courseModels "cdax/models/course"
	"context"
	"testing"
	"time"

	"gorm.io/gorm"
)

func SeedCourse(tb testing.TB, ctx context.Context, db *gorm.DB, title string) *courseModels.Course {
	tb.Helper()
	c := &courseModels.Course{Title: title, Author: "author", Price: 399}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedModule(tb testing.TB, ctx context.Context, db *gorm.DB, courseID uint, title string) *courseModels.Module {
	tb.Helper()
	m := &courseModels.Module{CourseID: courseID, Title: title}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed module: %v", err)
	}
	return m
}

func SeedVideo(tb testing.TB, ctx context.Context, db *gorm.DB, moduleID uint, title string) *courseModels.Video {
	tb.Helper()
	v := &courseModels.Video{ModuleID: moduleID, Title: title, Duration: 60}
	if err := db.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed video: %v", err)
	}
	return v
}

func SeedAssessment(tb testing.TB, ctx context.Context, db *gorm.DB, moduleID uint, title string) *courseModels.Assessment {
	tb.Helper()
	a := &courseModels.Assessment{ModuleID: moduleID, Title: title, TotalMarks: 10, PassMarks: 5}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assessment: %v", err)
	}
	return a
}

func SeedPurchase(tb testing.TB, ctx context.Context, db *gorm.DB, userID, courseID uint) *courseModels.Purchase {
	tb.Helper()
	p := &courseModels.Purchase{
		UserID:       userID,
		CourseID:     courseID,
		PurchaseDate: time.Now(),
		OrderID:      "seed-order",
		PaymentID:    "seed-payment",
		Status:       courseModels.PurchaseStatusCompleted,
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed purchase: %v", err)
	}
	return p
}

func SeedPendingOrder(tb testing.TB, ctx context.Context, db *gorm.DB, orderID string, userID, courseID uint, expiresAt time.Time) *courseModels.PendingOrder {
	tb.Helper()
	o := &courseModels.PendingOrder{
		OrderID:   orderID,
		Receipt:   "rcpt_seed",
		UserID:    userID,
		CourseID:  courseID,
		Amount:    399,
		Currency:  "INR",
		Status:    courseModels.OrderStatusCreated,
		ExpiresAt: expiresAt,
	}
	if err := db.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed pending order: %v", err)
	}
	return o
}
