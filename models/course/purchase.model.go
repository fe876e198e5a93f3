package course

import (
	"time"

	"gorm.io/gorm"
)

const (
	PurchaseStatusCompleted = "COMPLETED"

	OrderStatusCreated = "CREATED"
	OrderStatusPaid    = "PAID"
	OrderStatusExpired = "EXPIRED"
)

// Purchase records that a user has paid for a course
type Purchase struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index:idx_purchase_user_course;not null"`
	CourseID     uint      `json:"course_id" gorm:"index:idx_purchase_user_course;not null"`
	PurchaseDate time.Time `json:"purchase_date"`
	OrderID      string    `json:"order_id"`
	PaymentID    string    `json:"payment_id"`
	Status       string    `json:"status" gorm:"default:'COMPLETED'"`
}

// PendingOrder is a payment intent created before the gateway callback
type PendingOrder struct {
	gorm.Model
	OrderID   string    `json:"order_id" gorm:"uniqueIndex;size:100;not null"`
	Receipt   string    `json:"receipt" gorm:"size:64"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency" gorm:"size:10;default:'INR'"`
	Status    string    `json:"status" gorm:"size:20;default:'CREATED'"` // CREATED, PAID, EXPIRED
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
}
