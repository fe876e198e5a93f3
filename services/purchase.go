package services

import (
	"cdax/logger"
	courseModels "cdax/models/course"
	"cdax/repositories"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseSettings carries the pricing and order lifetime knobs.
type PurchaseSettings struct {
	DefaultPrice    float64
	Currency        string
	PendingOrderTTL time.Duration
}

// OrderInfo is the result of CreateOrder.
type OrderInfo struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	OrderID          string   `json:"orderId,omitempty"`
	Receipt          string   `json:"receipt,omitempty"`
	Amount           *float64 `json:"amount,omitempty"`
	Currency         string   `json:"currency,omitempty"`
	UserID           int64    `json:"userId,omitempty"`
	CourseID         int64    `json:"courseId,omitempty"`
	AlreadyPurchased bool     `json:"alreadyPurchased,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// VerificationResult is the result of VerifyPayment and VerifyAndComplete.
type VerificationResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Verified       bool   `json:"verified"`
	OrderID        string `json:"orderId,omitempty"`
	PaymentID      string `json:"paymentId,omitempty"`
	CourseUnlocked bool   `json:"courseUnlocked,omitempty"`
	UserID         int64  `json:"userId,omitempty"`
	CourseID       int64  `json:"courseId,omitempty"`
	Error          string `json:"error,omitempty"`
}

// PurchaseResult is the result of CompletePurchase.
type PurchaseResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	OrderID          string `json:"orderId,omitempty"`
	PaymentID        string `json:"paymentId,omitempty"`
	UserID           int64  `json:"userId,omitempty"`
	CourseID         int64  `json:"courseId,omitempty"`
	PurchaseComplete bool   `json:"purchaseComplete,omitempty"`
	Error            string `json:"error,omitempty"`
}

// StatusInfo is the result of GetPurchaseStatus.
type StatusInfo struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	UserID    int64  `json:"userId"`
	CourseID  int64  `json:"courseId"`
	Purchased bool   `json:"purchased"`
	Error     string `json:"error,omitempty"`
}

// PurchaseService drives order creation, payment verification and purchase completion.
type PurchaseService struct {
	purchases repositories.PurchaseRepo
	orders    repositories.PendingOrderRepo
	settings  PurchaseSettings
	log       *logger.Logger
	now       func() time.Time
}

func NewPurchaseService(purchases repositories.PurchaseRepo, orders repositories.PendingOrderRepo, settings PurchaseSettings, baseLog *logger.Logger) *PurchaseService {
	return &PurchaseService{
		purchases: purchases,
		orders:    orders,
		settings:  settings,
		log:       baseLog.With("service", "PurchaseService"),
		now:       time.Now,
	}
}

// HasPurchased never touches storage for non-positive ids.
func (s *PurchaseService) HasPurchased(ctx context.Context, userID, courseID int64) (bool, error) {
	if userID <= 0 || courseID <= 0 {
		return false, nil
	}
	return s.purchases.ExistsByUserAndCourse(ctx, uint(userID), uint(courseID))
}

// CreateOrder issues an order id for the pair, or the existing marker when
// the course is already purchased. amount may be nil for the default price.
func (s *PurchaseService) CreateOrder(ctx context.Context, userID, courseID int64, amount *float64) OrderInfo {
	if userID <= 0 || courseID <= 0 {
		return OrderInfo{
			Success: false,
			Message: "Failed to create purchase order: userId and courseId must be positive",
			Error:   "userId and courseId must be positive",
		}
	}

	purchased, err := s.HasPurchased(ctx, userID, courseID)
	if err != nil {
		s.log.Error("Purchase lookup failed", "user_id", userID, "course_id", courseID, "error", err)
		return orderFailure(err)
	}
	if purchased {
		return OrderInfo{
			Success:          true,
			Message:          "Course already purchased",
			OrderID:          ExistingOrderID(userID, courseID),
			AlreadyPurchased: true,
		}
	}

	price := s.settings.DefaultPrice
	if amount != nil {
		price = *amount
	}
	now := s.now()
	order := courseModels.PendingOrder{
		OrderID:   EncodeOrderID(now, userID, courseID),
		Receipt:   "rcpt_" + uuid.NewString(),
		UserID:    uint(userID),
		CourseID:  uint(courseID),
		Amount:    price,
		Currency:  s.settings.Currency,
		Status:    courseModels.OrderStatusCreated,
		ExpiresAt: now.Add(s.settings.PendingOrderTTL),
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		s.log.Error("Pending order not recorded", "order_id", order.OrderID, "error", err)
		return orderFailure(err)
	}

	s.log.Info("Purchase order created", "order_id", order.OrderID, "user_id", userID, "course_id", courseID)
	return OrderInfo{
		Success:  true,
		Message:  "Purchase order created successfully",
		OrderID:  order.OrderID,
		Receipt:  order.Receipt,
		Amount:   &price,
		Currency: order.Currency,
		UserID:   userID,
		CourseID: courseID,
	}
}

func orderFailure(err error) OrderInfo {
	return OrderInfo{
		Success: false,
		Message: "Failed to create purchase order: " + err.Error(),
		Error:   err.Error(),
	}
}

// VerifyPayment accepts any payment that carries both an order id and a
// payment id. The signature is not checked against a gateway.
func (s *PurchaseService) VerifyPayment(orderID, paymentID, signature string) VerificationResult {
	if orderID == "" || paymentID == "" {
		s.log.Warn("Payment verification rejected", "order_id", orderID, "payment_id", paymentID)
		return VerificationResult{
			Success:  false,
			Message:  "Payment verification failed - invalid parameters",
			Verified: false,
		}
	}
	s.log.Debug("Payment verified", "order_id", orderID, "payment_id", paymentID, "signature", signature)
	return VerificationResult{
		Success:   true,
		Message:   "Payment verified successfully",
		Verified:  true,
		OrderID:   orderID,
		PaymentID: paymentID,
	}
}

// CompletePurchase records the purchase once per pair. Repeated calls report
// success without writing.
func (s *PurchaseService) CompletePurchase(ctx context.Context, userID, courseID int64, orderID, paymentID string) PurchaseResult {
	if userID <= 0 || courseID <= 0 {
		return purchaseFailure(errors.New("userId and courseId must be positive"))
	}

	purchased, err := s.HasPurchased(ctx, userID, courseID)
	if err != nil {
		s.log.Error("Purchase lookup failed", "user_id", userID, "course_id", courseID, "error", err)
		return purchaseFailure(err)
	}
	if !purchased {
		purchase := courseModels.Purchase{
			UserID:       uint(userID),
			CourseID:     uint(courseID),
			PurchaseDate: s.now(),
			OrderID:      orderID,
			PaymentID:    paymentID,
			Status:       courseModels.PurchaseStatusCompleted,
		}
		if err := s.purchases.Create(ctx, &purchase); err != nil {
			s.log.Error("Purchase not recorded", "user_id", userID, "course_id", courseID, "error", err)
			return purchaseFailure(err)
		}
		s.log.Info("Purchase completed", "user_id", userID, "course_id", courseID, "order_id", orderID)
	}

	if orderID != "" {
		if _, err := s.orders.MarkPaid(ctx, orderID); err != nil {
			s.log.Warn("Pending order not marked paid", "order_id", orderID, "error", err)
		}
	}

	return PurchaseResult{
		Success:          true,
		Message:          "Course purchased successfully",
		OrderID:          orderID,
		PaymentID:        paymentID,
		UserID:           userID,
		CourseID:         courseID,
		PurchaseComplete: true,
	}
}

func purchaseFailure(err error) PurchaseResult {
	return PurchaseResult{
		Success: false,
		Message: "Failed to complete purchase: " + err.Error(),
		Error:   err.Error(),
	}
}

// ResolveOrder finds the user/course pair behind an order id, preferring the
// recorded pending order and falling back to decoding the id itself.
func (s *PurchaseService) ResolveOrder(ctx context.Context, orderID string) (OrderRef, bool) {
	if orderID == "" {
		return OrderRef{}, false
	}
	order, err := s.orders.FindByOrderID(ctx, orderID)
	switch {
	case err == nil:
		return OrderRef{UserID: int64(order.UserID), CourseID: int64(order.CourseID)}, true
	case !errors.Is(err, gorm.ErrRecordNotFound):
		s.log.Warn("Pending order lookup failed, decoding order id", "order_id", orderID, "error", err)
	}
	return DecodeOrderID(orderID)
}

// VerifyAndComplete handles a gateway callback. When the order resolves to a
// user and course the purchase is completed, otherwise the plain
// verification result is returned.
func (s *PurchaseService) VerifyAndComplete(ctx context.Context, orderID, paymentID, signature string) VerificationResult {
	verification := s.VerifyPayment(orderID, paymentID, signature)
	if !verification.Success {
		return verification
	}

	ref, ok := s.ResolveOrder(ctx, orderID)
	if !ok {
		return verification
	}

	result := s.CompletePurchase(ctx, ref.UserID, ref.CourseID, orderID, paymentID)
	if !result.Success {
		return VerificationResult{
			Success:   false,
			Message:   "Payment verified but purchase failed: " + result.Error,
			Verified:  true,
			OrderID:   orderID,
			PaymentID: paymentID,
			UserID:    ref.UserID,
			CourseID:  ref.CourseID,
			Error:     result.Error,
		}
	}

	return VerificationResult{
		Success:        true,
		Message:        "Payment verified and course unlocked successfully",
		Verified:       true,
		OrderID:        orderID,
		PaymentID:      paymentID,
		CourseUnlocked: true,
		UserID:         ref.UserID,
		CourseID:       ref.CourseID,
	}
}

func (s *PurchaseService) GetPurchaseStatus(ctx context.Context, userID, courseID int64) StatusInfo {
	purchased, err := s.HasPurchased(ctx, userID, courseID)
	if err != nil {
		return StatusInfo{
			Success:  false,
			Message:  "Failed to check purchase status: " + err.Error(),
			UserID:   userID,
			CourseID: courseID,
			Error:    err.Error(),
		}
	}

	message := "Course not purchased"
	if purchased {
		message = "Course is purchased"
	}
	return StatusInfo{
		Success:   true,
		Message:   message,
		UserID:    userID,
		CourseID:  courseID,
		Purchased: purchased,
	}
}

// ExpirePendingOrders marks CREATED orders past their deadline as EXPIRED.
func (s *PurchaseService) ExpirePendingOrders(ctx context.Context, now time.Time) (int64, error) {
	return s.orders.ExpireBefore(ctx, now)
}
