package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	orderIDPrefix    = "order"
	existingIDPrefix = "existing"
)

// OrderRef is the user/course pair recovered from an order id.
type OrderRef struct {
	UserID   int64
	CourseID int64
}

// EncodeOrderID builds "order-<epoch millis>-<userId>-<courseId>".
func EncodeOrderID(at time.Time, userID, courseID int64) string {
	return fmt.Sprintf("%s-%d-%d-%d", orderIDPrefix, at.UnixMilli(), userID, courseID)
}

// ExistingOrderID is reported instead of a new order for an already purchased course.
func ExistingOrderID(userID, courseID int64) string {
	return fmt.Sprintf("%s-%d-%d", existingIDPrefix, userID, courseID)
}

// DecodeOrderID recovers the user and course ids from an order id. Segment 2
// is the user id and segment 3 the course id; anything shorter or non-numeric
// yields ok=false.
func DecodeOrderID(orderID string) (OrderRef, bool) {
	parts := strings.Split(orderID, "-")
	if len(parts) < 4 {
		return OrderRef{}, false
	}
	userID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return OrderRef{}, false
	}
	courseID, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return OrderRef{}, false
	}
	return OrderRef{UserID: userID, CourseID: courseID}, true
}
