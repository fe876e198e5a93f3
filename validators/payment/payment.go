package paymentValidator

import (
	"cdax/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// VerifyRequest is the gateway callback body. Pointers distinguish a missing
// field from an empty one.
type VerifyRequest struct {
	OrderID   *string `json:"orderId"`
	PaymentID *string `json:"paymentId"`
	Signature *string `json:"signature"`
}

// Value returns the dereferenced field or "".
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CreateOrder validates ?userId, ?courseId and the optional ?amount
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		userID, ok := positiveQuery(c, "userId")
		if !ok {
			errors["userId"] = "userId must be a positive integer!"
		}
		courseID, ok := positiveQuery(c, "courseId")
		if !ok {
			errors["courseId"] = "courseId must be a positive integer!"
		}

		var amount *float64
		if raw := strings.TrimSpace(c.Query("amount")); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil || value <= 0 {
				errors["amount"] = "amount must be a positive number!"
			} else {
				amount = &value
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("userId", userID)
		c.Locals("courseId", courseID)
		c.Locals("amount", amount)
		return c.Next()
	}
}

// VerifyPayment only checks that the body is JSON. Missing fields are
// reported by the verification result itself.
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		c.Locals("validatedVerify", reqData)
		return c.Next()
	}
}

// PurchaseStatus validates ?userId and ?courseId. Any integer is accepted.
func PurchaseStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		userID, err := strconv.ParseInt(strings.TrimSpace(c.Query("userId")), 10, 64)
		if err != nil {
			errors["userId"] = "userId must be an integer!"
		}
		courseID, err := strconv.ParseInt(strings.TrimSpace(c.Query("courseId")), 10, 64)
		if err != nil {
			errors["courseId"] = "courseId must be an integer!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("userId", userID)
		c.Locals("courseId", courseID)
		return c.Next()
	}
}

// CompletePurchase validates the ids and the gateway references
func CompletePurchase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		userID, ok := positiveQuery(c, "userId")
		if !ok {
			errors["userId"] = "userId must be a positive integer!"
		}
		courseID, ok := positiveQuery(c, "courseId")
		if !ok {
			errors["courseId"] = "courseId must be a positive integer!"
		}
		orderID := strings.TrimSpace(c.Query("orderId"))
		if orderID == "" {
			errors["orderId"] = "orderId is required!"
		}
		paymentID := strings.TrimSpace(c.Query("paymentId"))
		if paymentID == "" {
			errors["paymentId"] = "paymentId is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("userId", userID)
		c.Locals("courseId", courseID)
		c.Locals("orderId", orderID)
		c.Locals("paymentId", paymentID)
		return c.Next()
	}
}

func positiveQuery(c *fiber.Ctx, key string) (int64, bool) {
	value, err := strconv.ParseInt(strings.TrimSpace(c.Query(key)), 10, 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}
