package controllers

import (
	"cdax/logger"
	"cdax/middleware"
	"cdax/services"
	validators "cdax/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// PaymentController exposes the purchase flow over HTTP
type PaymentController struct {
	purchases *services.PurchaseService
	log       *logger.Logger
}

func NewPaymentController(purchases *services.PurchaseService, baseLog *logger.Logger) *PaymentController {
	return &PaymentController{
		purchases: purchases,
		log:       baseLog.With("controller", "PaymentController"),
	}
}

func (pc *PaymentController) CreateOrder(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(int64)
	courseID, _ := c.Locals("courseId").(int64)
	amount, _ := c.Locals("amount").(*float64)

	result := pc.purchases.CreateOrder(c.UserContext(), userID, courseID, amount)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// VerifyPayment always answers 200. Callers inspect verified and success.
func (pc *PaymentController) VerifyPayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerify").(*validators.VerifyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := pc.purchases.VerifyAndComplete(
		c.UserContext(),
		validators.Value(reqData.OrderID),
		validators.Value(reqData.PaymentID),
		validators.Value(reqData.Signature),
	)
	if result.Verified && !result.Success {
		pc.log.Error("Verified payment could not be completed", "order_id", result.OrderID, "error", result.Error)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (pc *PaymentController) PurchaseStatus(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(int64)
	courseID, _ := c.Locals("courseId").(int64)

	result := pc.purchases.GetPurchaseStatus(c.UserContext(), userID, courseID)
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// CompletePurchase reports persistence failures in the body with a 200.
func (pc *PaymentController) CompletePurchase(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(int64)
	courseID, _ := c.Locals("courseId").(int64)
	orderID, _ := c.Locals("orderId").(string)
	paymentID, _ := c.Locals("paymentId").(string)

	result := pc.purchases.CompletePurchase(c.UserContext(), userID, courseID, orderID, paymentID)
	return c.Status(fiber.StatusOK).JSON(result)
}
