package paymentRoutes

import (
	controllers "cdax/controllers/payment"
	validators "cdax/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the purchase and payment routes under api
func SetupPaymentRoutes(api fiber.Router, pc *controllers.PaymentController) {
	purchaseGroup := api.Group("/course")
	purchaseGroup.Post("/purchase/complete", validators.CompletePurchase(), pc.CompletePurchase)
	purchaseGroup.Post("/purchase", validators.CreateOrder(), pc.CreateOrder)
	purchaseGroup.Get("/purchased", validators.PurchaseStatus(), pc.PurchaseStatus)

	api.Post("/payments/verify", validators.VerifyPayment(), pc.VerifyPayment)
}
