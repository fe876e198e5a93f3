package healthRoutes

import (
	controllers "cdax/controllers/health"

	"github.com/gofiber/fiber/v2"
)

func SetupHealthRoutes(api fiber.Router, hc *controllers.HealthController) {
	api.Get("/health", hc.Health)
}
