package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the standard {success, message, data} envelope.
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	body := fiber.Map{
		"success": success,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(statusCode).JSON(body)
}

// ListResponse adds the item count to the envelope.
func ListResponse(c *fiber.Ctx, message string, data interface{}, count int) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
		"count":   count,
	})
}

// ErrorResponse writes {success:false, message, error}.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(statusCode).JSON(body)
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed!",
		"errors":  errors,
	})
}
