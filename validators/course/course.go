package courseValidator

import (
	"cdax/middleware"
	"cdax/services"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse validates the course creation body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if ok, err := parseBody(c, reqData); !ok {
			return err
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Author = strings.TrimSpace(reqData.Author)

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseList reads the optional userId used for lock evaluation
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := optionalUserID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid userId!", nil)
		}
		c.Locals("userId", userID)
		return c.Next()
	}
}

// GetCourse validates the course id path param and the optional userId
func GetCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseID(c.Params("id"))
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		userID, ok := optionalUserID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid userId!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("userId", userID)
		return c.Next()
	}
}

// optionalUserID returns the anonymous sentinel when userId is absent.
func optionalUserID(c *fiber.Ctx) (int64, bool) {
	raw := strings.TrimSpace(c.Query("userId"))
	if raw == "" {
		return services.AnonymousUser, true
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return userID, true
}
