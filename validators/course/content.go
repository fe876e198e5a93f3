package courseValidator

import (
	"cdax/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateModule validates ?courseId and the module body
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseID(c.Query("courseId"))
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId query parameter is required!", nil)
		}
		reqData := new(ModuleRequest)
		if ok, err := parseBody(c, reqData); !ok {
			return err
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// ListModules validates the :courseId path param
func ListModules() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseID(c.Params("courseId"))
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// ModuleParam validates a module id path param (:id or :moduleId)
func ModuleParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := parseID(c.Params(param))
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// CreateVideo validates ?moduleId and the video body
func CreateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := parseID(c.Query("moduleId"))
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "moduleId query parameter is required!", nil)
		}
		reqData := new(VideoRequest)
		if ok, err := parseBody(c, reqData); !ok {
			return err
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

// CreateAssessment validates ?moduleId and the assessment body
func CreateAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := parseID(c.Query("moduleId"))
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "moduleId query parameter is required!", nil)
		}
		reqData := new(AssessmentRequest)
		if ok, err := parseBody(c, reqData); !ok {
			return err
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedAssessment", reqData)
		return c.Next()
	}
}

// CreateQuestion validates ?assessmentId and the question body
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		assessmentID, ok := parseID(c.Query("assessmentId"))
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "assessmentId query parameter is required!", nil)
		}
		reqData := new(QuestionRequest)
		if ok, err := parseBody(c, reqData); !ok {
			return err
		}

		c.Locals("assessmentID", assessmentID)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// ListQuestions validates the :assessmentId path param
func ListQuestions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		assessmentID, ok := parseID(c.Params("assessmentId"))
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Assessment ID!", nil)
		}
		c.Locals("assessmentID", assessmentID)
		return c.Next()
	}
}
