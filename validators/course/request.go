package courseValidator

import (
	"cdax/middleware"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator reports fields by their json names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// CourseRequest is the body of POST /courses
type CourseRequest struct {
	Title        string  `json:"title" validate:"required,min=3,max=200"`
	Description  string  `json:"description" validate:"max=2000"`
	Author       string  `json:"author" validate:"max=100"`
	ThumbnailURL string  `json:"thumbnail_url" validate:"omitempty,url"`
	Price        float64 `json:"price" validate:"gte=0"`
}

// ModuleRequest is the body of POST /modules
type ModuleRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// VideoRequest is the body of POST /videos
type VideoRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	VideoURL    string `json:"video_url" validate:"omitempty,url"`
	Duration    int64  `json:"duration" validate:"gte=0"`
}

// AssessmentRequest is the body of POST /assessments
type AssessmentRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	TotalMarks  int    `json:"total_marks" validate:"gte=0"`
	PassMarks   int    `json:"pass_marks" validate:"gte=0,ltefield=TotalMarks"`
}

// QuestionRequest is the body of POST /questions
type QuestionRequest struct {
	QuestionText  string   `json:"question_text" validate:"required"`
	Options       []string `json:"options" validate:"dive,required"`
	CorrectAnswer string   `json:"correct_answer"`
	Marks         int      `json:"marks" validate:"gte=0"`
}

// parseBody decodes the JSON body into dst and runs struct validation.
// It writes the 400 response itself and returns false on failure.
func parseBody(c *fiber.Ctx, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return false, middleware.ValidationErrorResponse(c, fieldMessages(fieldErrs))
		}
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	return true, nil
}

func fieldMessages(errs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			messages[field] = fmt.Sprintf("%s is required!", field)
		case "min":
			messages[field] = fmt.Sprintf("%s must be at least %s characters long!", field, fe.Param())
		case "max":
			messages[field] = fmt.Sprintf("%s must not exceed %s characters!", field, fe.Param())
		case "url":
			messages[field] = fmt.Sprintf("%s must be a valid URL!", field)
		case "gte":
			messages[field] = fmt.Sprintf("%s must not be negative!", field)
		case "ltefield":
			messages[field] = fmt.Sprintf("%s must not exceed %s!", field, fe.Param())
		default:
			messages[field] = fmt.Sprintf("%s is invalid!", field)
		}
	}
	return messages
}

// parseID accepts a positive integer id.
func parseID(raw string) (uint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
