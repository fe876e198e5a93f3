package controllers

import (
	"cdax/logger"
	"cdax/middleware"
	courseModels "cdax/models/course"
	"cdax/services"
	validators "cdax/validators/course"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CourseController serves the course hierarchy endpoints
type CourseController struct {
	content *services.ContentService
	log     *logger.Logger
}

func NewCourseController(content *services.ContentService, baseLog *logger.Logger) *CourseController {
	return &CourseController{
		content: content,
		log:     baseLog.With("controller", "CourseController"),
	}
}

func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*validators.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Author:       reqData.Author,
		ThumbnailURL: reqData.ThumbnailURL,
		Price:        reqData.Price,
	}
	created, err := cc.content.CreateCourse(c.UserContext(), &course)
	if err != nil {
		return cc.failure(c, "Failed to create course!", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully", created)
}

func (cc *CourseController) ListCourses(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(int64)

	courses, err := cc.content.ListCourses(c.UserContext(), userID)
	if err != nil {
		return cc.failure(c, "Failed to fetch courses!", err)
	}
	return middleware.ListResponse(c, "Courses fetched successfully", courses, len(courses))
}

func (cc *CourseController) GetCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(uint)
	userID, _ := c.Locals("userId").(int64)

	course, err := cc.content.GetCourse(c.UserContext(), courseID, userID)
	if err != nil {
		return cc.failure(c, "Failed to fetch course!", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully", course)
}

func (cc *CourseController) AddModule(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedModule").(*validators.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := courseModels.Module{Title: reqData.Title, Description: reqData.Description}
	created, err := cc.content.AddModule(c.UserContext(), courseID, &module)
	if err != nil {
		return cc.failure(c, "Failed to create module!", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module created successfully", created)
}

func (cc *CourseController) ListModules(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(uint)

	modules, err := cc.content.ListModules(c.UserContext(), courseID)
	if err != nil {
		return cc.failure(c, "Failed to fetch modules!", err)
	}
	return middleware.ListResponse(c, "Modules fetched successfully", modules, len(modules))
}

func (cc *CourseController) GetModule(c *fiber.Ctx) error {
	moduleID, _ := c.Locals("moduleID").(uint)

	module, err := cc.content.GetModule(c.UserContext(), moduleID)
	if err != nil {
		return cc.failure(c, "Failed to fetch module!", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully", module)
}

func (cc *CourseController) AddVideo(c *fiber.Ctx) error {
	moduleID, _ := c.Locals("moduleID").(uint)
	reqData, ok := c.Locals("validatedVideo").(*validators.VideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	video := courseModels.Video{
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoURL:    reqData.VideoURL,
		Duration:    reqData.Duration,
	}
	created, err := cc.content.AddVideo(c.UserContext(), moduleID, &video)
	if err != nil {
		return cc.failure(c, "Failed to create video!", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video created successfully", created)
}

func (cc *CourseController) ListVideos(c *fiber.Ctx) error {
	moduleID, _ := c.Locals("moduleID").(uint)

	videos, err := cc.content.ListVideos(c.UserContext(), moduleID)
	if err != nil {
		return cc.failure(c, "Failed to fetch videos!", err)
	}
	return middleware.ListResponse(c, "Videos fetched successfully", videos, len(videos))
}

func (cc *CourseController) AddAssessment(c *fiber.Ctx) error {
	moduleID, _ := c.Locals("moduleID").(uint)
	reqData, ok := c.Locals("validatedAssessment").(*validators.AssessmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	assessment := courseModels.Assessment{
		Title:       reqData.Title,
		Description: reqData.Description,
		TotalMarks:  reqData.TotalMarks,
		PassMarks:   reqData.PassMarks,
	}
	created, err := cc.content.AddAssessment(c.UserContext(), moduleID, &assessment)
	if err != nil {
		return cc.failure(c, "Failed to create assessment!", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment created successfully", created)
}

func (cc *CourseController) ListAssessments(c *fiber.Ctx) error {
	moduleID, _ := c.Locals("moduleID").(uint)

	assessments, err := cc.content.ListAssessments(c.UserContext(), moduleID)
	if err != nil {
		return cc.failure(c, "Failed to fetch assessments!", err)
	}
	return middleware.ListResponse(c, "Assessments fetched successfully", assessments, len(assessments))
}

func (cc *CourseController) AddQuestion(c *fiber.Ctx) error {
	assessmentID, _ := c.Locals("assessmentID").(uint)
	reqData, ok := c.Locals("validatedQuestion").(*validators.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	options := reqData.Options
	if options == nil {
		options = []string{}
	}
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
	}

	question := courseModels.Question{
		QuestionText:  reqData.QuestionText,
		Options:       datatypes.JSON(optionsJSON),
		CorrectAnswer: reqData.CorrectAnswer,
		Marks:         reqData.Marks,
	}
	created, err := cc.content.AddQuestion(c.UserContext(), assessmentID, &question)
	if err != nil {
		return cc.failure(c, "Failed to create question!", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question created successfully", created)
}

// ListQuestions keeps the assessment-scoped shape instead of the data envelope
func (cc *CourseController) ListQuestions(c *fiber.Ctx) error {
	assessmentID, _ := c.Locals("assessmentID").(uint)

	questions, err := cc.content.ListQuestions(c.UserContext(), assessmentID)
	if err != nil {
		return cc.failure(c, "Failed to fetch questions!", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"assessmentId": assessmentID,
		"questions":    questions,
		"count":        len(questions),
	})
}

// failure maps service errors onto status codes
func (cc *CourseController) failure(c *fiber.Ctx, message string, err error) error {
	var invalidRef *services.InvalidReferenceError
	switch {
	case errors.As(err, &invalidRef):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, invalidRef.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	default:
		cc.log.Error(message, "path", c.Path(), "error", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
	}
}
