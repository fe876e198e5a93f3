package courseRoutes

import (
	controllers "cdax/controllers/course"
	validators "cdax/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the course hierarchy routes under api
func SetupCourseRoutes(api fiber.Router, cc *controllers.CourseController) {
	courseGroup := api.Group("/courses")
	courseGroup.Post("/", validators.CreateCourse(), cc.CreateCourse)
	courseGroup.Get("/", validators.CourseList(), cc.ListCourses)
	courseGroup.Get("/:id", validators.GetCourse(), cc.GetCourse)

	// /course/:courseId must be registered before /:id
	moduleGroup := api.Group("/modules")
	moduleGroup.Post("/", validators.CreateModule(), cc.AddModule)
	moduleGroup.Get("/course/:courseId", validators.ListModules(), cc.ListModules)
	moduleGroup.Get("/:moduleId/videos", validators.ModuleParam("moduleId"), cc.ListVideos)
	moduleGroup.Get("/:moduleId/assessments", validators.ModuleParam("moduleId"), cc.ListAssessments)
	moduleGroup.Get("/:id", validators.ModuleParam("id"), cc.GetModule)

	api.Post("/videos", validators.CreateVideo(), cc.AddVideo)

	assessmentGroup := api.Group("/assessments")
	assessmentGroup.Post("/", validators.CreateAssessment(), cc.AddAssessment)
	assessmentGroup.Get("/:assessmentId/questions", validators.ListQuestions(), cc.ListQuestions)

	api.Post("/questions", validators.CreateQuestion(), cc.AddQuestion)
}
