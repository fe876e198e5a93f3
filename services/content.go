package services

import (
	"cdax/logger"
	courseModels "cdax/models/course"
	"cdax/repositories"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ContentService assembles the course hierarchy and applies lock state.
type ContentService struct {
	courses     repositories.CourseRepo
	modules     repositories.ModuleRepo
	videos      repositories.VideoRepo
	assessments repositories.AssessmentRepo
	questions   repositories.QuestionRepo
	locks       *LockEvaluator
	log         *logger.Logger
}

type ContentRepos struct {
	Courses     repositories.CourseRepo
	Modules     repositories.ModuleRepo
	Videos      repositories.VideoRepo
	Assessments repositories.AssessmentRepo
	Questions   repositories.QuestionRepo
}

func NewContentService(repos ContentRepos, purchases purchaseChecker, baseLog *logger.Logger) *ContentService {
	s := &ContentService{
		courses:     repos.Courses,
		modules:     repos.Modules,
		videos:      repos.Videos,
		assessments: repos.Assessments,
		questions:   repos.Questions,
		log:         baseLog.With("service", "ContentService"),
	}
	s.locks = NewLockEvaluator(purchases, s)
	return s
}

func (s *ContentService) CreateCourse(ctx context.Context, course *courseModels.Course) (*courseModels.Course, error) {
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	s.log.Info("Course created", "course_id", course.ID)
	return course, nil
}

// ListCourses returns every course with lock state derived for userID.
func (s *ContentService) ListCourses(ctx context.Context, userID int64) ([]courseModels.CourseView, error) {
	courses, err := s.courses.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courseIDs := make([]uint, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.ID)
	}
	byCourse, err := s.loadHierarchy(ctx, courseIDs)
	if err != nil {
		return nil, err
	}

	views := make([]courseModels.CourseView, 0, len(courses))
	for _, c := range courses {
		content := courseModels.CourseContent{Course: c, Modules: byCourse[c.ID]}
		if content.Modules == nil {
			content.Modules = []courseModels.ModuleContent{}
		}
		view, err := s.locks.Evaluate(ctx, content, userID)
		if err != nil {
			return nil, fmt.Errorf("evaluate course %d: %w", c.ID, err)
		}
		views = append(views, view)
	}
	return views, nil
}

// GetCourse returns ErrNotFound when id does not exist.
func (s *ContentService) GetCourse(ctx context.Context, id uint, userID int64) (*courseModels.CourseView, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get course %d: %w", id, err)
	}
	view, err := s.locks.Evaluate(ctx, courseModels.CourseContent{Course: *course}, userID)
	if err != nil {
		return nil, fmt.Errorf("evaluate course %d: %w", id, err)
	}
	return &view, nil
}

func (s *ContentService) AddModule(ctx context.Context, courseID uint, module *courseModels.Module) (*courseModels.Module, error) {
	ok, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course %d: %w", courseID, err)
	}
	if !ok {
		return nil, invalidReference("courseId", courseID)
	}
	module.ID = 0
	module.CourseID = courseID
	if err := s.modules.Create(ctx, module); err != nil {
		return nil, fmt.Errorf("create module: %w", err)
	}
	return module, nil
}

func (s *ContentService) AddVideo(ctx context.Context, moduleID uint, video *courseModels.Video) (*courseModels.Video, error) {
	if err := s.requireModule(ctx, moduleID); err != nil {
		return nil, err
	}
	video.ID = 0
	video.ModuleID = moduleID
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}
	return video, nil
}

func (s *ContentService) AddAssessment(ctx context.Context, moduleID uint, assessment *courseModels.Assessment) (*courseModels.Assessment, error) {
	if err := s.requireModule(ctx, moduleID); err != nil {
		return nil, err
	}
	assessment.ID = 0
	assessment.ModuleID = moduleID
	if err := s.assessments.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	return assessment, nil
}

func (s *ContentService) AddQuestion(ctx context.Context, assessmentID uint, question *courseModels.Question) (*courseModels.Question, error) {
	ok, err := s.assessments.Exists(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("check assessment %d: %w", assessmentID, err)
	}
	if !ok {
		return nil, invalidReference("assessmentId", assessmentID)
	}
	question.ID = 0
	question.AssessmentID = assessmentID
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

// ListModules returns the modules of a course with videos and assessments attached.
func (s *ContentService) ListModules(ctx context.Context, courseID uint) ([]courseModels.ModuleContent, error) {
	return s.LoadModules(ctx, courseID)
}

// GetModule returns ErrNotFound when id does not exist.
func (s *ContentService) GetModule(ctx context.Context, id uint) (*courseModels.ModuleContent, error) {
	module, err := s.modules.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get module %d: %w", id, err)
	}
	attached, err := s.attach(ctx, []courseModels.Module{*module})
	if err != nil {
		return nil, err
	}
	return &attached[0], nil
}

func (s *ContentService) ListVideos(ctx context.Context, moduleID uint) ([]courseModels.Video, error) {
	videos, err := s.videos.FindByModuleID(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("list videos of module %d: %w", moduleID, err)
	}
	return videos, nil
}

func (s *ContentService) ListAssessments(ctx context.Context, moduleID uint) ([]courseModels.Assessment, error) {
	assessments, err := s.assessments.FindByModuleID(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("list assessments of module %d: %w", moduleID, err)
	}
	return assessments, nil
}

func (s *ContentService) ListQuestions(ctx context.Context, assessmentID uint) ([]courseModels.Question, error) {
	questions, err := s.questions.FindByAssessmentID(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("list questions of assessment %d: %w", assessmentID, err)
	}
	return questions, nil
}

// LoadModules satisfies the lock evaluator's loader for a single course.
func (s *ContentService) LoadModules(ctx context.Context, courseID uint) ([]courseModels.ModuleContent, error) {
	modules, err := s.modules.FindByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list modules of course %d: %w", courseID, err)
	}
	return s.attach(ctx, modules)
}

func (s *ContentService) requireModule(ctx context.Context, moduleID uint) error {
	ok, err := s.modules.Exists(ctx, moduleID)
	if err != nil {
		return fmt.Errorf("check module %d: %w", moduleID, err)
	}
	if !ok {
		return invalidReference("moduleId", moduleID)
	}
	return nil
}

// loadHierarchy fetches modules, videos and assessments for many courses in
// three queries and groups them by course id.
func (s *ContentService) loadHierarchy(ctx context.Context, courseIDs []uint) (map[uint][]courseModels.ModuleContent, error) {
	modules, err := s.modules.FindByCourseIDs(ctx, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	attached, err := s.attach(ctx, modules)
	if err != nil {
		return nil, err
	}
	byCourse := make(map[uint][]courseModels.ModuleContent, len(courseIDs))
	for _, m := range attached {
		byCourse[m.CourseID] = append(byCourse[m.CourseID], m)
	}
	return byCourse, nil
}

// attach loads videos and assessments for modules, preserving module order.
func (s *ContentService) attach(ctx context.Context, modules []courseModels.Module) ([]courseModels.ModuleContent, error) {
	out := make([]courseModels.ModuleContent, 0, len(modules))
	if len(modules) == 0 {
		return out, nil
	}

	moduleIDs := make([]uint, 0, len(modules))
	for _, m := range modules {
		moduleIDs = append(moduleIDs, m.ID)
	}
	videos, err := s.videos.FindByModuleIDs(ctx, moduleIDs)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	assessments, err := s.assessments.FindByModuleIDs(ctx, moduleIDs)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	videosByModule := make(map[uint][]courseModels.Video)
	for _, v := range videos {
		videosByModule[v.ModuleID] = append(videosByModule[v.ModuleID], v)
	}
	assessmentsByModule := make(map[uint][]courseModels.Assessment)
	for _, a := range assessments {
		assessmentsByModule[a.ModuleID] = append(assessmentsByModule[a.ModuleID], a)
	}

	for _, m := range modules {
		mc := courseModels.ModuleContent{
			Module:      m,
			Videos:      videosByModule[m.ID],
			Assessments: assessmentsByModule[m.ID],
		}
		if mc.Videos == nil {
			mc.Videos = []courseModels.Video{}
		}
		if mc.Assessments == nil {
			mc.Assessments = []courseModels.Assessment{}
		}
		out = append(out, mc)
	}
	return out, nil
}
