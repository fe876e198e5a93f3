package services

import (
	courseModels "cdax/models/course"
	"context"
)

// AnonymousUser is the user id used when a request carries none.
const AnonymousUser int64 = -1

type purchaseChecker interface {
	HasPurchased(ctx context.Context, userID, courseID int64) (bool, error)
}

type moduleLoader interface {
	LoadModules(ctx context.Context, courseID uint) ([]courseModels.ModuleContent, error)
}

// LockEvaluator derives subscription and lock state of a course for one user.
type LockEvaluator struct {
	purchases purchaseChecker
	modules   moduleLoader
}

func NewLockEvaluator(purchases purchaseChecker, modules moduleLoader) *LockEvaluator {
	return &LockEvaluator{purchases: purchases, modules: modules}
}

// Evaluate loads the module hierarchy when it is not attached yet and
// projects the course for userID.
func (e *LockEvaluator) Evaluate(ctx context.Context, content courseModels.CourseContent, userID int64) (courseModels.CourseView, error) {
	purchased, err := e.purchases.HasPurchased(ctx, userID, int64(content.ID))
	if err != nil {
		return courseModels.CourseView{}, err
	}
	if content.Modules == nil {
		modules, err := e.modules.LoadModules(ctx, content.ID)
		if err != nil {
			return courseModels.CourseView{}, err
		}
		content.Modules = modules
	}
	return ApplyLocks(content, purchased), nil
}

// ApplyLocks is the lock rule. Purchasers see everything unlocked. Everyone
// else gets the first module with all of its assessments, and only the first
// video of that module.
func ApplyLocks(content courseModels.CourseContent, purchased bool) courseModels.CourseView {
	view := courseModels.CourseView{
		Course:     content.Course,
		Subscribed: purchased,
		Modules:    make([]courseModels.ModuleView, 0, len(content.Modules)),
	}

	for i, module := range content.Modules {
		mv := courseModels.ModuleView{
			Module:      module.Module,
			Locked:      !purchased && i != 0,
			Videos:      make([]courseModels.VideoView, 0, len(module.Videos)),
			Assessments: make([]courseModels.AssessmentView, 0, len(module.Assessments)),
		}
		for j, video := range module.Videos {
			mv.Videos = append(mv.Videos, courseModels.VideoView{
				Video:  video,
				Locked: !purchased && !(i == 0 && j == 0),
			})
		}
		for _, assessment := range module.Assessments {
			mv.Assessments = append(mv.Assessments, courseModels.AssessmentView{
				Assessment: assessment,
				Locked:     !purchased && i != 0,
			})
		}
		view.Modules = append(view.Modules, mv)
	}

	return view
}
