package repositories

import (
	"cdax/logger"
	courseModels "cdax/models/course"
	"context"

	"gorm.io/gorm"
)

type AssessmentRepo interface {
	Create(ctx context.Context, assessment *courseModels.Assessment) error
	Exists(ctx context.Context, id uint) (bool, error)
	FindByModuleID(ctx context.Context, moduleID uint) ([]courseModels.Assessment, error)
	FindByModuleIDs(ctx context.Context, moduleIDs []uint) ([]courseModels.Assessment, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return &assessmentRepo{db: db, log: baseLog.With("repo", "AssessmentRepo")}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *courseModels.Assessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *assessmentRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &courseModels.Assessment{}, "id = ?", id)
}

func (r *assessmentRepo) FindByModuleID(ctx context.Context, moduleID uint) ([]courseModels.Assessment, error) {
	return findByParent[courseModels.Assessment](ctx, r.db, "module_id", []uint{moduleID})
}

func (r *assessmentRepo) FindByModuleIDs(ctx context.Context, moduleIDs []uint) ([]courseModels.Assessment, error) {
	return findByParent[courseModels.Assessment](ctx, r.db, "module_id", moduleIDs)
}

type QuestionRepo interface {
	Create(ctx context.Context, question *courseModels.Question) error
	FindByAssessmentID(ctx context.Context, assessmentID uint) ([]courseModels.Question, error)
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return &questionRepo{db: db, log: baseLog.With("repo", "QuestionRepo")}
}

func (r *questionRepo) Create(ctx context.Context, question *courseModels.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepo) FindByAssessmentID(ctx context.Context, assessmentID uint) ([]courseModels.Question, error) {
	return findByParent[courseModels.Question](ctx, r.db, "assessment_id", []uint{assessmentID})
}
