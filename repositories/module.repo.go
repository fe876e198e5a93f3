package repositories

import (
	"cdax/logger"
	courseModels "cdax/models/course"
	"context"

	"gorm.io/gorm"
)

type ModuleRepo interface {
	Create(ctx context.Context, module *courseModels.Module) error
	FindByID(ctx context.Context, id uint) (*courseModels.Module, error)
	Exists(ctx context.Context, id uint) (bool, error)
	FindByCourseID(ctx context.Context, courseID uint) ([]courseModels.Module, error)
	FindByCourseIDs(ctx context.Context, courseIDs []uint) ([]courseModels.Module, error)
}

type moduleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewModuleRepo(db *gorm.DB, baseLog *logger.Logger) ModuleRepo {
	return &moduleRepo{db: db, log: baseLog.With("repo", "ModuleRepo")}
}

func (r *moduleRepo) Create(ctx context.Context, module *courseModels.Module) error {
	return r.db.WithContext(ctx).Create(module).Error
}

func (r *moduleRepo) FindByID(ctx context.Context, id uint) (*courseModels.Module, error) {
	var module courseModels.Module
	if err := r.db.WithContext(ctx).First(&module, id).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &courseModels.Module{}, "id = ?", id)
}

func (r *moduleRepo) FindByCourseID(ctx context.Context, courseID uint) ([]courseModels.Module, error) {
	return findByParent[courseModels.Module](ctx, r.db, "course_id", []uint{courseID})
}

func (r *moduleRepo) FindByCourseIDs(ctx context.Context, courseIDs []uint) ([]courseModels.Module, error) {
	return findByParent[courseModels.Module](ctx, r.db, "course_id", courseIDs)
}
