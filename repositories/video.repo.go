package repositories

import (
	"cdax/logger"
	courseModels "cdax/models/course"
	"context"

	"gorm.io/gorm"
)

type VideoRepo interface {
	Create(ctx context.Context, video *courseModels.Video) error
	FindByModuleID(ctx context.Context, moduleID uint) ([]courseModels.Video, error)
	FindByModuleIDs(ctx context.Context, moduleIDs []uint) ([]courseModels.Video, error)
}

type videoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVideoRepo(db *gorm.DB, baseLog *logger.Logger) VideoRepo {
	return &videoRepo{db: db, log: baseLog.With("repo", "VideoRepo")}
}

func (r *videoRepo) Create(ctx context.Context, video *courseModels.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepo) FindByModuleID(ctx context.Context, moduleID uint) ([]courseModels.Video, error) {
	return findByParent[courseModels.Video](ctx, r.db, "module_id", []uint{moduleID})
}

func (r *videoRepo) FindByModuleIDs(ctx context.Context, moduleIDs []uint) ([]courseModels.Video, error) {
	return findByParent[courseModels.Video](ctx, r.db, "module_id", moduleIDs)
}
