package repositories

import (
	"cdax/logger"
	courseModels "cdax/models/course"
	"context"

	"gorm.io/gorm"
)

type CourseRepo interface {
	Create(ctx context.Context, course *courseModels.Course) error
	FindAll(ctx context.Context) ([]courseModels.Course, error)
	FindByID(ctx context.Context, id uint) (*courseModels.Course, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return &courseRepo{db: db, log: baseLog.With("repo", "CourseRepo")}
}

func (r *courseRepo) Create(ctx context.Context, course *courseModels.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) FindAll(ctx context.Context) ([]courseModels.Course, error) {
	var courses []courseModels.Course
	if err := r.db.WithContext(ctx).Order("id asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByID returns gorm.ErrRecordNotFound when the course does not exist.
func (r *courseRepo) FindByID(ctx context.Context, id uint) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &courseModels.Course{}, "id = ?", id)
}
