package repositories

import (
	"context"
	"errors"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"gorm.io/gorm"
)

type CourseRepository interface {
	GetCourses(ctx context.Context, ownerID string, page, limit int, orderBy string) ([]entities.Course, int64, error)
	FindByID(ctx context.Context, ownerID, id string) (*entities.Course, error)
	Save(ctx context.Context, course *entities.Course) error
	Delete(ctx context.Context, ownerID, id string) error
}

type courseRepository struct {
	db     *gorm.DB
	assets AssetResolver
}

func NewCourseRepository(db *gorm.DB, assets AssetResolver) CourseRepository {
	return &courseRepository{db, assets}
}

func (r *courseRepository) GetCourses(ctx context.Context, ownerID string, page, limit int, orderBy string) ([]entities.Course, int64, error) {
	var courses []entities.Course
	var total int64

	base := r.db.WithContext(ctx).Model(&entities.Course{}).Where("owner_id = ?", ownerID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errx.Persistence(err)
	}

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if err := query.Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return nil, 0, errx.Persistence(err)
	}

	for i := range courses {
		r.resolve(&courses[i])
	}
	return courses, total, nil
}

func (r *courseRepository) FindByID(ctx context.Context, ownerID, id string) (*entities.Course, error) {
	var course entities.Course
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errx.NotFound("curso não encontrado")
	}
	if err != nil {
		return nil, errx.Persistence(err)
	}
	r.resolve(&course)
	return &course, nil
}

func (r *courseRepository) Save(ctx context.Context, course *entities.Course) error {
	if err := r.db.WithContext(ctx).Save(course).Error; err != nil {
		return errx.Persistence(err)
	}
	r.resolve(course)
	return nil
}

func (r *courseRepository) Delete(ctx context.Context, ownerID, id string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.Course{})
	if result.Error != nil {
		return errx.Persistence(result.Error)
	}
	if result.RowsAffected == 0 {
		return errx.NotFound("curso não encontrado")
	}
	return nil
}

func (r *courseRepository) resolve(c *entities.Course) {
	if c.CoverRef != "" {
		c.CoverURL = r.assets.ResolveURL(c.CoverRef)
	}
	if c.WelcomeVideoAssetRef != "" {
		c.WelcomeVideoAssetURL = r.assets.ResolveURL(c.WelcomeVideoAssetRef)
	}
	for i := range c.Modules {
		m := &c.Modules[i]
		if m.CoverRef != "" {
			m.CoverURL = r.assets.ResolveURL(m.CoverRef)
		}
		for j := range m.Lessons {
			l := &m.Lessons[j]
			if l.CoverRef != "" {
				l.CoverURL = r.assets.ResolveURL(l.CoverRef)
			}
			if l.VideoAssetRef != "" {
				l.VideoAssetURL = r.assets.ResolveURL(l.VideoAssetRef)
			}
		}
	}
}
