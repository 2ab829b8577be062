package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/domain/repositories"
)

type CourseUseCase interface {
	GetCourses(ctx context.Context, ownerID string, page, limit int, orderBy string) ([]entities.Course, int64, error)
	GetCourse(ctx context.Context, ownerID, id string) (*entities.Course, error)
	SaveCourse(ctx context.Context, ownerID string, course *entities.Course) (*entities.Course, error)
	DeleteCourse(ctx context.Context, ownerID, id string) error
}

type courseUseCase struct {
	courseRepo repositories.CourseRepository
}

func NewCourseUseCase(courseRepo repositories.CourseRepository) CourseUseCase {
	return &courseUseCase{courseRepo}
}

func (uc *courseUseCase) GetCourses(ctx context.Context, ownerID string, page, limit int, orderBy string) ([]entities.Course, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	return uc.courseRepo.GetCourses(ctx, ownerID, page, limit, orderBy)
}

func (uc *courseUseCase) GetCourse(ctx context.Context, ownerID, id string) (*entities.Course, error) {
	return uc.courseRepo.FindByID(ctx, ownerID, id)
}

func (uc *courseUseCase) SaveCourse(ctx context.Context, ownerID string, course *entities.Course) (*entities.Course, error) {
	if course.Title == "" {
		return nil, errx.Validation("título do curso é obrigatório")
	}

	course.OwnerID = ownerID
	now := time.Now()
	if course.ID == "" {
		course.ID = uuid.NewString()
		course.CreatedAt = now
	}
	course.UpdatedAt = now

	for i := range course.Modules {
		if course.Modules[i].ID == "" {
			course.Modules[i].ID = uuid.NewString()
		}
		for j := range course.Modules[i].Lessons {
			if course.Modules[i].Lessons[j].ID == "" {
				course.Modules[i].Lessons[j].ID = uuid.NewString()
			}
		}
	}

	if err := uc.courseRepo.Save(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (uc *courseUseCase) DeleteCourse(ctx context.Context, ownerID, id string) error {
	return uc.courseRepo.Delete(ctx, ownerID, id)
}
