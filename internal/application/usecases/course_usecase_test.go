package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
)

type fakeCourseRepo struct {
	courses map[string]*entities.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[string]*entities.Course)}
}

func (r *fakeCourseRepo) GetCourses(_ context.Context, ownerID string, _, _ int, _ string) ([]entities.Course, int64, error) {
	var out []entities.Course
	for _, c := range r.courses {
		if c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCourseRepo) FindByID(_ context.Context, ownerID, id string) (*entities.Course, error) {
	c, ok := r.courses[id]
	if !ok || c.OwnerID != ownerID {
		return nil, errx.NotFound("curso não encontrado")
	}
	return c, nil
}

func (r *fakeCourseRepo) Save(_ context.Context, course *entities.Course) error {
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, ownerID, id string) error {
	c, ok := r.courses[id]
	if !ok || c.OwnerID != ownerID {
		return errx.NotFound("curso não encontrado")
	}
	delete(r.courses, id)
	return nil
}

func TestSaveCourseRequiresTitle(t *testing.T) {
	uc := NewCourseUseCase(newFakeCourseRepo())

	_, err := uc.SaveCourse(context.Background(), "merchant-1", &entities.Course{})
	assert.Error(t, err)
}

func TestSaveCourseAssignsIdsToModulesAndLessons(t *testing.T) {
	uc := NewCourseUseCase(newFakeCourseRepo())

	saved, err := uc.SaveCourse(context.Background(), "merchant-1", &entities.Course{
		Title: "Marketing Digital",
		Modules: []entities.CourseModule{
			{
				Title: "Fundamentos",
				Lessons: []entities.CourseLesson{
					{Title: "Boas-vindas"},
					{ID: "l-fixa", Title: "Posicionamento"},
				},
			},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "merchant-1", saved.OwnerID)
	require.Len(t, saved.Modules, 1)
	assert.NotEmpty(t, saved.Modules[0].ID)
	assert.NotEmpty(t, saved.Modules[0].Lessons[0].ID)
	// ids existentes são preservados
	assert.Equal(t, "l-fixa", saved.Modules[0].Lessons[1].ID)
}

func TestGetCourseScopedByOwner(t *testing.T) {
	repo := newFakeCourseRepo()
	uc := NewCourseUseCase(repo)
	ctx := context.Background()

	saved, err := uc.SaveCourse(ctx, "merchant-1", &entities.Course{Title: "Curso"})
	require.NoError(t, err)

	_, err = uc.GetCourse(ctx, "intruso", saved.ID)
	assert.Error(t, err)

	got, err := uc.GetCourse(ctx, "merchant-1", saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Curso", got.Title)
}
