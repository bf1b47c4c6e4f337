package course

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

var (
	// errors
	ErrNotFound   = core.NewNotFoundError("Course")
	ErrNameExists = core.NewConflictError("Course already exists")
)

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		// InsertMissingCourses adds every course whose name is not taken yet and returns how many were added.
		InsertMissingCourses(ctx context.Context, courses []Course) (int, error)
		QueryCourses(ctx context.Context, page core.Page) ([]Course, int, error)
		GetCourseByName(ctx context.Context, name string) (Course, error)
		// GetCoursesByName maps each existing name to its Course. Unknown names are omitted.
		GetCoursesByName(ctx context.Context, names []string) (map[string]Course, error)
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
		nowFunc  core.NowFunc
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{
		repo:     repo,
		validate: validate,
		nowFunc:  core.UTCNow,
	}
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	nc.Clean()
	if err := svc.validate.Struct(nc); err != nil {
		return Course{}, err
	}
	return svc.repo.CreateCourse(ctx, Course{
		Name:        nc.Name,
		Duration:    nc.Duration,
		Fee:         nc.Fee.Float64.Float64,
		Description: nc.Description,
		CreatedAt:   svc.nowFunc(),
	})
}

func (svc *Service) Query(ctx context.Context, page core.Page) ([]Course, int, error) {
	return svc.repo.QueryCourses(ctx, page)
}

func (svc *Service) GetByName(ctx context.Context, name string) (Course, error) {
	return svc.repo.GetCourseByName(ctx, core.CleanString(name))
}

func (svc *Service) GetManyByName(ctx context.Context, names []string) (map[string]Course, error) {
	return svc.repo.GetCoursesByName(ctx, names)
}

// Seed inserts the given courses unless one with the same name already exists.
func (svc *Service) Seed(ctx context.Context, courses []Course) (int, error) {
	now := svc.nowFunc()
	seeds := make([]Course, 0, len(courses))
	for _, crs := range courses {
		crs.CreatedAt = now
		seeds = append(seeds, crs)
	}
	n, err := svc.repo.InsertMissingCourses(ctx, seeds)
	return n, errors.Wrap(err, "seeding courses")
}
