package student

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/course"
)

var (
	// errors
	ErrNotFound       = core.NewNotFoundError("Student")
	ErrStatusRequired = core.NewValidationError(errors.New("Status is required"))
)

type (
	Repository interface {
		CreateStudent(ctx context.Context, std Student) (Student, error)
		QueryStudents(ctx context.Context, page core.Page) ([]Student, int, error)
		GetStudentByID(ctx context.Context, id int) (Student, error)
		// DeleteStudent removes the student and all of its payments atomically.
		DeleteStudent(ctx context.Context, id int) error
		UpdateStudentStatus(ctx context.Context, id int, status string) error
	}

	// CourseFinder resolves the courses students are enrolled in.
	CourseFinder interface {
		GetByName(ctx context.Context, name string) (course.Course, error)
		GetManyByName(ctx context.Context, names []string) (map[string]course.Course, error)
	}

	Service struct {
		repo     Repository
		courses  CourseFinder
		validate *validator.Validate
		nowFunc  core.NowFunc
	}
)

func NewService(repo Repository, courses CourseFinder, validate *validator.Validate) *Service {
	return &Service{
		repo:     repo,
		courses:  courses,
		validate: validate,
		nowFunc:  core.UTCNow,
	}
}

// Enroll creates a Student. The course must exist; its fee is the default total fee.
func (svc *Service) Enroll(ctx context.Context, ns NewStudent) (Student, error) {
	ns.Clean()
	if err := svc.validate.Struct(ns); err != nil {
		return Student{}, err
	}

	crs, err := svc.courses.GetByName(ctx, ns.Course)
	if err != nil {
		if core.IsNotFound(err) {
			return Student{}, core.NewValidationError(
				fmt.Errorf("Course '%s' not found. Cannot determine fee.", ns.Course),
				core.FieldError{Field: "course", Error: "unknown course"},
			)
		}
		return Student{}, errors.Wrap(err, "finding course")
	}

	now := svc.nowFunc()
	std := Student{
		Name:           ns.Name,
		Father:         ns.Father,
		DOB:            ns.DOB,
		Phone:          ns.Phone,
		Course:         crs.Name,
		Branch:         ns.Branch,
		TotalFee:       crs.Fee,
		Status:         StatusActive,
		EnrollmentDate: now,
		CreatedAt:      now,
	}
	if ns.TotalFee.Valid {
		std.TotalFee = ns.TotalFee.Float64.Float64
	}
	if ns.Discount.Valid {
		std.Discount = ns.Discount.Float64.Float64
	}
	if ns.EnrollmentDate.Valid {
		std.EnrollmentDate = ns.EnrollmentDate.Time.Time.UTC()
	}

	if std, err = svc.repo.CreateStudent(ctx, std); err != nil {
		return Student{}, err
	}
	std.CalculatedStatus = ComputeStatus(std.Status, std.NetFee(), std.PaidAmount, crs.Duration, std.EnrollmentDate, now)
	return std, nil
}

// Query returns a page of students with their computed status filled in.
func (svc *Service) Query(ctx context.Context, page core.Page) ([]Student, int, error) {
	students, total, err := svc.repo.QueryStudents(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	if len(students) == 0 {
		return students, total, nil
	}

	names := make([]string, 0, len(students))
	for _, std := range students {
		names = append(names, std.Course)
	}
	courses, err := svc.courses.GetManyByName(ctx, names)
	if err != nil {
		return nil, 0, errors.Wrap(err, "finding courses")
	}

	now := svc.nowFunc()
	for i := range students {
		std := &students[i]
		std.CalculatedStatus = ComputeStatus(
			std.Status, std.NetFee(), std.PaidAmount,
			courses[std.Course].Duration, std.EnrollmentDate, now,
		)
	}
	return students, total, nil
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteStudent(ctx, id)
}

// SetStatus overwrites the stored status verbatim.
func (svc *Service) SetStatus(ctx context.Context, id int, su StatusUpdate) error {
	if su.Status == "" {
		return ErrStatusRequired
	}
	return svc.repo.UpdateStudentStatus(ctx, id, su.Status)
}
