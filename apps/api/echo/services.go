package echoapi

import (
	"context"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/course"
	"github.com/MohdShoeb1/institute-management-backend/core/payment"
	"github.com/MohdShoeb1/institute-management-backend/core/stats"
	"github.com/MohdShoeb1/institute-management-backend/core/student"
	"github.com/MohdShoeb1/institute-management-backend/core/user"
)

type (
	UserService interface {
		Authenticate(ctx context.Context, uname, pwd string) (user.User, error)
		QueryAll(ctx context.Context) ([]user.User, error)
		Create(ctx context.Context, nu user.NewUser) (user.User, error)
		Update(ctx context.Context, id int, uu user.UpdateUser) (user.User, error)
		Delete(ctx context.Context, id int) error
	}

	CourseService interface {
		Create(ctx context.Context, nc course.NewCourse) (course.Course, error)
		Query(ctx context.Context, page core.Page) ([]course.Course, int, error)
	}

	StudentService interface {
		Enroll(ctx context.Context, ns student.NewStudent) (student.Student, error)
		Query(ctx context.Context, page core.Page) ([]student.Student, int, error)
		Delete(ctx context.Context, id int) error
		SetStatus(ctx context.Context, id int, su student.StatusUpdate) error
	}

	PaymentService interface {
		Record(ctx context.Context, np payment.NewPayment, actor core.Identity) (payment.Payment, error)
		Query(ctx context.Context, page core.Page) ([]payment.Payment, int, error)
	}

	StatsService interface {
		Get(ctx context.Context) (stats.Stats, error)
	}
)

var (
	_ UserService    = (*user.Service)(nil)
	_ CourseService  = (*course.Service)(nil)
	_ StudentService = (*student.Service)(nil)
	_ PaymentService = (*payment.Service)(nil)
	_ StatsService   = (*stats.Service)(nil)
)
