package stats

import (
	"context"

	"github.com/pkg/errors"
)

// Stats are the dashboard counters.
type Stats struct {
	TotalStudents int     `json:"total_students"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalPending  float64 `json:"total_pending"`
	TotalCourses  int     `json:"total_courses"`
}

// Totals are the raw aggregates Stats are derived from.
type Totals struct {
	Students int     `db:"students"`
	Courses  int     `db:"courses"`
	NetFees  float64 `db:"net_fees"`
	Revenue  float64 `db:"revenue"`
}

type (
	Repository interface {
		GetTotals(ctx context.Context) (Totals, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get computes the counters from scratch on every call.
func (svc *Service) Get(ctx context.Context) (Stats, error) {
	t, err := svc.repo.GetTotals(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "getting totals")
	}
	return Stats{
		TotalStudents: t.Students,
		TotalRevenue:  t.Revenue,
		TotalPending:  t.NetFees - t.Revenue,
		TotalCourses:  t.Courses,
	}, nil
}
