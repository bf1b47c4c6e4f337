package sqlxrepos

import (
	"context"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/stats"
	"github.com/MohdShoeb1/institute-management-backend/storage/database"
)

type statsRepository struct {
	db core.DB
}

var _ stats.Repository = (*statsRepository)(nil) // interface compliance check

func NewStatsRepository(db core.DB) *statsRepository {
	return &statsRepository{db: db}
}

func (repo statsRepository) GetTotals(ctx context.Context) (stats.Totals, error) {
	var t stats.Totals
	err := repo.db.GetContext(ctx, &t, `
		SELECT
			(SELECT COUNT(*) FROM students)                                AS students,
			(SELECT COUNT(*) FROM courses)                                 AS courses,
			(SELECT COALESCE(SUM(total_fee - discount), 0) FROM students) AS net_fees,
			(SELECT COALESCE(SUM(amount), 0) FROM payments)                AS revenue`)
	return t, database.TrapErr(err, nil, "aggregating totals")
}
