package dummydb

import (
	"context"

	"github.com/MohdShoeb1/institute-management-backend/core/stats"
)

type statsRepository struct {
	db *DB
}

var _ stats.Repository = (*statsRepository)(nil) // interface compliance check

func NewStatsRepository(db *DB) stats.Repository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) GetTotals(context.Context) (stats.Totals, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	t := stats.Totals{
		Students: len(repo.db.students),
		Courses:  len(repo.db.courses),
	}
	for _, std := range repo.db.students {
		t.NetFees += std.NetFee()
	}
	for _, pmt := range repo.db.payments {
		t.Revenue += pmt.Amount
	}
	return t, nil
}
