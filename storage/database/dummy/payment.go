package dummydb

import (
	"context"
	"sort"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/payment"
)

type paymentRepository struct {
	db *DB
}

var _ payment.Repository = (*paymentRepository)(nil) // interface compliance check

func NewPaymentRepository(db *DB) payment.Repository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) CreatePayment(_ context.Context, pmt payment.Payment) (payment.Payment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	std, ok := repo.db.students[pmt.StudentID]
	if !ok {
		return payment.Payment{}, payment.ErrStudentNotFound
	}
	for _, p := range repo.db.payments {
		if p.ReceiptNumber == pmt.ReceiptNumber {
			return payment.Payment{}, payment.ErrReceiptExists
		}
	}

	pmt.StudentName = std.Name
	pmt.ID = repo.db.nextID("payments")
	repo.db.payments[pmt.ID] = pmt

	std.PaidAmount += pmt.Amount
	repo.db.students[std.ID] = std
	return pmt, nil
}

func (repo *paymentRepository) QueryPayments(_ context.Context, page core.Page) ([]payment.Payment, int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	payments := make([]payment.Payment, 0, len(repo.db.payments))
	for _, pmt := range repo.db.payments {
		payments = append(payments, pmt)
	}
	sort.Slice(payments, func(i, j int) bool {
		if payments[i].PaymentDate.Equal(payments[j].PaymentDate) {
			return payments[i].ID > payments[j].ID
		}
		return payments[i].PaymentDate.After(payments[j].PaymentDate)
	})
	return paginate(payments, page), len(payments), nil
}
