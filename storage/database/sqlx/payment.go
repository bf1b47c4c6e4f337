package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/payment"
	"github.com/MohdShoeb1/institute-management-backend/storage/database"
)

const paymentColumns = "id, student_id, student_name, amount, payment_method, fee_type, notes, receipt_number, payment_date, created_by"

type paymentRepository struct {
	db core.DB
}

var _ payment.Repository = (*paymentRepository)(nil) // interface compliance check

func NewPaymentRepository(db core.DB) *paymentRepository {
	return &paymentRepository{db: db}
}

func (repo paymentRepository) CreatePayment(ctx context.Context, pmt payment.Payment) (payment.Payment, error) {
	err := database.WithTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		// lock the student row until the paid amount is updated
		err := tx.GetContext(ctx, &pmt.StudentName, "SELECT name FROM students WHERE id = $1 FOR UPDATE", pmt.StudentID)
		if err != nil {
			return database.TrapErr(err, payment.ErrStudentNotFound, "finding student")
		}

		if pmt.ID, err = insertReturningID(ctx, tx, `
			INSERT INTO payments (student_id, student_name, amount, payment_method, fee_type, notes, receipt_number, payment_date, created_by)
			VALUES (:student_id, :student_name, :amount, :payment_method, :fee_type, :notes, :receipt_number, :payment_date, :created_by)
			RETURNING id`, pmt); err != nil {
			if _, ok := database.UniqueViolation(err); ok {
				return payment.ErrReceiptExists
			}
			return database.TrapErr(err, nil, "inserting payment")
		}

		if _, err = tx.ExecContext(ctx,
			"UPDATE students SET paid_amount = paid_amount + $1 WHERE id = $2", pmt.Amount, pmt.StudentID,
		); err != nil {
			return database.TrapErr(err, nil, "updating student paid amount")
		}
		return nil
	})
	if err != nil {
		return payment.Payment{}, err
	}
	return pmt, nil
}

func (repo paymentRepository) QueryPayments(ctx context.Context, page core.Page) ([]payment.Payment, int, error) {
	payments := make([]payment.Payment, 0)
	total, err := queryPage(ctx, repo.db, &payments, paymentColumns, "payments", page,
		core.DBOrdering{Field: "payment_date"},
		core.DBOrdering{Field: "id"},
	)
	if err != nil {
		return nil, 0, database.TrapErr(err, nil, "querying payments")
	}
	return payments, total, nil
}
