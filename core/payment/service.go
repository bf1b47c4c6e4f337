package payment

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

var (
	// errors
	ErrStudentNotFound = core.NewNotFoundError("Student")
	ErrReceiptExists   = core.NewConflictError("Receipt number already exists")

	receiptAttempts = 3
)

type (
	Repository interface {
		// CreatePayment inserts the payment and adds its amount to the student's paid amount in one transaction.
		// StudentName is filled in from the student record.
		CreatePayment(ctx context.Context, pmt Payment) (Payment, error)
		// QueryPayments returns payments by payment date, newest first.
		QueryPayments(ctx context.Context, page core.Page) ([]Payment, int, error)
	}

	Service struct {
		repo       Repository
		validate   *validator.Validate
		nowFunc    core.NowFunc
		receiptGen func(time.Time) (string, error)
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{
		repo:       repo,
		validate:   validate,
		nowFunc:    core.UTCNow,
		receiptGen: NewReceiptNumber,
	}
}

// Record records a payment made by a student on behalf of `actor`.
func (svc *Service) Record(ctx context.Context, np NewPayment, actor core.Identity) (Payment, error) {
	np.Clean()
	if err := svc.validate.Struct(np); err != nil {
		return Payment{}, err
	}

	now := svc.nowFunc()
	pmt := Payment{
		StudentID:     np.StudentID,
		Amount:        np.Amount.Float64.Float64,
		PaymentMethod: np.PaymentMethod,
		FeeType:       np.FeeType,
		Notes:         np.Notes,
		PaymentDate:   now,
		CreatedBy:     actor.Username,
	}

	var err error
	for attempt := 1; attempt <= receiptAttempts; attempt++ {
		if pmt.ReceiptNumber, err = svc.receiptGen(now); err != nil {
			return Payment{}, errors.Wrap(err, "generating receipt number")
		}
		var created Payment
		created, err = svc.repo.CreatePayment(ctx, pmt)
		if err == nil {
			return created, nil
		}
		if errors.Cause(err) != ErrReceiptExists {
			return Payment{}, err
		}
	}
	return Payment{}, errors.Wrap(err, "creating payment")
}

func (svc *Service) Query(ctx context.Context, page core.Page) ([]Payment, int, error) {
	return svc.repo.QueryPayments(ctx, page)
}
