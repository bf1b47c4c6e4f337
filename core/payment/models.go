package payment

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

type Payment struct {
	ID            int         `json:"id" db:"id"`
	StudentID     int         `json:"student_id" db:"student_id"`
	StudentName   string      `json:"student_name" db:"student_name"`
	Amount        float64     `json:"amount" db:"amount"`
	PaymentMethod string      `json:"payment_method" db:"payment_method"`
	FeeType       null.String `json:"fee_type" db:"fee_type"`
	Notes         null.String `json:"notes" db:"notes"`
	ReceiptNumber string      `json:"receipt_number" db:"receipt_number"`
	PaymentDate   time.Time   `json:"payment_date" db:"payment_date"` // UTC
	CreatedBy     string      `json:"created_by" db:"created_by"`
}

// NewPayment contains information needed to record a Payment.
type NewPayment struct {
	StudentID     int            `json:"student_id" validate:"required,gt=0"`
	Amount        core.FlexFloat `json:"amount" validate:"required,gt=0"`
	PaymentMethod string         `json:"payment_method" validate:"required,notblank"`
	FeeType       null.String    `json:"fee_type"`
	Notes         null.String    `json:"notes"`
}

func (np *NewPayment) Clean() {
	np.PaymentMethod = core.CleanString(np.PaymentMethod)
}
