package student

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

// Statuses
const (
	StatusActive    = "Active"
	StatusDropped   = "Dropped"
	StatusCompleted = "Completed"
	StatusInactive  = "Inactive"
)

type Student struct {
	ID               int           `json:"id" db:"id"`
	Name             string        `json:"name" db:"name"`
	Father           null.String   `json:"father" db:"father"`
	DOB              core.NullDate `json:"dob" db:"dob"`
	Phone            null.String   `json:"phone" db:"phone"`
	Course           string        `json:"course" db:"course"`
	Branch           null.String   `json:"branch" db:"branch"`
	TotalFee         float64       `json:"total_fee" db:"total_fee"`
	Discount         float64       `json:"discount" db:"discount"`
	PaidAmount       float64       `json:"paid_amount" db:"paid_amount"`
	Status           string        `json:"status" db:"status"`
	CalculatedStatus string        `json:"calculated_status" db:"-"`
	EnrollmentDate   time.Time     `json:"enrollment_date" db:"enrollment_date"` // UTC
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`           // UTC
}

func (s Student) NetFee() float64 {
	return s.TotalFee - s.Discount
}

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	Name           string         `json:"name" validate:"required,notblank"`
	Father         null.String    `json:"father"`
	DOB            core.NullDate  `json:"dob"`
	Phone          null.String    `json:"phone"`
	Course         string         `json:"course" validate:"required,notblank"`
	Branch         null.String    `json:"branch"`
	TotalFee       core.FlexFloat `json:"total_fee" validate:"omitempty,gte=0"`
	Discount       core.FlexFloat `json:"discount" validate:"omitempty,gte=0"`
	EnrollmentDate core.FlexTime  `json:"enrollment_date"`
}

func (ns *NewStudent) Clean() {
	ns.Name = core.CleanString(ns.Name)
	ns.Course = core.CleanString(ns.Course)
}

// StatusUpdate is the body of a manual status override.
type StatusUpdate struct {
	Status string `json:"status"`
}
