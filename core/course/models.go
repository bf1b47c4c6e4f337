package course

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

type Course struct {
	ID          int         `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Duration    string      `json:"duration" db:"duration"`
	Fee         float64     `json:"fee" db:"fee"`
	Description null.String `json:"description" db:"description"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name        string         `json:"name" validate:"required,notblank"`
	Duration    string         `json:"duration" validate:"required,notblank"`
	Fee         core.FlexFloat `json:"fee" validate:"required,gte=0"`
	Description null.String    `json:"description"`
}

func (nc *NewCourse) Clean() {
	nc.Name = core.CleanString(nc.Name)
	nc.Duration = core.CleanString(nc.Duration)
}
