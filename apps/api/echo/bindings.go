package echoapi

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

const (
	pageParam     = "page"
	pageSizeParam = "page_size"
)

type Pagination struct {
	Page core.Page
}

// Bind reads `page` & `page_size`; missing or non-positive values fall back to the defaults.
// `page_size` is capped at core.MaxPageSize.
func (p *Pagination) Bind(ctx echo.Context) error {
	var number, size int
	err := echo.QueryParamsBinder(ctx).
		Int(pageParam, &number).
		Int(pageSizeParam, &size).
		BindErrors()
	if len(err) > 0 {
		flds := make([]core.FieldError, 0, len(err))
		for _, e := range err {
			var bErr *echo.BindingError
			if errors.As(e, &bErr) {
				flds = append(flds, core.FieldError{Field: bErr.Field, Error: "must be an integer"})
			}
		}
		return core.NewValidationError(errors.New("Invalid pagination parameters"), flds...)
	}
	if number > core.MaxPage {
		return core.NewValidationError(errors.New("Invalid pagination parameters"),
			core.FieldError{Field: pageParam, Error: fmt.Sprintf("must be at most %d", core.MaxPage)})
	}
	p.Page = core.NewPage(number, size)
	return nil
}

func bindID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}
