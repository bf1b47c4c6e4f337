package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core/student"
)

type studentApi struct {
	svc StudentService
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc StudentService) {
	api := studentApi{svc: svc}

	sg := g.Group("/students", jwt)
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.DELETE("/:id", api.destroy)
	sg.PUT("/:id/status", api.setStatus)
}

func (api *studentApi) query(ctx echo.Context) error {
	var pg Pagination
	if err := pg.Bind(ctx); err != nil {
		return err
	}
	students, total, err := api.svc.Query(ctx.Request().Context(), pg.Page)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []student.Student{}
	}
	return sendList(ctx, students, total, pg.Page)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	std, err := api.svc.Enroll(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "enrolling student")
	}
	return sendData(ctx, std)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return sendMessage(ctx, "Student deleted successfully")
}

func (api *studentApi) setStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	var data student.StatusUpdate
	if err = ctx.Bind(&data); err != nil {
		return err
	}
	if err = api.svc.SetStatus(ctx.Request().Context(), id, data); err != nil {
		return errors.Wrap(err, "setting student status")
	}
	return sendMessage(ctx, "Student status updated successfully")
}
