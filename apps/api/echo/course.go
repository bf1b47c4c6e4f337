package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core/course"
)

type courseApi struct {
	svc CourseService
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc CourseService) {
	api := courseApi{svc: svc}

	cg := g.Group("/courses", jwt)
	cg.GET("", api.query)
	cg.POST("", api.create)
}

func (api *courseApi) query(ctx echo.Context) error {
	var pg Pagination
	if err := pg.Bind(ctx); err != nil {
		return err
	}
	courses, total, err := api.svc.Query(ctx.Request().Context(), pg.Page)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []course.Course{}
	}
	return sendList(ctx, courses, total, pg.Page)
}

func (api *courseApi) create(ctx echo.Context) error {
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	crs, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return sendData(ctx, crs)
}
