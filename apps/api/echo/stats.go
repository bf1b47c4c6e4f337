package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func registerStatsAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc StatsService) {
	g.GET("/stats", func(ctx echo.Context) error {
		st, err := svc.Get(ctx.Request().Context())
		if err != nil {
			return errors.Wrap(err, "computing stats")
		}
		return sendData(ctx, st)
	}, jwt)
}
