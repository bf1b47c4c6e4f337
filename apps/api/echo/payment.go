package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core/payment"
)

type paymentApi struct {
	svc PaymentService
}

func registerPaymentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc PaymentService) {
	api := paymentApi{svc: svc}

	pg := g.Group("/payments", jwt)
	pg.GET("", api.query)
	pg.POST("", api.create)
}

// payments are listed newest first
func (api *paymentApi) query(ctx echo.Context) error {
	var pg Pagination
	if err := pg.Bind(ctx); err != nil {
		return err
	}
	payments, total, err := api.svc.Query(ctx.Request().Context(), pg.Page)
	if err != nil {
		return errors.Wrap(err, "querying payments")
	}
	if payments == nil {
		payments = []payment.Payment{}
	}
	return sendList(ctx, payments, total, pg.Page)
}

func (api *paymentApi) create(ctx echo.Context) error {
	actor, ok := getContextIdentity(ctx)
	if !ok {
		return errTokenMissing
	}
	var data payment.NewPayment
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	pmt, err := api.svc.Record(ctx.Request().Context(), data, actor)
	if err != nil {
		return errors.Wrap(err, "recording payment")
	}
	return sendData(ctx, pmt)
}
