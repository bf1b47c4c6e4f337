package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/MohdShoeb1/institute-management-backend/core/user"
)

type sessionApi struct {
	auth *Authenticator
	svc  UserService
}

func registerAuthAPI(g *echo.Group, jwt, limiter echo.MiddlewareFunc, auth *Authenticator, svc UserService) {
	api := sessionApi{auth: auth, svc: svc}

	ag := g.Group("/auth")
	ag.POST("/login", api.login, limiter)
	ag.GET("/verify", api.verify, jwt)
}

type (
	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	LoginUser struct {
		Username string      `json:"username"`
		Email    null.String `json:"email"`
		Role     string      `json:"role"`
	}

	LoginResponse struct {
		Success bool      `json:"success"`
		Token   string    `json:"token"`
		User    LoginUser `json:"user"`
	}

	VerifyUser struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}

	VerifyResponse struct {
		Success bool       `json:"success"`
		User    VerifyUser `json:"user"`
	}
)

func (api *sessionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errCredentialsMissing
	}
	if data.Username == "" || data.Password == "" {
		return errCredentialsMissing
	}

	usr, err := api.svc.Authenticate(ctx.Request().Context(), data.Username, data.Password)
	if err != nil {
		if errors.Cause(err) == user.ErrInvalidCredentials {
			return errInvalidCredentials
		}
		return errors.Wrap(err, "authenticating")
	}
	token, err := api.auth.GenerateToken(usr)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
		User:    LoginUser{Username: usr.Username, Email: usr.Email, Role: usr.Role},
	})
}

func (api *sessionApi) verify(ctx echo.Context) error {
	id, ok := getContextIdentity(ctx)
	if !ok {
		return errTokenMissing
	}
	return ctx.JSON(http.StatusOK, VerifyResponse{
		Success: true,
		User:    VerifyUser{Username: id.Username, Role: id.Role},
	})
}
