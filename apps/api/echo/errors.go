package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

var (
	errTokenMissing       = echo.NewHTTPError(http.StatusUnauthorized, "Token is missing")
	errTokenExpired       = echo.NewHTTPError(http.StatusUnauthorized, "Token has expired")
	errTokenInvalid       = echo.NewHTTPError(http.StatusUnauthorized, "Token is invalid")
	errInvalidCredentials = echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	errAdminRequired      = echo.NewHTTPError(http.StatusForbidden, "Admin access required")
	errCredentialsMissing = echo.NewHTTPError(http.StatusBadRequest, "Username and password required")
	errInvalidID          = core.NewValidationError(errors.New("Invalid ID"), core.FieldError{Field: "id", Error: "must be an integer"})

	internalErrorMessage = http.StatusText(http.StatusInternalServerError)
)

type errorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that renders our errors in the response envelope.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code, resp := classifyError(err, translator)

		if code == http.StatusInternalServerError {
			args := []interface{}{
				errors.Wrap(err, internalErrorMessage),
				map[string]interface{}{
					"request_id": ctx.Response().Header().Get(echo.HeaderXRequestID),
					"path":       ctx.Request().URL.Path,
				},
			}
			if id, ok := getContextIdentity(ctx); ok {
				args = append(args, id)
			}
			logger.Error(internalErrorMessage, args...)

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, resp)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

func classifyError(err error, translator ut.Translator) (int, errorResponse) {
	var (
		httpErr *echo.HTTPError
		valErr  *core.ValidationError
		nfErr   *core.NotFoundError
		cErr    *core.ConflictError
		vErrs   validator.ValidationErrors
	)

	switch {
	case errors.As(err, &httpErr):
		if herr, ok := httpErr.Internal.(*echo.HTTPError); ok {
			httpErr = herr
		}
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		if httpErr.Code >= http.StatusInternalServerError {
			return http.StatusInternalServerError, errorResponse{Message: internalErrorMessage}
		}
		return httpErr.Code, errorResponse{Message: msg}

	case errors.As(err, &vErrs):
		resp := errorResponse{Errors: make(map[string]string, len(vErrs))}
		for i, fe := range vErrs {
			text := fe.Translate(translator)
			if i == 0 {
				resp.Message = text
			}
			resp.Errors[fe.Field()] = text
		}
		return http.StatusBadRequest, resp

	case errors.As(err, &valErr):
		resp := errorResponse{Message: valErr.Error()}
		if len(valErr.Fields) > 0 {
			resp.Errors = make(map[string]string, len(valErr.Fields))
			for _, fe := range valErr.Fields {
				resp.Errors[fe.Field] = fe.Error
			}
		}
		return http.StatusBadRequest, resp

	case errors.As(err, &nfErr):
		return http.StatusNotFound, errorResponse{Message: nfErr.Error()}

	case errors.As(err, &cErr):
		return http.StatusBadRequest, errorResponse{Message: cErr.Error()}

	default: // any other error is a server error
		return http.StatusInternalServerError, errorResponse{Message: internalErrorMessage}
	}
}
