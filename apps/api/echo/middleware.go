package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/MohdShoeb1/institute-management-backend/core/user"
)

// adminMiddleware must run after authMiddleware.
func adminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, ok := getContextIdentity(ctx)
		if !ok {
			return errTokenMissing
		}
		if id.Role != user.RoleAdmin {
			return errAdminRequired
		}
		return next(ctx)
	}
}
