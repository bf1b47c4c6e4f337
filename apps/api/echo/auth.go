package echoapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/user"
)

const (
	contextIdentityKey = "identity"
	bearerPrefix       = "Bearer "
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (c Claims) Identity() core.Identity {
	return core.Identity{ID: c.UserID, Username: c.Username, Role: c.Role}
}

// Authenticator issues and verifies HS256 session tokens.
type Authenticator struct {
	secret     []byte
	expiration time.Duration
	nowFunc    core.NowFunc
}

func NewAuthenticator(conf *core.Config) *Authenticator {
	return &Authenticator{
		secret:     []byte(conf.SecretKey),
		expiration: conf.JWTExpirationDelta,
		nowFunc:    core.UTCNow,
	}
}

// SetNowFunc overrides the clock used for issued tokens.
func (a *Authenticator) SetNowFunc(f core.NowFunc) {
	a.nowFunc = f
}

// GenerateToken generates a signed JWT token string for the user.
func (a *Authenticator) GenerateToken(usr user.User) (string, error) {
	now := a.nowFunc()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expiration)),
		},
		UserID:   usr.ID,
		Username: usr.Username,
		Role:     usr.Role,
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// ParseToken verifies the signature and expiry of a token string.
func (a *Authenticator) ParseToken(tokenString string) (*Claims, error) {
	claims := new(Claims)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, errTokenInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, errTokenExpired
	default:
		return nil, errTokenInvalid
	}
}

func authMiddleware(auth *Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if ctx.Request().Method == http.MethodOptions {
				return ctx.NoContent(http.StatusNoContent)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errTokenMissing
			}
			claims, err := auth.ParseToken(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return err
			}
			ctx.Set(contextIdentityKey, claims.Identity())
			return next(ctx)
		}
	}
}

func getContextIdentity(ctx echo.Context) (core.Identity, bool) {
	id, ok := ctx.Get(contextIdentityKey).(core.Identity)
	return id, ok
}
