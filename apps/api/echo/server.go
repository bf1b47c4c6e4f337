package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

type (
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		Translator     ut.Translator
		Auth           *Authenticator
		DB             core.Pinger
		UserSvc        UserService
		CourseSvc      CourseService
		StudentSvc     StudentService
		PaymentSvc     PaymentService
		StatsSvc       StatsService
		DisableReqLogs bool
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Debug = conf.Debug
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Pre(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	// answers every preflight before routing & auth
	s.app.Pre(middleware.CORSWithConfig(corsConfig(conf)))
	if !s.deps.DisableReqLogs {
		s.app.Use(requestLogger(s.deps.Logger))
	}
	// do not recover in development
	if !conf.Debug {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.GET("/", s.home)

	api := s.app.Group("/api")
	api.GET("/system/status", s.systemStatus)

	auth := authMiddleware(s.deps.Auth)
	loginLimiter := middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(conf.LoginRateLimit)))

	registerAuthAPI(api, auth, loginLimiter, s.deps.Auth, s.deps.UserSvc)
	registerStudentAPI(api, auth, s.deps.StudentSvc)
	registerCourseAPI(api, auth, s.deps.CourseSvc)
	registerPaymentAPI(api, auth, s.deps.PaymentSvc)
	registerUserAPI(api, auth, s.deps.UserSvc)
	registerStatsAPI(api, auth, s.deps.StatsSvc)
}

func corsConfig(conf *core.Config) middleware.CORSConfig {
	origins := []string{"*"}
	if conf.IsProduction() {
		origins = []string{conf.FrontendOrigin}
	}
	return middleware.CORSConfig{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderContentType},
		MaxAge:        600,
	}
}

func requestLogger(logger core.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request", map[string]interface{}{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			return nil
		},
	})
}

// Start blocks until the listener fails. Errors are sent to Errors().
func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Addr); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already signaled
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
