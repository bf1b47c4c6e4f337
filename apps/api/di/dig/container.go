package dig_container

import (
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/MohdShoeb1/institute-management-backend/apps/api/echo"
	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/course"
	"github.com/MohdShoeb1/institute-management-backend/core/payment"
	"github.com/MohdShoeb1/institute-management-backend/core/stats"
	"github.com/MohdShoeb1/institute-management-backend/core/student"
	"github.com/MohdShoeb1/institute-management-backend/core/user"
	logsvc "github.com/MohdShoeb1/institute-management-backend/services/logger"
	"github.com/MohdShoeb1/institute-management-backend/storage/database"
	sqlxrepos "github.com/MohdShoeb1/institute-management-backend/storage/database/sqlx"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

type serverParams struct {
	dig.In

	Conf       *core.Config
	Logger     core.Logger
	Translator ut.Translator
	Auth       *echoapi.Authenticator
	DB         core.Pinger
	UserSvc    *user.Service
	CourseSvc  *course.Service
	StudentSvc *student.Service
	PaymentSvc *payment.Service
	StatsSvc   *stats.Service
}

func newLogger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(os.Stdout, "API", conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(os.Stdout, "DB", conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDB(conf *core.Config, loggerParam DBLoggerParam) *sqlx.DB {
	setUp := func() (*sqlx.DB, error) {
		db, err := database.Open(conf)
		if err != nil {
			return nil, err
		}
		if err = database.Migrate(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}

	db, err := setUp()
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	return db
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       p.Conf,
		Logger:     p.Logger,
		Translator: p.Translator,
		Auth:       p.Auth,
		DB:         p.DB,
		UserSvc:    p.UserSvc,
		CourseSvc:  p.CourseSvc,
		StudentSvc: p.StudentSvc,
		PaymentSvc: p.PaymentSvc,
		StatsSvc:   p.StatsSvc,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))

	// storage
	must(c.Provide(newDB))
	must(c.Provide(func(db *sqlx.DB) core.DB { return db }))
	must(c.Provide(func(db *sqlx.DB) core.Pinger { return db }))
	must(c.Provide(sqlxrepos.NewUserRepository, dig.As(new(user.Repository))))
	must(c.Provide(sqlxrepos.NewCourseRepository, dig.As(new(course.Repository))))
	must(c.Provide(sqlxrepos.NewStudentRepository, dig.As(new(student.Repository))))
	must(c.Provide(sqlxrepos.NewPaymentRepository, dig.As(new(payment.Repository))))
	must(c.Provide(sqlxrepos.NewStatsRepository, dig.As(new(stats.Repository))))

	// services
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(user.NewService))
	must(c.Provide(course.NewService))
	must(c.Provide(func(svc *course.Service) student.CourseFinder { return svc }))
	must(c.Provide(student.NewService))
	must(c.Provide(payment.NewService))
	must(c.Provide(stats.NewService))

	// api
	must(c.Provide(echoapi.NewAuthenticator))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
