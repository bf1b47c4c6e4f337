package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"

	dig_container "github.com/MohdShoeb1/institute-management-backend/apps/api/di/dig"
	echoapi "github.com/MohdShoeb1/institute-management-backend/apps/api/echo"
	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/course"
	"github.com/MohdShoeb1/institute-management-backend/core/user"
)

func main() {
	c := dig_container.New()

	must(c.Invoke(func(
		conf *core.Config,
		apiLogger core.Logger,
		dbLoggerParam dig_container.DBLoggerParam,
		db *sqlx.DB,
		usrSvc *user.Service,
		crsSvc *course.Service,
		server *echoapi.Server,
	) {
		// =========================================================================
		// Initialize App

		apiLogger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))

		dbLogger := dbLoggerParam.Logger
		defer func() {
			if err := db.Close(); err != nil {
				dbLogger.Fatal("Failed to close", err)
			}
		}()
		defer apiLogger.Info("Application stopped")

		seed(conf, apiLogger, usrSvc, crsSvc)

		// =========================================================================
		// Start Debug Service
		//
		// /debug/vars - Added to the default mux by importing the expvar package.

		// Expose important info under /debug/vars.
		expvar.NewString("build").Set(conf.Build)
		expvar.NewString("env").Set(conf.Env)

		go func() {
			if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
				apiLogger.Error(fmt.Sprintf("debug server closed: %v", err), err)
			}
		}()

		// =========================================================================
		// Start API Service

		go func() {
			server.Start()
		}()

		// =========================================================================
		// Shutdown

		select {
		case err := <-server.Errors():
			apiLogger.Fatal(fmt.Sprintf("server error: %v", err), err)

		case sig := <-server.ShutdownSignal():
			apiLogger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

			// give outstanding requests a deadline for completion
			ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
			defer cancel()

			// asking listener to shut down and shed load
			if err := server.Shutdown(ctx); err != nil {
				apiLogger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

				if err = server.Close(); err != nil {
					apiLogger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
				}
			}
		}
	}))
}

// seed loads the default catalog and bootstraps the first admin account.
func seed(conf *core.Config, logger core.Logger, usrSvc *user.Service, crsSvc *course.Service) {
	ctx := context.Background()

	n, err := crsSvc.Seed(ctx, course.Defaults)
	if err != nil {
		logger.Fatal(fmt.Sprintf("seeding courses: %v", err), err)
	}
	if n > 0 {
		logger.Info(fmt.Sprintf("%d default courses added", n))
	}

	created, pwd, err := usrSvc.EnsureAdmin(ctx, conf.DefaultAdminUsername)
	if err != nil {
		logger.Fatal(fmt.Sprintf("creating admin user: %v", err), err)
	}
	if created {
		// console only: the logger also reports to Rollbar
		fmt.Printf("\nAdmin user %q created with password: %s\nChange it with `admin resetpassword`.\n\n",
			conf.DefaultAdminUsername, pwd)
	}
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
