package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/user"
	logsvc "github.com/MohdShoeb1/institute-management-backend/services/logger"
	"github.com/MohdShoeb1/institute-management-backend/storage/database"
	sqlxrepos "github.com/MohdShoeb1/institute-management-backend/storage/database/sqlx"
)

func main() {
	conf, err := core.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := logsvc.NewRollbarLogger(os.Stdout, "ADMIN", conf)
	logger.Enable(false)

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}

	validate := validator.New()
	core.InitValidators(validate, core.NewTranslator())

	// start CLI
	cli := commandLine{
		db:     db.DB,
		usrSvc: user.NewService(sqlxrepos.NewUserRepository(db), validate),
	}
	err = cli.run(os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}
