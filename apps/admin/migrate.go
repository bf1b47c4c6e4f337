package main

import (
	"github.com/MohdShoeb1/institute-management-backend/storage/database"
)

var gooseRunFunc = database.RunMigrations // mockable

// migrate runs a goose command; `migrate reset` followed by `migrate up` recreates the schema.
func (cli *commandLine) migrate(args []string) error {
	return gooseRunFunc(args[0], cli.db, args[1:]...)
}
