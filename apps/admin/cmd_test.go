package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/user"
	"github.com/MohdShoeb1/institute-management-backend/storage/database/dummy"
	"github.com/MohdShoeb1/institute-management-backend/tests"
)

var usrRepo user.Repository

func setup(t *testing.T) *commandLine {
	// set up DB & repos
	db, err := dummydb.Open()
	require.NoError(t, err)
	usrRepo = dummydb.NewUserRepository(db)

	validate, _ := testutil.NewValidator()

	// start CLI
	return &commandLine{
		usrSvc: user.NewService(usrRepo, validate),
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func mockPassword(pwd string) func() {
	orig := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte(pwd), nil }
	return func() { readPasswordFunc = orig }
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)

	var ran []string
	orig := gooseRunFunc
	defer func() { gooseRunFunc = orig }()
	gooseRunFunc = func(command string, _ *sql.DB, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "redo", "reset", "status", "version": // pass
		case "up-to", "down-to":
			if len(args) == 0 {
				return fmt.Errorf("%s must be of form: goose [OPTIONS] DRIVER DBSTRING %s VERSION", command, command)
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		ran = append(ran, command)
		return nil
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-to", args: []string{"migrate", "up-to", "1"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantErrStr != "":
				assert.EqualError(t, err, tt.wantErrStr)
			default:
				assert.NoError(t, err)
			}
		})
	}
	assert.Equal(t, []string{"up", "up-to", "down", "reset", "status", "version"}, ran)
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli := setup(t)

	usr := testutil.CreateUser(t, usrRepo, "awe", "mdr", user.RoleUser)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"resetpassword"}, wantErr: errHelp},
		{name: "username but no password", args: []string{"resetpassword", "-username", "lol"}, wantErr: errHelp},
		{name: "user not found", args: []string{"resetpassword", "-username", "lol"}, extra: extra{pwd: "lol"}, wantErr: user.ErrNotFound},
		{name: "reset with username", args: []string{"resetpassword", "-username", usr.Username}, extra: extra{pwd: "lol"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		var pwd string
		if e, ok := tt.extra.(extra); ok {
			pwd = e.pwd
		}

		t.Run(tt.name, func(t *testing.T) {
			defer mockPassword(pwd)()

			err := cli.run(args)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)

			refreshedUsr, err := usrRepo.GetUserByID(context.Background(), usr.ID)
			require.NoError(t, err)
			assert.False(t, bytes.Equal(refreshedUsr.PasswordHash, usr.PasswordHash), "failed to update new password")
			assert.NoError(t, refreshedUsr.CheckPassword(pwd))
		})
	}
}

func Test_commandLine_createUser(t *testing.T) {
	cli := setup(t)
	testutil.CreateUser(t, usrRepo, "taken", "pwd", user.RoleUser)

	t.Run("no username", func(t *testing.T) {
		defer mockPassword("pwd")()
		assert.Equal(t, errHelp, cli.run([]string{"admin", "createuser"}))
	})

	t.Run("no password", func(t *testing.T) {
		defer mockPassword("")()
		assert.Equal(t, errHelp, cli.run([]string{"admin", "createuser", "-username", "owner"}))
	})

	t.Run("username taken", func(t *testing.T) {
		defer mockPassword("pwd")()
		err := cli.run([]string{"admin", "createuser", "-username", "taken"})
		assert.True(t, core.IsConflict(err))
	})

	t.Run("admin", func(t *testing.T) {
		defer mockPassword("s3cret")()
		require.NoError(t, cli.run([]string{"admin", "createuser", "-username", "owner", "-email", "Owner@Test.in", "-role", "admin"}))

		usr, err := usrRepo.GetUserByUsername(context.Background(), "owner")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, usr.Role)
		assert.Equal(t, "owner@test.in", usr.Email.String)
		assert.NoError(t, usr.CheckPassword("s3cret"))
	})
}
