package main

import (
	"context"
	"fmt"

	"github.com/volatiletech/null/v8"

	"github.com/MohdShoeb1/institute-management-backend/core/user"
)

func (cli *commandLine) createUser(uname, email, role, pwd string) error {
	nu := user.NewUser{
		Username: uname,
		Password: pwd,
		Role:     role,
	}
	if email != "" {
		nu.Email = null.StringFrom(email)
	}
	usr, err := cli.usrSvc.Create(context.Background(), nu)
	if err != nil {
		return err
	}
	fmt.Printf("user %q created with role %q\n", usr.Username, usr.Role)
	return nil
}
