package user

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

var (
	// errors
	ErrNotFound           = core.NewNotFoundError("User")
	ErrUsernameExists     = core.NewConflictError("Username already exists")
	ErrEmailExists        = core.NewConflictError("Email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoFieldsToUpdate   = core.NewValidationError(errors.New("No fields to update"))

	bootstrapPasswordBytes = 16
)

type (
	Repository interface {
		CountUsers(ctx context.Context) (int, error)
		CreateUser(ctx context.Context, usr User) (User, error)
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUserByID(ctx context.Context, id int) (User, error)
		GetUserByUsername(ctx context.Context, username string) (User, error)
		// UpdateUser persists Username & PasswordHash; it rejects usernames owned by another user.
		UpdateUser(ctx context.Context, usr User) (User, error)
		DeleteUser(ctx context.Context, id int) error
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
		nowFunc  core.NowFunc
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{
		repo:     repo,
		validate: validate,
		nowFunc:  core.UTCNow,
	}
}

// Authenticate returns the User matching the credentials, or ErrInvalidCredentials.
func (svc *Service) Authenticate(ctx context.Context, uname, pwd string) (User, error) {
	usr, err := svc.repo.GetUserByUsername(ctx, core.CleanString(uname))
	if err != nil {
		if core.IsNotFound(err) {
			_ = compareHashAndPassword(timingHash(), []byte(pwd))
			return User{}, ErrInvalidCredentials
		}
		return User{}, errors.Wrap(err, "finding user by username")
	}
	if err = usr.CheckPassword(pwd); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return usr, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *Service) GetByUsername(ctx context.Context, uname string) (User, error) {
	return svc.repo.GetUserByUsername(ctx, core.CleanString(uname))
}

func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	nu.Clean()
	if err := svc.validate.Struct(nu); err != nil {
		return User{}, err
	}

	usr := User{
		Username:  nu.Username,
		Email:     nu.Email,
		Role:      nu.Role,
		CreatedAt: svc.nowFunc(),
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *Service) Update(ctx context.Context, id int, uu UpdateUser) (User, error) {
	uu.Clean()
	if uu.IsEmpty() {
		return User{}, ErrNoFieldsToUpdate
	}

	usr, err := svc.repo.GetUserByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if uu.Username != "" {
		usr.Username = uu.Username
	}
	if uu.Password != "" {
		if err = usr.SetPassword(uu.Password); err != nil {
			return User{}, errors.Wrap(err, "hashing password")
		}
	}
	return svc.repo.UpdateUser(ctx, usr)
}

// SetPassword replaces the password of the user with the given username.
func (svc *Service) SetPassword(ctx context.Context, uname, pwd string) error {
	usr, err := svc.GetByUsername(ctx, uname)
	if err != nil {
		return err
	}
	if err = usr.SetPassword(pwd); err != nil {
		return errors.Wrap(err, "hashing password")
	}
	_, err = svc.repo.UpdateUser(ctx, usr)
	return err
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.repo.DeleteUser(ctx, id)
}

// EnsureAdmin creates the first admin account when no user exists yet.
// The generated password is only returned here; it is never stored in plaintext.
func (svc *Service) EnsureAdmin(ctx context.Context, uname string) (created bool, pwd string, err error) {
	cnt, err := svc.repo.CountUsers(ctx)
	if err != nil {
		return false, "", errors.Wrap(err, "counting users")
	}
	if cnt > 0 {
		return false, "", nil
	}

	if pwd, err = core.URLSafeToken(bootstrapPasswordBytes); err != nil {
		return false, "", errors.Wrap(err, "generating admin password")
	}
	uname = core.CleanString(uname)
	usr := User{
		Username:  uname,
		Email:     null.StringFrom(uname + "@institute.com"),
		Role:      RoleAdmin,
		CreatedAt: svc.nowFunc(),
	}
	if err = usr.SetPassword(pwd); err != nil {
		return false, "", errors.Wrap(err, "hashing password")
	}
	if _, err = svc.repo.CreateUser(ctx, usr); err != nil {
		return false, "", errors.Wrap(err, "creating admin user")
	}
	return true, pwd, nil
}
