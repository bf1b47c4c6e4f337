package user_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohdShoeb1/institute-management-backend/core/user"
	"github.com/MohdShoeb1/institute-management-backend/storage/database/dummy"
	"github.com/MohdShoeb1/institute-management-backend/tests"
)

func setup(t *testing.T) (*user.Service, user.Repository) {
	db, err := dummydb.Open()
	require.NoError(t, err)
	validate, _ := testutil.NewValidator()
	repo := dummydb.NewUserRepository(db)
	return user.NewService(repo, validate), repo
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc, repo := setup(t)
	testutil.CreateUser(t, repo, "clerk", "pa55word", user.RoleUser)

	tests := []struct {
		name    string
		uname   string
		pwd     string
		wantErr error
	}{
		{name: "unknown username", uname: "nobody", pwd: "pa55word", wantErr: user.ErrInvalidCredentials},
		{name: "wrong password", uname: "clerk", pwd: "wrong", wantErr: user.ErrInvalidCredentials},
		{name: "valid", uname: "clerk", pwd: "pa55word"},
		{name: "padded username", uname: " clerk ", pwd: "pa55word"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Authenticate(ctx, tt.uname, tt.pwd)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "clerk", usr.Username)
		})
	}
}

func TestService_Authenticate_sameWorkForUnknownUsers(t *testing.T) {
	ctx := context.Background()
	svc, repo := setup(t)
	testutil.CreateUser(t, repo, "clerk", "pa55word", user.RoleUser)

	count, restore := user.CountHashComparisons()
	defer restore()

	_, err := svc.Authenticate(ctx, "nobody", "pa55word")
	assert.Equal(t, user.ErrInvalidCredentials, err)
	assert.Equal(t, 1, *count)

	_, err = svc.Authenticate(ctx, "clerk", "wrong")
	assert.Equal(t, user.ErrInvalidCredentials, err)
	assert.Equal(t, 2, *count)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	usr, err := svc.Create(ctx, user.NewUser{Username: "clerk", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, usr.Role)
	assert.NoError(t, usr.CheckPassword("secret"))
	assert.NotEqual(t, []byte("secret"), usr.PasswordHash)

	_, err = svc.Create(ctx, user.NewUser{Username: "clerk", Password: "other"})
	assert.Equal(t, user.ErrUsernameExists, err)

	_, err = svc.Create(ctx, user.NewUser{Username: "boss", Password: "x", Role: "superuser"})
	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "role", vErrs[0].Field())

	_, err = svc.Create(ctx, user.NewUser{Username: "", Password: "x"})
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "username", vErrs[0].Field())

	admin, err := svc.Create(ctx, user.NewUser{Username: "boss", Password: "x", Role: " ADMIN "})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	all, err := svc.QueryAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc, repo := setup(t)
	clerk := testutil.CreateUser(t, repo, "clerk", "old", user.RoleUser)
	testutil.CreateUser(t, repo, "boss", "x", user.RoleAdmin)

	_, err := svc.Update(ctx, clerk.ID, user.UpdateUser{})
	assert.Equal(t, user.ErrNoFieldsToUpdate, err)

	_, err = svc.Update(ctx, 999, user.UpdateUser{Username: "ghost"})
	assert.Equal(t, user.ErrNotFound, err)

	_, err = svc.Update(ctx, clerk.ID, user.UpdateUser{Username: "boss"})
	assert.Equal(t, user.ErrUsernameExists, err)

	usr, err := svc.Update(ctx, clerk.ID, user.UpdateUser{Password: "new"})
	require.NoError(t, err)
	assert.Equal(t, "clerk", usr.Username)
	assert.NoError(t, usr.CheckPassword("new"))

	usr, err = svc.Update(ctx, clerk.ID, user.UpdateUser{Username: "cashier"})
	require.NoError(t, err)
	assert.Equal(t, "cashier", usr.Username)
	assert.NoError(t, usr.CheckPassword("new"))

	// renaming to one's own username is not a conflict
	_, err = svc.Update(ctx, clerk.ID, user.UpdateUser{Username: "cashier"})
	assert.NoError(t, err)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo := setup(t)
	clerk := testutil.CreateUser(t, repo, "clerk", "x", user.RoleUser)

	assert.Equal(t, user.ErrNotFound, svc.Delete(ctx, 999))
	require.NoError(t, svc.Delete(ctx, clerk.ID))
	_, err := svc.GetByID(ctx, clerk.ID)
	assert.Equal(t, user.ErrNotFound, err)
}

func TestService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	created, pwd, err := svc.EnsureAdmin(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, pwd, 22) // 16 bytes, unpadded base64url

	admin, err := svc.Authenticate(ctx, "admin", pwd)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.Equal(t, "admin@institute.com", admin.Email.String)

	created, pwd, err = svc.EnsureAdmin(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, pwd)
}

func TestService_SetPassword(t *testing.T) {
	ctx := context.Background()
	svc, repo := setup(t)
	testutil.CreateUser(t, repo, "clerk", "old", user.RoleUser)

	assert.Equal(t, user.ErrNotFound, svc.SetPassword(ctx, "ghost", "x"))
	require.NoError(t, svc.SetPassword(ctx, "clerk", "new"))
	_, err := svc.Authenticate(ctx, "clerk", "new")
	assert.NoError(t, err)
}
