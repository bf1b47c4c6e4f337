package user

import (
	"sync"
	"time"

	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

// Roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int         `json:"id" db:"id"`
	Username     string      `json:"username" db:"username"`
	Email        null.String `json:"email" db:"email"`
	Role         string      `json:"role" db:"role"`
	PasswordHash []byte      `json:"-" db:"password_hash"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return compareHashAndPassword(u.PasswordHash, []byte(pwd))
}

var compareHashAndPassword = bcrypt.CompareHashAndPassword

// timingHash stands in for the password hash of unknown usernames.
var timingHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return hash
})

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) Identity() core.Identity {
	return core.Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Username string      `json:"username" validate:"required,notblank"`
	Password string      `json:"password" validate:"required"`
	Email    null.String `json:"email" validate:"omitempty,email"`
	Role     string      `json:"role" validate:"omitempty,oneof=admin user"`
}

func (nu *NewUser) Clean() {
	nu.Username = core.CleanString(nu.Username)
	nu.Role = core.CleanString(nu.Role, true /* lower */)
	if nu.Role == "" {
		nu.Role = RoleUser
	}
	if nu.Email.Valid {
		email := core.CleanString(nu.Email.String, true /* lower */)
		nu.Email = null.NewString(email, email != "")
	}
}

// UpdateUser defines what information may be provided to modify an existing User.
// Empty values are ignored.
type UpdateUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (uu *UpdateUser) Clean() {
	uu.Username = core.CleanString(uu.Username)
}

func (uu UpdateUser) IsEmpty() bool {
	return uu.Username == "" && uu.Password == ""
}
