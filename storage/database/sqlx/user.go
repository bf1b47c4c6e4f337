package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/MohdShoeb1/institute-management-backend/core"
	"github.com/MohdShoeb1/institute-management-backend/core/user"
	"github.com/MohdShoeb1/institute-management-backend/storage/database"
)

const userColumns = "id, username, email, role, password_hash, created_at"

type userRepository struct {
	db core.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db core.DB) *userRepository {
	return &userRepository{db: db}
}

// trapUniqueErr maps unique violations on users to their conflict errors.
func (repo userRepository) trapUniqueErr(err error, msg string) error {
	if constraint, ok := database.UniqueViolation(err); ok {
		switch constraint {
		case "users_username_key":
			return user.ErrUsernameExists
		case "users_email_key":
			return user.ErrEmailExists
		}
	}
	return database.TrapErr(err, user.ErrNotFound, msg)
}

func (repo userRepository) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := repo.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, database.TrapErr(err, nil, "counting users")
	}
	return n, nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	id, err := insertReturningID(ctx, repo.db, `
		INSERT INTO users (username, email, role, password_hash, created_at)
		VALUES (:username, :email, :role, :password_hash, :created_at)
		RETURNING id`, usr)
	if err != nil {
		return user.User{}, repo.trapUniqueErr(err, "inserting user")
	}
	usr.ID = id
	return usr, nil
}

func (repo userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	users := make([]user.User, 0)
	q := "SELECT " + userColumns + " FROM users" + orderBy(core.DBOrdering{Field: "id", Ascending: true})
	if err := repo.db.SelectContext(ctx, &users, q); err != nil {
		return nil, database.TrapErr(err, nil, "querying users")
	}
	return users, nil
}

func (repo userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	var usr user.User
	err := repo.db.GetContext(ctx, &usr, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return usr, database.TrapErr(err, user.ErrNotFound, "finding user by ID")
}

func (repo userRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	var usr user.User
	err := repo.db.GetContext(ctx, &usr, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
	return usr, database.TrapErr(err, user.ErrNotFound, "finding user by username")
}

func (repo userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	err := database.WithTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		var taken bool
		if err := tx.GetContext(ctx, &taken,
			"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2)", usr.Username, usr.ID,
		); err != nil {
			return errors.Wrap(err, "checking username uniqueness")
		}
		if taken {
			return user.ErrUsernameExists
		}

		res, err := tx.ExecContext(ctx,
			"UPDATE users SET username = $1, password_hash = $2 WHERE id = $3",
			usr.Username, usr.PasswordHash, usr.ID,
		)
		if err != nil {
			return repo.trapUniqueErr(err, "updating user")
		}
		return checkAffected(res, user.ErrNotFound)
	})
	if err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo userRepository) DeleteUser(ctx context.Context, id int) error {
	res, err := repo.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return database.TrapErr(err, nil, "deleting user")
	}
	return checkAffected(res, user.ErrNotFound)
}
