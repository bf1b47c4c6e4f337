package dummydb

import (
	"context"

	"github.com/MohdShoeb1/institute-management-backend/core/user"
)

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

// usernameTaken must be called with a lock held.
func (repo *userRepository) usernameTaken(username string, excludedID int) bool {
	for id, usr := range repo.db.users {
		if usr.Username == username && id != excludedID {
			return true
		}
	}
	return false
}

// emailTaken must be called with a lock held.
func (repo *userRepository) emailTaken(email string) bool {
	for _, usr := range repo.db.users {
		if usr.Email.Valid && usr.Email.String == email {
			return true
		}
	}
	return false
}

func (repo *userRepository) CountUsers(context.Context) (int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return len(repo.db.users), nil
}

func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if repo.usernameTaken(usr.Username, 0) {
		return user.User{}, user.ErrUsernameExists
	}
	if usr.Email.Valid && repo.emailTaken(usr.Email.String) {
		return user.User{}, user.ErrEmailExists
	}
	usr.ID = repo.db.nextID("users")
	repo.db.users[usr.ID] = usr
	return usr, nil
}

func (repo *userRepository) QueryAllUsers(context.Context) ([]user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	users := make([]user.User, 0, len(repo.db.users))
	for _, id := range sortedIDs(repo.db.users) {
		users = append(users, repo.db.users[id])
	}
	return users, nil
}

func (repo *userRepository) GetUserByID(_ context.Context, id int) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if usr, ok := repo.db.users[id]; ok {
		return usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByUsername(_ context.Context, username string) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, usr := range repo.db.users {
		if usr.Username == username {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) UpdateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.users[usr.ID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if repo.usernameTaken(usr.Username, usr.ID) {
		return user.User{}, user.ErrUsernameExists
	}
	orig.Username = usr.Username
	orig.PasswordHash = usr.PasswordHash
	repo.db.users[usr.ID] = orig
	return orig, nil
}

func (repo *userRepository) DeleteUser(_ context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(repo.db.users, id)
	return nil
}
