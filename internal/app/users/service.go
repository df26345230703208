package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"mixology/internal/store"
)

// ErrPasswordRequired is returned when a user is created without a password.
var ErrPasswordRequired = errors.New("password is required")

// Store describes the persistence operations required by the user service.
type Store interface {
	ListUsers(ctx context.Context) ([]store.User, error)
	GetUser(ctx context.Context, id int64) (store.User, error)
	CreateUser(ctx context.Context, user store.User) (store.User, error)
	UpdateUser(ctx context.Context, id int64, patch store.UserPatch) (store.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// NewUser carries the plaintext fields of a signup.
type NewUser struct {
	Name     string
	Username string
	Email    string
	Password string
}

// Changes carries a partial user update. A non-nil Password is plaintext and
// gets hashed before it is stored.
type Changes struct {
	Name     *string
	Username *string
	Email    *string
	Password *string
}

// Service exposes user-related workflows in an extensible manner.
type Service interface {
	List(ctx context.Context) ([]store.User, error)
	Get(ctx context.Context, id int64) (store.User, error)
	Create(ctx context.Context, user NewUser) (store.User, error)
	Update(ctx context.Context, id int64, changes Changes) (store.User, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
	cost  int
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store, cost: bcrypt.DefaultCost}
}

func (s *service) List(ctx context.Context) ([]store.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListUsers(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (store.User, error) {
	if err := ctx.Err(); err != nil {
		return store.User{}, err
	}
	return s.store.GetUser(ctx, id)
}

func (s *service) Create(ctx context.Context, user NewUser) (store.User, error) {
	if err := ctx.Err(); err != nil {
		return store.User{}, err
	}
	if user.Password == "" {
		return store.User{}, ErrPasswordRequired
	}

	hash, err := s.hash(user.Password)
	if err != nil {
		return store.User{}, err
	}

	return s.store.CreateUser(ctx, store.User{
		Name:         user.Name,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: hash,
	})
}

func (s *service) Update(ctx context.Context, id int64, changes Changes) (store.User, error) {
	if err := ctx.Err(); err != nil {
		return store.User{}, err
	}

	patch := store.UserPatch{
		Name:     changes.Name,
		Username: changes.Username,
		Email:    changes.Email,
	}
	if changes.Password != nil {
		if *changes.Password == "" {
			return store.User{}, ErrPasswordRequired
		}
		hash, err := s.hash(*changes.Password)
		if err != nil {
			return store.User{}, err
		}
		patch.PasswordHash = &hash
	}

	return s.store.UpdateUser(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteUser(ctx, id)
}

func (s *service) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
