package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when no user matches the requested id.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals the username or email is already taken.
	ErrUserExists = errors.New("user already exists")
)

// User is an account that can own favorites. PasswordHash never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// UserPatch holds the fields of a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Name         *string
	Username     *string
	Email        *string
	PasswordHash *string
}

func (p UserPatch) apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
}

const selectUser = `
	SELECT id, COALESCE(name, ''), COALESCE(username, ''), COALESCE(email, ''), password
	FROM users
`

// nullIfEmpty binds an empty string as NULL so the unique constraints on
// username and email only apply to values that were actually given.
func nullIfEmpty(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func scanUser(row interface{ Scan(...any) error }, u *User) error {
	return row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash)
}

// ListUsers returns every user ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, selectUser+` ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// GetUser looks up a single user.
func (s *Store) GetUser(ctx context.Context, id int64) (User, error) {
	var u User
	if err := scanUser(s.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id), &u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

// CreateUser stores a new user. The password must already be hashed.
func (s *Store) CreateUser(ctx context.Context, user User) (User, error) {
	if user.PasswordHash == "" {
		return User{}, errors.New("password hash is required")
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO users (name, username, email, password)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, nullIfEmpty(user.Name), nullIfEmpty(user.Username), nullIfEmpty(user.Email), user.PasswordHash).Scan(&user.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrUserExists
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

// UpdateUser applies the non-nil fields of patch to the stored user.
func (s *Store) UpdateUser(ctx context.Context, id int64, patch UserPatch) (User, error) {
	var u User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := scanUser(tx.QueryRowContext(ctx, selectUser+` WHERE id = $1 FOR UPDATE`, id), &u); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUserNotFound
			}
			return fmt.Errorf("select user: %w", err)
		}

		patch.apply(&u)

		if _, err := tx.ExecContext(ctx, `
			UPDATE users
			SET name = $1, username = $2, email = $3, password = $4
			WHERE id = $5
		`, nullIfEmpty(u.Name), nullIfEmpty(u.Username), nullIfEmpty(u.Email), u.PasswordHash, u.ID); err != nil {
			if isUniqueViolation(err) {
				return ErrUserExists
			}
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// DeleteUser removes a user. Favorites referencing it are left in place.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM users WHERE id = $1`, id, ErrUserNotFound)
}
