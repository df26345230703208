package store

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var userColumns = []string{"id", "name", "username", "email", "password"}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func strPtr(v string) *string { return &v }

func TestListUsersEmpty(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := s.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", users)
	}
	expectationsMet(t, mock)
}

func TestGetUserNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := s.GetUser(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestCreateUserThenGet(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, username, email, password)`)).
		WithArgs("Ada", "ada", "ada@example.com", "$2a$10$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectCommit()

	created, err := s.CreateUser(ctx, User{
		Name:         "Ada",
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
	})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if created.ID != 12 {
		t.Fatalf("expected id 12, got %d", created.ID)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(12), "Ada", "ada", "ada@example.com", "$2a$10$hash"))

	got, err := s.GetUser(ctx, 12)
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if got != created {
		t.Fatalf("round trip mismatch: created %#v, got %#v", created, got)
	}
	expectationsMet(t, mock)
}

func TestCreateUserRequiresHash(t *testing.T) {
	s, mock := newMockStore(t)

	if _, err := s.CreateUser(context.Background(), User{Username: "ada"}); err == nil {
		t.Fatal("expected error for missing password hash")
	}
	expectationsMet(t, mock)
}

func TestCreateUserDuplicate(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "pgx", err: &pgconn.PgError{Code: "23505"}},
		{name: "lib/pq", err: &pq.Error{Code: "23505"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newMockStore(t)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
				WillReturnError(tc.err)
			mock.ExpectRollback()

			_, err := s.CreateUser(context.Background(), User{Username: "ada", PasswordHash: "hash"})
			if !errors.Is(err, ErrUserExists) {
				t.Fatalf("expected ErrUserExists, got %v", err)
			}
			expectationsMet(t, mock)
		})
	}
}

func TestCreateUserBindsOmittedFieldsAsNull(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()

	for id := int64(1); id <= 2; id++ {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, username, email, password)`)).
			WithArgs(nil, nil, nil, "h").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectCommit()
	}

	for want := int64(1); want <= 2; want++ {
		got, err := s.CreateUser(ctx, User{PasswordHash: "h"})
		if err != nil {
			t.Fatalf("CreateUser #%d error: %v", want, err)
		}
		if got.ID != want {
			t.Fatalf("expected id %d, got %d", want, got.ID)
		}
	}
	expectationsMet(t, mock)
}

func TestUpdateUserClearsEmailToNull(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(7), "Ada", "ada", "ada@example.com", "hash"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET name = $1, username = $2, email = $3, password = $4 WHERE id = $5`)).
		WithArgs("Ada", "ada", nil, "hash", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := s.UpdateUser(context.Background(), 7, UserPatch{Email: strPtr("")})
	if err != nil {
		t.Fatalf("UpdateUser error: %v", err)
	}
	if got.Email != "" || got.Username != "ada" {
		t.Fatalf("unexpected user %#v", got)
	}
	expectationsMet(t, mock)
}

func TestUpdateUserAppliesOnlyPresentFields(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(7), "Old Name", "olduser", "old@example.com", "oldhash"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET name = $1, username = $2, email = $3, password = $4 WHERE id = $5`)).
		WithArgs("New Name", "olduser", "old@example.com", "oldhash", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := s.UpdateUser(context.Background(), 7, UserPatch{Name: strPtr("New Name")})
	if err != nil {
		t.Fatalf("UpdateUser error: %v", err)
	}
	want := User{ID: 7, Name: "New Name", Username: "olduser", Email: "old@example.com", PasswordHash: "oldhash"}
	if updated != want {
		t.Fatalf("expected %#v, got %#v", want, updated)
	}
	expectationsMet(t, mock)
}

func TestUpdateUserNotFoundRollsBack(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectRollback()

	_, err := s.UpdateUser(context.Background(), 9, UserPatch{Email: strPtr("x@example.com")})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestUpdateUserCommitFailureSurfacesMessage(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(7), "Name", "user", "user@example.com", "hash"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	_, err := s.UpdateUser(context.Background(), 7, UserPatch{Name: strPtr("Other")})
	if err == nil {
		t.Fatal("expected commit error")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected underlying message, got %q", err.Error())
	}
	expectationsMet(t, mock)
}

func TestDeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		if err := s.DeleteUser(context.Background(), 3); err != nil {
			t.Fatalf("DeleteUser error: %v", err)
		}
		expectationsMet(t, mock)
	})

	t.Run("missing", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		if err := s.DeleteUser(context.Background(), 3); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
		expectationsMet(t, mock)
	})

	t.Run("storage error", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
			WithArgs(int64(3)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := s.DeleteUser(context.Background(), 3)
		if err == nil || errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected storage error, got %v", err)
		}
		expectationsMet(t, mock)
	})
}

func TestUserPatchApplyIsIdempotent(t *testing.T) {
	patch := UserPatch{Email: strPtr("new@example.com")}
	u := User{ID: 1, Name: "Name", Username: "user", Email: "old@example.com", PasswordHash: "hash"}

	patch.apply(&u)
	once := u
	patch.apply(&u)

	if u != once {
		t.Fatalf("second apply changed state: %#v vs %#v", once, u)
	}
	if u.Name != "Name" || u.Username != "user" || u.PasswordHash != "hash" {
		t.Fatalf("untouched fields changed: %#v", u)
	}
}
