package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPairingLifecycle(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()
	columns := []string{"id", "cocktail_id", "dish_id"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO pairings (cocktail_id, dish_id)`)).
		WithArgs(int64(1), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectCommit()

	created, err := s.CreatePairing(ctx, Pairing{CocktailID: 1, DishID: 4})
	if err != nil {
		t.Fatalf("CreatePairing error: %v", err)
	}
	if created.ID != 8 {
		t.Fatalf("expected id 8, got %d", created.ID)
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM pairings WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(8), int64(1), int64(4)))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE pairings SET cocktail_id = $1, dish_id = $2 WHERE id = $3`)).
		WithArgs(int64(1), int64(6), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := s.UpdatePairing(ctx, 8, PairingPatch{DishID: int64Ptr(6)})
	if err != nil {
		t.Fatalf("UpdatePairing error: %v", err)
	}
	if updated != (Pairing{ID: 8, CocktailID: 1, DishID: 6}) {
		t.Fatalf("unexpected pairing %#v", updated)
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM pairings WHERE id = $1`)).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM pairings WHERE id = $1`)).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(columns))

	if err := s.DeletePairing(ctx, 8); err != nil {
		t.Fatalf("DeletePairing error: %v", err)
	}
	if _, err := s.GetPairing(ctx, 8); !errors.Is(err, ErrPairingNotFound) {
		t.Fatalf("expected ErrPairingNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}
