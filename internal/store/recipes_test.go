package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var recipeColumns = []string{"id", "name", "preparation_steps", "flavor_profile"}

func TestListCocktails(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cocktails ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows(recipeColumns).
			AddRow(int64(1), "Negroni", "Stir and strain", "bitter").
			AddRow(int64(2), "Daiquiri", "Shake and strain", "sour"))

	cocktails, err := s.ListCocktails(context.Background())
	if err != nil {
		t.Fatalf("ListCocktails error: %v", err)
	}
	if len(cocktails) != 2 || cocktails[0].Name != "Negroni" || cocktails[1].FlavorProfile != "sour" {
		t.Fatalf("unexpected cocktails %#v", cocktails)
	}
	expectationsMet(t, mock)
}

func TestCreateDishThenGet(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO dishes (name, preparation_steps, flavor_profile)`)).
		WithArgs("Ceviche", "Cure fish in lime", "citrus").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectCommit()

	created, err := s.CreateDish(ctx, Dish{Name: "Ceviche", PreparationSteps: "Cure fish in lime", FlavorProfile: "citrus"})
	if err != nil {
		t.Fatalf("CreateDish error: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM dishes WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(recipeColumns).AddRow(int64(4), "Ceviche", "Cure fish in lime", "citrus"))

	got, err := s.GetDish(ctx, 4)
	if err != nil {
		t.Fatalf("GetDish error: %v", err)
	}
	if got != created {
		t.Fatalf("round trip mismatch: created %#v, got %#v", created, got)
	}
	expectationsMet(t, mock)
}

func TestUpdateCocktailPartial(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM cocktails WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(recipeColumns).AddRow(int64(1), "Negroni", "Stir", "bitter"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE cocktails SET name = $1, preparation_steps = $2, flavor_profile = $3 WHERE id = $4`)).
		WithArgs("Negroni", "Stir over ice", "bitter", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := s.UpdateCocktail(context.Background(), 1, RecipePatch{PreparationSteps: strPtr("Stir over ice")})
	if err != nil {
		t.Fatalf("UpdateCocktail error: %v", err)
	}
	want := Cocktail{ID: 1, Name: "Negroni", PreparationSteps: "Stir over ice", FlavorProfile: "bitter"}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
	expectationsMet(t, mock)
}

func TestUpdateDishExecFailureRollsBack(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM dishes WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(recipeColumns).AddRow(int64(2), "Tacos", "Grill", "smoky"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE dishes`)).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	_, err := s.UpdateDish(context.Background(), 2, RecipePatch{Name: strPtr("Al Pastor")})
	if err == nil || errors.Is(err, ErrDishNotFound) {
		t.Fatalf("expected storage error, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestGetCocktailNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cocktails WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(recipeColumns))

	if _, err := s.GetCocktail(context.Background(), 99); !errors.Is(err, ErrCocktailNotFound) {
		t.Fatalf("expected ErrCocktailNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestDeleteDishMissing(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM dishes WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := s.DeleteDish(context.Background(), 5); !errors.Is(err, ErrDishNotFound) {
		t.Fatalf("expected ErrDishNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}
