package cocktails

import (
	"context"

	"mixology/internal/store"
)

// Store defines persistence operations required for cocktail workflows.
type Store interface {
	ListCocktails(ctx context.Context) ([]store.Cocktail, error)
	GetCocktail(ctx context.Context, id int64) (store.Cocktail, error)
	CreateCocktail(ctx context.Context, cocktail store.Cocktail) (store.Cocktail, error)
	UpdateCocktail(ctx context.Context, id int64, patch store.RecipePatch) (store.Cocktail, error)
	DeleteCocktail(ctx context.Context, id int64) error
}

// Service describes cocktail operations used by HTTP handlers.
type Service interface {
	List(ctx context.Context) ([]store.Cocktail, error)
	Get(ctx context.Context, id int64) (store.Cocktail, error)
	Create(ctx context.Context, cocktail store.Cocktail) (store.Cocktail, error)
	Update(ctx context.Context, id int64, patch store.RecipePatch) (store.Cocktail, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a cocktails Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) List(ctx context.Context) ([]store.Cocktail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListCocktails(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (store.Cocktail, error) {
	if err := ctx.Err(); err != nil {
		return store.Cocktail{}, err
	}
	return s.store.GetCocktail(ctx, id)
}

func (s *service) Create(ctx context.Context, cocktail store.Cocktail) (store.Cocktail, error) {
	if err := ctx.Err(); err != nil {
		return store.Cocktail{}, err
	}
	return s.store.CreateCocktail(ctx, cocktail)
}

func (s *service) Update(ctx context.Context, id int64, patch store.RecipePatch) (store.Cocktail, error) {
	if err := ctx.Err(); err != nil {
		return store.Cocktail{}, err
	}
	return s.store.UpdateCocktail(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteCocktail(ctx, id)
}
