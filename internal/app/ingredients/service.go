package ingredients

import (
	"context"

	"mixology/internal/store"
)

// Store defines persistence operations required for ingredient workflows.
type Store interface {
	ListIngredients(ctx context.Context) ([]store.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (store.Ingredient, error)
	CreateIngredient(ctx context.Context, ingredient store.Ingredient) (store.Ingredient, error)
	UpdateIngredient(ctx context.Context, id int64, patch store.IngredientPatch) (store.Ingredient, error)
	DeleteIngredient(ctx context.Context, id int64) error
}

// Service describes ingredient operations used by HTTP handlers.
type Service interface {
	List(ctx context.Context) ([]store.Ingredient, error)
	Get(ctx context.Context, id int64) (store.Ingredient, error)
	Create(ctx context.Context, ingredient store.Ingredient) (store.Ingredient, error)
	Update(ctx context.Context, id int64, patch store.IngredientPatch) (store.Ingredient, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs an ingredients Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) List(ctx context.Context) ([]store.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListIngredients(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (store.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return store.Ingredient{}, err
	}
	return s.store.GetIngredient(ctx, id)
}

func (s *service) Create(ctx context.Context, ingredient store.Ingredient) (store.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return store.Ingredient{}, err
	}
	return s.store.CreateIngredient(ctx, ingredient)
}

func (s *service) Update(ctx context.Context, id int64, patch store.IngredientPatch) (store.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return store.Ingredient{}, err
	}
	return s.store.UpdateIngredient(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteIngredient(ctx, id)
}
