package dishes

import (
	"context"

	"mixology/internal/store"
)

// Store defines persistence operations required for dish workflows.
type Store interface {
	ListDishes(ctx context.Context) ([]store.Dish, error)
	GetDish(ctx context.Context, id int64) (store.Dish, error)
	CreateDish(ctx context.Context, dish store.Dish) (store.Dish, error)
	UpdateDish(ctx context.Context, id int64, patch store.RecipePatch) (store.Dish, error)
	DeleteDish(ctx context.Context, id int64) error
}

// Service describes dish operations used by HTTP handlers.
type Service interface {
	List(ctx context.Context) ([]store.Dish, error)
	Get(ctx context.Context, id int64) (store.Dish, error)
	Create(ctx context.Context, dish store.Dish) (store.Dish, error)
	Update(ctx context.Context, id int64, patch store.RecipePatch) (store.Dish, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a dishes Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) List(ctx context.Context) ([]store.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListDishes(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (store.Dish, error) {
	if err := ctx.Err(); err != nil {
		return store.Dish{}, err
	}
	return s.store.GetDish(ctx, id)
}

func (s *service) Create(ctx context.Context, dish store.Dish) (store.Dish, error) {
	if err := ctx.Err(); err != nil {
		return store.Dish{}, err
	}
	return s.store.CreateDish(ctx, dish)
}

func (s *service) Update(ctx context.Context, id int64, patch store.RecipePatch) (store.Dish, error) {
	if err := ctx.Err(); err != nil {
		return store.Dish{}, err
	}
	return s.store.UpdateDish(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteDish(ctx, id)
}
