package favorites

import (
	"context"

	"mixology/internal/store"
)

// Store defines persistence operations required for favorites workflows.
type Store interface {
	ListFavorites(ctx context.Context) ([]store.Favorite, error)
	GetFavorite(ctx context.Context, id int64) (store.Favorite, error)
	CreateFavorite(ctx context.Context, fav store.Favorite) (store.Favorite, error)
	UpdateFavorite(ctx context.Context, id int64, patch store.FavoritePatch) (store.Favorite, error)
	DeleteFavorite(ctx context.Context, id int64) error
}

// Service describes high level favorites operations used by HTTP handlers.
type Service interface {
	List(ctx context.Context) ([]store.Favorite, error)
	Get(ctx context.Context, id int64) (store.Favorite, error)
	Create(ctx context.Context, fav store.Favorite) (store.Favorite, error)
	Update(ctx context.Context, id int64, patch store.FavoritePatch) (store.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a favorites Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) List(ctx context.Context) ([]store.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListFavorites(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (store.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return store.Favorite{}, err
	}
	return s.store.GetFavorite(ctx, id)
}

// Create stores fav. The store rejects favorites that do not point at exactly
// one of a cocktail or a dish.
func (s *service) Create(ctx context.Context, fav store.Favorite) (store.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return store.Favorite{}, err
	}
	return s.store.CreateFavorite(ctx, fav)
}

func (s *service) Update(ctx context.Context, id int64, patch store.FavoritePatch) (store.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return store.Favorite{}, err
	}
	return s.store.UpdateFavorite(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteFavorite(ctx, id)
}
