package pairings

import (
	"context"

	"mixology/internal/store"
)

// Store defines persistence operations required for pairing workflows.
type Store interface {
	ListPairings(ctx context.Context) ([]store.Pairing, error)
	GetPairing(ctx context.Context, id int64) (store.Pairing, error)
	CreatePairing(ctx context.Context, pairing store.Pairing) (store.Pairing, error)
	UpdatePairing(ctx context.Context, id int64, patch store.PairingPatch) (store.Pairing, error)
	DeletePairing(ctx context.Context, id int64) error
}

// Service describes pairing operations used by HTTP handlers.
type Service interface {
	List(ctx context.Context) ([]store.Pairing, error)
	Get(ctx context.Context, id int64) (store.Pairing, error)
	Create(ctx context.Context, pairing store.Pairing) (store.Pairing, error)
	Update(ctx context.Context, id int64, patch store.PairingPatch) (store.Pairing, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a pairings Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) List(ctx context.Context) ([]store.Pairing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPairings(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (store.Pairing, error) {
	if err := ctx.Err(); err != nil {
		return store.Pairing{}, err
	}
	return s.store.GetPairing(ctx, id)
}

func (s *service) Create(ctx context.Context, pairing store.Pairing) (store.Pairing, error) {
	if err := ctx.Err(); err != nil {
		return store.Pairing{}, err
	}
	return s.store.CreatePairing(ctx, pairing)
}

func (s *service) Update(ctx context.Context, id int64, patch store.PairingPatch) (store.Pairing, error) {
	if err := ctx.Err(); err != nil {
		return store.Pairing{}, err
	}
	return s.store.UpdatePairing(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeletePairing(ctx, id)
}
