package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrPairingNotFound is returned when no pairing matches the requested id.
var ErrPairingNotFound = errors.New("pairing not found")

// Pairing links a cocktail to a dish it goes well with.
type Pairing struct {
	ID         int64 `json:"id"`
	CocktailID int64 `json:"cocktail_id"`
	DishID     int64 `json:"dish_id"`
}

// PairingPatch holds the fields of a partial pairing update.
type PairingPatch struct {
	CocktailID *int64
	DishID     *int64
}

func (p PairingPatch) apply(pr *Pairing) {
	if p.CocktailID != nil {
		pr.CocktailID = *p.CocktailID
	}
	if p.DishID != nil {
		pr.DishID = *p.DishID
	}
}

const selectPairing = `
	SELECT id, cocktail_id, dish_id
	FROM pairings
`

func scanPairing(row interface{ Scan(...any) error }, p *Pairing) error {
	return row.Scan(&p.ID, &p.CocktailID, &p.DishID)
}

// ListPairings returns every pairing ordered by id.
func (s *Store) ListPairings(ctx context.Context) ([]Pairing, error) {
	rows, err := s.db.QueryContext(ctx, selectPairing+` ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select pairings: %w", err)
	}
	defer rows.Close()

	pairings := []Pairing{}
	for rows.Next() {
		var p Pairing
		if err := scanPairing(rows, &p); err != nil {
			return nil, fmt.Errorf("scan pairing: %w", err)
		}
		pairings = append(pairings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pairings: %w", err)
	}
	return pairings, nil
}

// GetPairing looks up a single pairing.
func (s *Store) GetPairing(ctx context.Context, id int64) (Pairing, error) {
	var p Pairing
	if err := scanPairing(s.db.QueryRowContext(ctx, selectPairing+` WHERE id = $1`, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Pairing{}, ErrPairingNotFound
		}
		return Pairing{}, fmt.Errorf("select pairing: %w", err)
	}
	return p, nil
}

// CreatePairing stores a new pairing.
func (s *Store) CreatePairing(ctx context.Context, pairing Pairing) (Pairing, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO pairings (cocktail_id, dish_id)
			VALUES ($1, $2)
			RETURNING id
		`, pairing.CocktailID, pairing.DishID).Scan(&pairing.ID); err != nil {
			return fmt.Errorf("insert pairing: %w", err)
		}
		return nil
	})
	if err != nil {
		return Pairing{}, err
	}
	return pairing, nil
}

// UpdatePairing applies the non-nil fields of patch to the stored pairing.
func (s *Store) UpdatePairing(ctx context.Context, id int64, patch PairingPatch) (Pairing, error) {
	var p Pairing
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := scanPairing(tx.QueryRowContext(ctx, selectPairing+` WHERE id = $1 FOR UPDATE`, id), &p); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrPairingNotFound
			}
			return fmt.Errorf("select pairing: %w", err)
		}

		patch.apply(&p)

		if _, err := tx.ExecContext(ctx, `
			UPDATE pairings
			SET cocktail_id = $1, dish_id = $2
			WHERE id = $3
		`, p.CocktailID, p.DishID, p.ID); err != nil {
			return fmt.Errorf("update pairing: %w", err)
		}
		return nil
	})
	if err != nil {
		return Pairing{}, err
	}
	return p, nil
}

// DeletePairing removes a pairing.
func (s *Store) DeletePairing(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM pairings WHERE id = $1`, id, ErrPairingNotFound)
}
