package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrIngredientNotFound is returned when no ingredient matches the requested id.
var ErrIngredientNotFound = errors.New("ingredient not found")

// Ingredient is a standalone pantry item.
type Ingredient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// IngredientPatch holds the fields of a partial ingredient update.
type IngredientPatch struct {
	Name *string
	Type *string
}

func (p IngredientPatch) apply(i *Ingredient) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Type != nil {
		i.Type = *p.Type
	}
}

const selectIngredient = `
	SELECT id, COALESCE(name, ''), COALESCE(type, '')
	FROM ingredients
`

func scanIngredient(row interface{ Scan(...any) error }, i *Ingredient) error {
	return row.Scan(&i.ID, &i.Name, &i.Type)
}

// ListIngredients returns every ingredient ordered by id.
func (s *Store) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	rows, err := s.db.QueryContext(ctx, selectIngredient+` ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []Ingredient{}
	for rows.Next() {
		var i Ingredient
		if err := scanIngredient(rows, &i); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredients = append(ingredients, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return ingredients, nil
}

// GetIngredient looks up a single ingredient.
func (s *Store) GetIngredient(ctx context.Context, id int64) (Ingredient, error) {
	var i Ingredient
	if err := scanIngredient(s.db.QueryRowContext(ctx, selectIngredient+` WHERE id = $1`, id), &i); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ingredient{}, ErrIngredientNotFound
		}
		return Ingredient{}, fmt.Errorf("select ingredient: %w", err)
	}
	return i, nil
}

// CreateIngredient stores a new ingredient.
func (s *Store) CreateIngredient(ctx context.Context, ingredient Ingredient) (Ingredient, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO ingredients (name, type)
			VALUES ($1, $2)
			RETURNING id
		`, ingredient.Name, ingredient.Type).Scan(&ingredient.ID); err != nil {
			return fmt.Errorf("insert ingredient: %w", err)
		}
		return nil
	})
	if err != nil {
		return Ingredient{}, err
	}
	return ingredient, nil
}

// UpdateIngredient applies the non-nil fields of patch to the stored ingredient.
func (s *Store) UpdateIngredient(ctx context.Context, id int64, patch IngredientPatch) (Ingredient, error) {
	var i Ingredient
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := scanIngredient(tx.QueryRowContext(ctx, selectIngredient+` WHERE id = $1 FOR UPDATE`, id), &i); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrIngredientNotFound
			}
			return fmt.Errorf("select ingredient: %w", err)
		}

		patch.apply(&i)

		if _, err := tx.ExecContext(ctx, `
			UPDATE ingredients
			SET name = $1, type = $2
			WHERE id = $3
		`, i.Name, i.Type, i.ID); err != nil {
			return fmt.Errorf("update ingredient: %w", err)
		}
		return nil
	})
	if err != nil {
		return Ingredient{}, err
	}
	return i, nil
}

// DeleteIngredient removes an ingredient.
func (s *Store) DeleteIngredient(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM ingredients WHERE id = $1`, id, ErrIngredientNotFound)
}
