package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrFavoriteNotFound is returned when no favorite matches the requested id.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrFavoriteTargetMissing means neither cocktail_id nor dish_id was given.
	ErrFavoriteTargetMissing = errors.New("either cocktail_id or dish_id is required")
	// ErrFavoriteTargetConflict means both cocktail_id and dish_id were given.
	ErrFavoriteTargetConflict = errors.New("cocktail_id and dish_id cannot both be set")
)

// Favorite marks a cocktail or a dish as a user's favorite.
// Exactly one of CocktailID and DishID is set.
type Favorite struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	CocktailID *int64 `json:"cocktail_id"`
	DishID     *int64 `json:"dish_id"`
}

// FavoritePatch holds the fields of a partial favorite update. Setting one
// target clears the other.
type FavoritePatch struct {
	UserID     *int64
	CocktailID *int64
	DishID     *int64
}

func (p FavoritePatch) apply(f *Favorite) {
	if p.UserID != nil {
		f.UserID = *p.UserID
	}
	if p.CocktailID != nil {
		f.CocktailID = p.CocktailID
		f.DishID = nil
	}
	if p.DishID != nil {
		f.DishID = p.DishID
		f.CocktailID = nil
	}
}

// CheckFavoriteTarget enforces that exactly one of the two references is set.
func CheckFavoriteTarget(cocktailID, dishID *int64) error {
	switch {
	case cocktailID == nil && dishID == nil:
		return ErrFavoriteTargetMissing
	case cocktailID != nil && dishID != nil:
		return ErrFavoriteTargetConflict
	}
	return nil
}

const selectFavorite = `
	SELECT id, user_id, cocktail_id, dish_id
	FROM favorites
`

func scanFavorite(row interface{ Scan(...any) error }, f *Favorite) error {
	return row.Scan(&f.ID, &f.UserID, &f.CocktailID, &f.DishID)
}

// ListFavorites returns every favorite ordered by id.
func (s *Store) ListFavorites(ctx context.Context) ([]Favorite, error) {
	rows, err := s.db.QueryContext(ctx, selectFavorite+` ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []Favorite{}
	for rows.Next() {
		var fav Favorite
		if err := scanFavorite(rows, &fav); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return favorites, nil
}

// GetFavorite looks up a single favorite.
func (s *Store) GetFavorite(ctx context.Context, id int64) (Favorite, error) {
	var fav Favorite
	if err := scanFavorite(s.db.QueryRowContext(ctx, selectFavorite+` WHERE id = $1`, id), &fav); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Favorite{}, ErrFavoriteNotFound
		}
		return Favorite{}, fmt.Errorf("select favorite: %w", err)
	}
	return fav, nil
}

// CreateFavorite stores a favorite. The referenced user, cocktail and dish
// are not checked for existence.
func (s *Store) CreateFavorite(ctx context.Context, fav Favorite) (Favorite, error) {
	if err := CheckFavoriteTarget(fav.CocktailID, fav.DishID); err != nil {
		return Favorite{}, err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO favorites (user_id, cocktail_id, dish_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`, fav.UserID, fav.CocktailID, fav.DishID).Scan(&fav.ID); err != nil {
			return fmt.Errorf("insert favorite: %w", err)
		}
		return nil
	})
	if err != nil {
		return Favorite{}, err
	}
	return fav, nil
}

// UpdateFavorite applies patch to the stored favorite.
func (s *Store) UpdateFavorite(ctx context.Context, id int64, patch FavoritePatch) (Favorite, error) {
	if patch.CocktailID != nil && patch.DishID != nil {
		return Favorite{}, ErrFavoriteTargetConflict
	}

	var fav Favorite
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := scanFavorite(tx.QueryRowContext(ctx, selectFavorite+` WHERE id = $1 FOR UPDATE`, id), &fav); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrFavoriteNotFound
			}
			return fmt.Errorf("select favorite: %w", err)
		}

		patch.apply(&fav)
		if err := CheckFavoriteTarget(fav.CocktailID, fav.DishID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE favorites
			SET user_id = $1, cocktail_id = $2, dish_id = $3
			WHERE id = $4
		`, fav.UserID, fav.CocktailID, fav.DishID, fav.ID); err != nil {
			return fmt.Errorf("update favorite: %w", err)
		}
		return nil
	})
	if err != nil {
		return Favorite{}, err
	}
	return fav, nil
}

// DeleteFavorite removes a favorite.
func (s *Store) DeleteFavorite(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM favorites WHERE id = $1`, id, ErrFavoriteNotFound)
}
