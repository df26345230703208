package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrCocktailNotFound is returned when no cocktail matches the requested id.
	ErrCocktailNotFound = errors.New("cocktail not found")
	// ErrDishNotFound is returned when no dish matches the requested id.
	ErrDishNotFound = errors.New("dish not found")
)

// Recipe is the shape shared by cocktails and dishes.
type Recipe struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	PreparationSteps string `json:"preparation_steps"`
	FlavorProfile    string `json:"flavor_profile"`
}

// Cocktail is a drink recipe.
type Cocktail Recipe

// Dish is a food recipe.
type Dish Recipe

// RecipePatch holds the fields of a partial cocktail or dish update.
type RecipePatch struct {
	Name             *string
	PreparationSteps *string
	FlavorProfile    *string
}

func (p RecipePatch) apply(r *Recipe) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.PreparationSteps != nil {
		r.PreparationSteps = *p.PreparationSteps
	}
	if p.FlavorProfile != nil {
		r.FlavorProfile = *p.FlavorProfile
	}
}

// recipeTable runs the CRUD queries for one of the recipe tables.
type recipeTable struct {
	name     string
	notFound error
}

var (
	cocktailsTable = recipeTable{name: "cocktails", notFound: ErrCocktailNotFound}
	dishesTable    = recipeTable{name: "dishes", notFound: ErrDishNotFound}
)

func (t recipeTable) selectQuery() string {
	return `
	SELECT id, COALESCE(name, ''), COALESCE(preparation_steps, ''), COALESCE(flavor_profile, '')
	FROM ` + t.name + `
`
}

func scanRecipe(row interface{ Scan(...any) error }, r *Recipe) error {
	return row.Scan(&r.ID, &r.Name, &r.PreparationSteps, &r.FlavorProfile)
}

func (t recipeTable) list(ctx context.Context, db *sql.DB) ([]Recipe, error) {
	rows, err := db.QueryContext(ctx, t.selectQuery()+` ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", t.name, err)
	}
	defer rows.Close()

	recipes := []Recipe{}
	for rows.Next() {
		var r Recipe
		if err := scanRecipe(rows, &r); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", t.name, err)
	}
	return recipes, nil
}

func (t recipeTable) get(ctx context.Context, db *sql.DB, id int64) (Recipe, error) {
	var r Recipe
	if err := scanRecipe(db.QueryRowContext(ctx, t.selectQuery()+` WHERE id = $1`, id), &r); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Recipe{}, t.notFound
		}
		return Recipe{}, fmt.Errorf("select %s: %w", t.name, err)
	}
	return r, nil
}

func (t recipeTable) insert(ctx context.Context, tx *sql.Tx, r *Recipe) error {
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO `+t.name+` (name, preparation_steps, flavor_profile)
		VALUES ($1, $2, $3)
		RETURNING id
	`, r.Name, r.PreparationSteps, r.FlavorProfile).Scan(&r.ID); err != nil {
		return fmt.Errorf("insert %s: %w", t.name, err)
	}
	return nil
}

func (t recipeTable) update(ctx context.Context, tx *sql.Tx, id int64, patch RecipePatch) (Recipe, error) {
	var r Recipe
	if err := scanRecipe(tx.QueryRowContext(ctx, t.selectQuery()+` WHERE id = $1 FOR UPDATE`, id), &r); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Recipe{}, t.notFound
		}
		return Recipe{}, fmt.Errorf("select %s: %w", t.name, err)
	}

	patch.apply(&r)

	if _, err := tx.ExecContext(ctx, `
		UPDATE `+t.name+`
		SET name = $1, preparation_steps = $2, flavor_profile = $3
		WHERE id = $4
	`, r.Name, r.PreparationSteps, r.FlavorProfile, r.ID); err != nil {
		return Recipe{}, fmt.Errorf("update %s: %w", t.name, err)
	}
	return r, nil
}

// ListCocktails returns every cocktail ordered by id.
func (s *Store) ListCocktails(ctx context.Context) ([]Cocktail, error) {
	recipes, err := cocktailsTable.list(ctx, s.db)
	if err != nil {
		return nil, err
	}
	cocktails := make([]Cocktail, 0, len(recipes))
	for _, r := range recipes {
		cocktails = append(cocktails, Cocktail(r))
	}
	return cocktails, nil
}

// GetCocktail looks up a single cocktail.
func (s *Store) GetCocktail(ctx context.Context, id int64) (Cocktail, error) {
	r, err := cocktailsTable.get(ctx, s.db, id)
	return Cocktail(r), err
}

// CreateCocktail stores a new cocktail.
func (s *Store) CreateCocktail(ctx context.Context, cocktail Cocktail) (Cocktail, error) {
	r := Recipe(cocktail)
	if err := s.withTx(ctx, func(tx *sql.Tx) error {
		return cocktailsTable.insert(ctx, tx, &r)
	}); err != nil {
		return Cocktail{}, err
	}
	return Cocktail(r), nil
}

// UpdateCocktail applies the non-nil fields of patch to the stored cocktail.
func (s *Store) UpdateCocktail(ctx context.Context, id int64, patch RecipePatch) (Cocktail, error) {
	var r Recipe
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		r, err = cocktailsTable.update(ctx, tx, id, patch)
		return err
	})
	if err != nil {
		return Cocktail{}, err
	}
	return Cocktail(r), nil
}

// DeleteCocktail removes a cocktail. Favorites and pairings referencing it are left in place.
func (s *Store) DeleteCocktail(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM cocktails WHERE id = $1`, id, ErrCocktailNotFound)
}

// ListDishes returns every dish ordered by id.
func (s *Store) ListDishes(ctx context.Context) ([]Dish, error) {
	recipes, err := dishesTable.list(ctx, s.db)
	if err != nil {
		return nil, err
	}
	dishes := make([]Dish, 0, len(recipes))
	for _, r := range recipes {
		dishes = append(dishes, Dish(r))
	}
	return dishes, nil
}

// GetDish looks up a single dish.
func (s *Store) GetDish(ctx context.Context, id int64) (Dish, error) {
	r, err := dishesTable.get(ctx, s.db, id)
	return Dish(r), err
}

// CreateDish stores a new dish.
func (s *Store) CreateDish(ctx context.Context, dish Dish) (Dish, error) {
	r := Recipe(dish)
	if err := s.withTx(ctx, func(tx *sql.Tx) error {
		return dishesTable.insert(ctx, tx, &r)
	}); err != nil {
		return Dish{}, err
	}
	return Dish(r), nil
}

// UpdateDish applies the non-nil fields of patch to the stored dish.
func (s *Store) UpdateDish(ctx context.Context, id int64, patch RecipePatch) (Dish, error) {
	var r Recipe
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		r, err = dishesTable.update(ctx, tx, id, patch)
		return err
	})
	if err != nil {
		return Dish{}, err
	}
	return Dish(r), nil
}

// DeleteDish removes a dish. Favorites and pairings referencing it are left in place.
func (s *Store) DeleteDish(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, `DELETE FROM dishes WHERE id = $1`, id, ErrDishNotFound)
}
