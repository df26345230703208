package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"mixology/internal/app/users"
	"mixology/internal/store"
)

type seedRecipe struct {
	Name             string
	PreparationSteps string
	FlavorProfile    string
}

var (
	demoIngredients = []store.Ingredient{
		{Name: "Gin", Type: "spirit"},
		{Name: "Campari", Type: "liqueur"},
		{Name: "Sweet vermouth", Type: "fortified wine"},
		{Name: "White rum", Type: "spirit"},
		{Name: "Lime juice", Type: "citrus"},
		{Name: "Simple syrup", Type: "sweetener"},
	}

	demoCocktails = []seedRecipe{
		{"Negroni", "Stir gin, Campari and sweet vermouth over ice. Strain onto a large cube and garnish with orange peel.", "bitter"},
		{"Daiquiri", "Shake rum, lime juice and syrup hard with ice. Double strain into a chilled coupe.", "sour"},
		{"Martinez", "Stir gin, sweet vermouth and maraschino with ice. Strain into a coupe.", "rich"},
	}

	demoDishes = []seedRecipe{
		{"Ceviche", "Cure diced white fish in lime juice with onion, chilli and coriander for 15 minutes.", "citrus"},
		{"Prosciutto and melon", "Drape thin slices of prosciutto over chilled melon wedges.", "salty"},
		{"Dark chocolate tart", "Bake a shortcrust shell and fill with set ganache.", "bittersweet"},
	}

	// Index pairs into demoCocktails and demoDishes.
	demoPairings = [][2]int{{0, 1}, {1, 0}, {2, 2}}
)

// bootstrapDemoData fills an empty database with a small catalog. It does
// nothing once any cocktail exists.
func bootstrapDemoData(ctx context.Context, svc services) error {
	existing, err := svc.cocktails.List(ctx)
	if err != nil {
		return fmt.Errorf("check cocktails: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	user, err := svc.users.Create(ctx, users.NewUser{
		Name:     "Demo Bartender",
		Username: "demo",
		Email:    "demo@example.com",
		Password: "demo123",
	})
	if err != nil && !errors.Is(err, store.ErrUserExists) {
		return fmt.Errorf("bootstrap demo user: %w", err)
	}

	for _, ingredient := range demoIngredients {
		if _, err := svc.ingredients.Create(ctx, ingredient); err != nil {
			return fmt.Errorf("insert demo ingredient %q: %w", ingredient.Name, err)
		}
	}

	cocktailIDs := make([]int64, 0, len(demoCocktails))
	for _, seed := range demoCocktails {
		created, err := svc.cocktails.Create(ctx, store.Cocktail{
			Name:             seed.Name,
			PreparationSteps: seed.PreparationSteps,
			FlavorProfile:    seed.FlavorProfile,
		})
		if err != nil {
			return fmt.Errorf("insert demo cocktail %q: %w", seed.Name, err)
		}
		cocktailIDs = append(cocktailIDs, created.ID)
	}

	dishIDs := make([]int64, 0, len(demoDishes))
	for _, seed := range demoDishes {
		created, err := svc.dishes.Create(ctx, store.Dish{
			Name:             seed.Name,
			PreparationSteps: seed.PreparationSteps,
			FlavorProfile:    seed.FlavorProfile,
		})
		if err != nil {
			return fmt.Errorf("insert demo dish %q: %w", seed.Name, err)
		}
		dishIDs = append(dishIDs, created.ID)
	}

	for _, pair := range demoPairings {
		if _, err := svc.pairings.Create(ctx, store.Pairing{
			CocktailID: cocktailIDs[pair[0]],
			DishID:     dishIDs[pair[1]],
		}); err != nil {
			return fmt.Errorf("insert demo pairing: %w", err)
		}
	}

	// The user already existed; favorites would need its id.
	if user.ID != 0 {
		if _, err := svc.favorites.Create(ctx, store.Favorite{UserID: user.ID, CocktailID: &cocktailIDs[0]}); err != nil {
			return fmt.Errorf("insert demo favorite: %w", err)
		}
		if _, err := svc.favorites.Create(ctx, store.Favorite{UserID: user.ID, DishID: &dishIDs[0]}); err != nil {
			return fmt.Errorf("insert demo favorite: %w", err)
		}
	}

	log.Info().
		Int("cocktails", len(cocktailIDs)).
		Int("dishes", len(dishIDs)).
		Msg("seeded demo data")
	return nil
}
