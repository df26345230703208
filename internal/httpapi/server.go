package httpapi

import (
	"context"
	"net/http"
	"time"

	"mixology/internal/app/users"
	"mixology/internal/store"
)

// UserService captures the user-facing operations needed by the HTTP handlers.
type UserService interface {
	List(ctx context.Context) ([]store.User, error)
	Get(ctx context.Context, id int64) (store.User, error)
	Create(ctx context.Context, user users.NewUser) (store.User, error)
	Update(ctx context.Context, id int64, changes users.Changes) (store.User, error)
	Delete(ctx context.Context, id int64) error
}

// IngredientService exposes ingredient workflows.
type IngredientService interface {
	List(ctx context.Context) ([]store.Ingredient, error)
	Get(ctx context.Context, id int64) (store.Ingredient, error)
	Create(ctx context.Context, ingredient store.Ingredient) (store.Ingredient, error)
	Update(ctx context.Context, id int64, patch store.IngredientPatch) (store.Ingredient, error)
	Delete(ctx context.Context, id int64) error
}

// CocktailService exposes cocktail workflows.
type CocktailService interface {
	List(ctx context.Context) ([]store.Cocktail, error)
	Get(ctx context.Context, id int64) (store.Cocktail, error)
	Create(ctx context.Context, cocktail store.Cocktail) (store.Cocktail, error)
	Update(ctx context.Context, id int64, patch store.RecipePatch) (store.Cocktail, error)
	Delete(ctx context.Context, id int64) error
}

// DishService exposes dish workflows.
type DishService interface {
	List(ctx context.Context) ([]store.Dish, error)
	Get(ctx context.Context, id int64) (store.Dish, error)
	Create(ctx context.Context, dish store.Dish) (store.Dish, error)
	Update(ctx context.Context, id int64, patch store.RecipePatch) (store.Dish, error)
	Delete(ctx context.Context, id int64) error
}

// FavoritesService coordinates favoriting workflows.
type FavoritesService interface {
	List(ctx context.Context) ([]store.Favorite, error)
	Get(ctx context.Context, id int64) (store.Favorite, error)
	Create(ctx context.Context, fav store.Favorite) (store.Favorite, error)
	Update(ctx context.Context, id int64, patch store.FavoritePatch) (store.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

// PairingService coordinates cocktail and dish pairings.
type PairingService interface {
	List(ctx context.Context) ([]store.Pairing, error)
	Get(ctx context.Context, id int64) (store.Pairing, error)
	Create(ctx context.Context, pairing store.Pairing) (store.Pairing, error)
	Update(ctx context.Context, id int64, patch store.PairingPatch) (store.Pairing, error)
	Delete(ctx context.Context, id int64) error
}

// Pinger reports database health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users       UserService
	ingredients IngredientService
	cocktails   CocktailService
	dishes      DishService
	favorites   FavoritesService
	pairings    PairingService
	health      Pinger
}

// New configures a Server with the given services.
func New(
	users UserService,
	ingredients IngredientService,
	cocktails CocktailService,
	dishes DishService,
	favorites FavoritesService,
	pairings PairingService,
	health Pinger,
) *Server {
	return &Server{
		users:       users,
		ingredients: ingredients,
		cocktails:   cocktails,
		dishes:      dishes,
		favorites:   favorites,
		pairings:    pairings,
		health:      health,
	}
}

// Routes exposes the HTTP handlers for every resource.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Users
	mux.HandleFunc("GET /users", s.handleListUsers)
	mux.HandleFunc("GET /user/{id}", s.handleGetUser)
	mux.HandleFunc("POST /new-user", s.handleCreateUser)
	mux.HandleFunc("PUT /user/{id}", s.handleUpdateUser)
	mux.HandleFunc("DELETE /delete-user/{id}", s.handleDeleteUser)

	// Ingredients
	mux.HandleFunc("GET /ingredients", s.handleListIngredients)
	mux.HandleFunc("GET /ingredient/{id}", s.handleGetIngredient)
	mux.HandleFunc("POST /ingredient", s.handleCreateIngredient)
	mux.HandleFunc("PUT /update-ingredient/{id}", s.handleUpdateIngredient)
	mux.HandleFunc("DELETE /delete-ingredient/{id}", s.handleDeleteIngredient)

	// Cocktails
	mux.HandleFunc("GET /cocktails", s.handleListCocktails)
	mux.HandleFunc("GET /cocktail/{id}", s.handleGetCocktail)
	mux.HandleFunc("POST /post-cocktail", s.handleCreateCocktail)
	mux.HandleFunc("PUT /update-cocktail/{id}", s.handleUpdateCocktail)
	mux.HandleFunc("DELETE /delete-cocktail/{id}", s.handleDeleteCocktail)

	// Dishes
	mux.HandleFunc("GET /get-dishes", s.handleListDishes)
	mux.HandleFunc("GET /get-dish/{id}", s.handleGetDish)
	mux.HandleFunc("POST /post-dish", s.handleCreateDish)
	mux.HandleFunc("PUT /update-dish/{id}", s.handleUpdateDish)
	mux.HandleFunc("DELETE /delete-dish/{id}", s.handleDeleteDish)

	// Favorites
	mux.HandleFunc("GET /get-favourites", s.handleListFavorites)
	mux.HandleFunc("GET /get-favorite/{id}", s.handleGetFavorite)
	mux.HandleFunc("POST /post-favorite", s.handleCreateFavorite)
	mux.HandleFunc("PUT /update-favorite/{id}", s.handleUpdateFavorite)
	mux.HandleFunc("DELETE /delete-favorite/{id}", s.handleDeleteFavorite)

	// Pairings
	mux.HandleFunc("GET /get-pairings", s.handleListPairings)
	mux.HandleFunc("GET /get-pairing/{id}", s.handleGetPairing)
	mux.HandleFunc("POST /post-pairing", s.handleCreatePairing)
	mux.HandleFunc("PUT /update-pairing/{id}", s.handleUpdatePairing)
	mux.HandleFunc("DELETE /delete-pairing/{id}", s.handleDeletePairing)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.health.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: "ok"})
}
