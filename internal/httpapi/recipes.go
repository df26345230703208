package httpapi

import (
	"net/http"

	"mixology/internal/store"
)

// createRecipeRequest is the payload for both cocktails and dishes.
type createRecipeRequest struct {
	Name             string `json:"name" validate:"required"`
	PreparationSteps string `json:"preparation_steps" validate:"required"`
	FlavorProfile    string `json:"flavor_profile" validate:"required"`
}

type updateRecipeRequest struct {
	Name             *string `json:"name"`
	PreparationSteps *string `json:"preparation_steps"`
	FlavorProfile    *string `json:"flavor_profile"`
}

func (req updateRecipeRequest) patch() (store.RecipePatch, error) {
	if req.Name == nil && req.PreparationSteps == nil && req.FlavorProfile == nil {
		return store.RecipePatch{}, errNoInput
	}
	return store.RecipePatch{
		Name:             req.Name,
		PreparationSteps: req.PreparationSteps,
		FlavorProfile:    req.FlavorProfile,
	}, nil
}

func decodeRecipe(r *http.Request) (store.Recipe, error) {
	var req createRecipeRequest
	if err := decodePayload(r, &req); err != nil {
		return store.Recipe{}, err
	}
	if err := validatePayload(req); err != nil {
		return store.Recipe{}, err
	}
	return store.Recipe{
		Name:             req.Name,
		PreparationSteps: req.PreparationSteps,
		FlavorProfile:    req.FlavorProfile,
	}, nil
}

func decodeRecipePatch(r *http.Request) (int64, store.RecipePatch, error) {
	id, err := pathID(r)
	if err != nil {
		return 0, store.RecipePatch{}, err
	}
	var req updateRecipeRequest
	if err := decodePayload(r, &req); err != nil {
		return 0, store.RecipePatch{}, err
	}
	patch, err := req.patch()
	return id, patch, err
}

// Cocktail handlers
func (s *Server) handleListCocktails(w http.ResponseWriter, r *http.Request) {
	list, err := s.cocktails.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetCocktail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cocktail, err := s.cocktails.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cocktail)
}

func (s *Server) handleCreateCocktail(w http.ResponseWriter, r *http.Request) {
	recipe, err := decodeRecipe(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.cocktails.Create(r.Context(), store.Cocktail(recipe))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleUpdateCocktail(w http.ResponseWriter, r *http.Request) {
	id, patch, err := decodeRecipePatch(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := s.cocktails.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteCocktail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.cocktails.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "cocktail deleted"})
}

// Dish handlers
func (s *Server) handleListDishes(w http.ResponseWriter, r *http.Request) {
	list, err := s.dishes.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetDish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dish, err := s.dishes.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (s *Server) handleCreateDish(w http.ResponseWriter, r *http.Request) {
	recipe, err := decodeRecipe(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.dishes.Create(r.Context(), store.Dish(recipe))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleUpdateDish(w http.ResponseWriter, r *http.Request) {
	id, patch, err := decodeRecipePatch(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := s.dishes.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteDish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.dishes.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "dish deleted"})
}
