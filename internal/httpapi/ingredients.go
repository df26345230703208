package httpapi

import (
	"net/http"

	"mixology/internal/store"
)

type createIngredientRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// Renames always carry a name; type is optional.
type updateIngredientRequest struct {
	Name *string `json:"name" validate:"required"`
	Type *string `json:"type"`
}

func (s *Server) handleListIngredients(w http.ResponseWriter, r *http.Request) {
	list, err := s.ingredients.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ingredient, err := s.ingredients.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ingredient)
}

func (s *Server) handleCreateIngredient(w http.ResponseWriter, r *http.Request) {
	var req createIngredientRequest
	if err := decodePayload(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.ingredients.Create(r.Context(), store.Ingredient{Name: req.Name, Type: req.Type})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleUpdateIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateIngredientRequest
	if err := decodePayload(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := s.ingredients.Update(r.Context(), id, store.IngredientPatch{Name: req.Name, Type: req.Type})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.ingredients.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "ingredient deleted"})
}
