package httpapi

import (
	"net/http"

	"mixology/internal/store"
)

type createFavoriteRequest struct {
	UserID     *int64 `json:"user_id" validate:"required"`
	CocktailID *int64 `json:"cocktail_id"`
	DishID     *int64 `json:"dish_id"`
}

type updateFavoriteRequest struct {
	UserID     *int64 `json:"user_id"`
	CocktailID *int64 `json:"cocktail_id"`
	DishID     *int64 `json:"dish_id"`
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	list, err := s.favorites.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	fav, err := s.favorites.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

// handleCreateFavorite requires user_id and exactly one of cocktail_id or dish_id.
func (s *Server) handleCreateFavorite(w http.ResponseWriter, r *http.Request) {
	var req createFavoriteRequest
	if err := decodePayload(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := store.CheckFavoriteTarget(req.CocktailID, req.DishID); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.favorites.Create(r.Context(), store.Favorite{
		UserID:     *req.UserID,
		CocktailID: req.CocktailID,
		DishID:     req.DishID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleUpdateFavorite points a favorite at a different cocktail or dish.
func (s *Server) handleUpdateFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateFavoriteRequest
	if err := decodePayload(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := store.CheckFavoriteTarget(req.CocktailID, req.DishID); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := s.favorites.Update(r.Context(), id, store.FavoritePatch{
		UserID:     req.UserID,
		CocktailID: req.CocktailID,
		DishID:     req.DishID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.favorites.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "favorite deleted"})
}
