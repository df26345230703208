package httpapi

import (
	"net/http"

	"mixology/internal/store"
)

type createPairingRequest struct {
	CocktailID *int64 `json:"cocktail_id" validate:"required"`
	DishID     *int64 `json:"dish_id" validate:"required"`
}

type updatePairingRequest struct {
	CocktailID *int64 `json:"cocktail_id"`
	DishID     *int64 `json:"dish_id"`
}

func (s *Server) handleListPairings(w http.ResponseWriter, r *http.Request) {
	list, err := s.pairings.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetPairing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pairing, err := s.pairings.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pairing)
}

func (s *Server) handleCreatePairing(w http.ResponseWriter, r *http.Request) {
	var req createPairingRequest
	if err := decodePayload(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := s.pairings.Create(r.Context(), store.Pairing{
		CocktailID: *req.CocktailID,
		DishID:     *req.DishID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdatePairing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updatePairingRequest
	if err := decodePayload(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.CocktailID == nil && req.DishID == nil {
		writeError(w, r, errNoInput)
		return
	}

	updated, err := s.pairings.Update(r.Context(), id, store.PairingPatch{
		CocktailID: req.CocktailID,
		DishID:     req.DishID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePairing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.pairings.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "pairing deleted"})
}
