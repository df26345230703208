package main

import (
	"net/http"

	"mixology/internal/app/cocktails"
	"mixology/internal/app/dishes"
	"mixology/internal/app/favorites"
	"mixology/internal/app/ingredients"
	"mixology/internal/app/pairings"
	"mixology/internal/app/users"
	"mixology/internal/http/middleware"
	"mixology/internal/httpapi"
	"mixology/internal/store"
)

type services struct {
	users       users.Service
	ingredients ingredients.Service
	cocktails   cocktails.Service
	dishes      dishes.Service
	favorites   favorites.Service
	pairings    pairings.Service
}

func newServices(dataStore *store.Store) services {
	return services{
		users:       users.New(dataStore),
		ingredients: ingredients.New(dataStore),
		cocktails:   cocktails.New(dataStore),
		dishes:      dishes.New(dataStore),
		favorites:   favorites.New(dataStore),
		pairings:    pairings.New(dataStore),
	}
}

func newHTTPHandler(cfg Config, svc services, dataStore *store.Store) http.Handler {
	api := httpapi.New(svc.users, svc.ingredients, svc.cocktails, svc.dishes, svc.favorites, svc.pairings, dataStore)

	return withMiddleware(cfg, api.Routes())
}

// withMiddleware puts request logging outermost so the request id is on the
// context before Recovery logs a panic, and the completion line still runs.
func withMiddleware(cfg Config, h http.Handler) http.Handler {
	return middleware.Chain(h,
		middleware.RequestLogging(),
		middleware.Recovery(),
		middleware.CORS(cfg.AllowedOrigins),
	)
}
