package api

import (
	"net/http"

	"nerine_frontend/internal/api/handler"
	"nerine_frontend/internal/api/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(logger *zap.Logger, pages *handler.PageHandler, actions *handler.ActionHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/pages", pages.RegisterRoutes)
	r.Route("/actions", actions.RegisterRoutes)
	r.Get("/logout", actions.Logout)

	return r
}
