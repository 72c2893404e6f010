package api

import (
	_ "fxconvert/docs"
	ratehandler "fxconvert/internal/rate/handler"
	pagehandler "fxconvert/internal/ui/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *ratehandler.Handler, pageHandler *pagehandler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/currencies", rateHandler.GetSupportedCodes)
		r.Get("/flags/{code}", rateHandler.GetFlag)
		r.Post("/conversions", rateHandler.CreateConversion)
		r.Get("/conversions", rateHandler.ListConversions)
		r.Get("/conversions/{id}", rateHandler.GetConversion)

		r.Get("/page", pageHandler.GetPage)
		r.Put("/page/source", pageHandler.SelectSource)
		r.Put("/page/target", pageHandler.SelectTarget)
		r.Post("/page/convert", pageHandler.Convert)
		r.Post("/page/reload", pageHandler.Reload)
	})
	return router
}
