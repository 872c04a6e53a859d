package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/palabras-app/study-api/internal/api"
	apiMiddleware "github.com/palabras-app/study-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	studyHandler := api.NewStudyHandler(app.studyService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/study/list", studyHandler.GetStudyList)
		r.Post("/study/start", studyHandler.StartStudy)
		r.Post("/study/check", studyHandler.CheckResponse)
		r.Get("/study/{id}/stats", studyHandler.GetVocabStats)
		r.Get("/persons/{id}", studyHandler.GetAwesomePerson)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
