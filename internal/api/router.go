package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/WyZzYx/APBD10/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		SendErr(r.Context(), w, http.StatusNotFound, errors.New("route not found"), "Not found.")
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		SendErr(r.Context(), w, http.StatusMethodNotAllowed, errors.New("method not allowed"), "Method not allowed.")
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/swagger/*", httpSwagger.Handler())

		r.Route("/devices", func(r chi.Router) {
			r.Get("/", h.Devices)
			r.Post("/", h.CreateDevice)
			r.Get("/{id:[0-9]+}", h.DeviceByID)
			r.Put("/{id:[0-9]+}", h.UpdateDevice)
			r.Delete("/{id:[0-9]+}", h.DeleteDevice)
		})

		r.Get("/device-types", h.DeviceTypes)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employees)
			r.Get("/{id:[0-9]+}", h.EmployeeByID)
		})
	})

	return router
}
