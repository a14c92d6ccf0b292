package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	analyticsHandler "github.com/aprovost/studiodesk/internal/http/analytics"
	clientHandler "github.com/aprovost/studiodesk/internal/http/client"
	invoiceHandler "github.com/aprovost/studiodesk/internal/http/invoice"
	leadHandler "github.com/aprovost/studiodesk/internal/http/lead"
	productHandler "github.com/aprovost/studiodesk/internal/http/product"
	"github.com/aprovost/studiodesk/internal/http/respond"
	searchHandler "github.com/aprovost/studiodesk/internal/http/search"
	sessionHandler "github.com/aprovost/studiodesk/internal/http/session"
	staffHandler "github.com/aprovost/studiodesk/internal/http/staff"
)

// Options carries router-level settings that are not per-resource.
type Options struct {
	Version        string
	Production     bool
	AllowedOrigins []string
}

func New(
	clients *clientHandler.Handler,
	sessions *sessionHandler.Handler,
	invoices *invoiceHandler.Handler,
	staff *staffHandler.Handler,
	products *productHandler.Handler,
	leads *leadHandler.Handler,
	analytics *analyticsHandler.Handler,
	search *searchHandler.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(respond.Recoverer(opts.Production))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.NotFound(respond.NotFound)

	router.Route("/api", func(r chi.Router) {
		r.Route("/clients", clients.Routes)
		r.Route("/sessions", sessions.Routes)
		r.Route("/invoices", invoices.Routes)
		r.Route("/staff", staff.Routes)
		r.Route("/products", products.Routes)
		r.Route("/marketing-leads", leads.Routes)
		r.Route("/analytics", analytics.Routes)
		r.Route("/search", search.Routes)

		r.Get("/health", healthHandler(opts.Version))
	})

	return router
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

func healthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
			Version:   version,
		})
	}
}
