package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/aprovost/studiodesk/internal/analytics"
	analyticsStore "github.com/aprovost/studiodesk/internal/analytics/store"
	"github.com/aprovost/studiodesk/internal/client"
	clientStore "github.com/aprovost/studiodesk/internal/client/store"
	"github.com/aprovost/studiodesk/internal/config"
	"github.com/aprovost/studiodesk/internal/database"
	studioHttp "github.com/aprovost/studiodesk/internal/http"
	analyticsHandler "github.com/aprovost/studiodesk/internal/http/analytics"
	clientHandler "github.com/aprovost/studiodesk/internal/http/client"
	invoiceHandler "github.com/aprovost/studiodesk/internal/http/invoice"
	leadHandler "github.com/aprovost/studiodesk/internal/http/lead"
	productHandler "github.com/aprovost/studiodesk/internal/http/product"
	searchHandler "github.com/aprovost/studiodesk/internal/http/search"
	sessionHandler "github.com/aprovost/studiodesk/internal/http/session"
	staffHandler "github.com/aprovost/studiodesk/internal/http/staff"
	"github.com/aprovost/studiodesk/internal/invoice"
	invoiceStore "github.com/aprovost/studiodesk/internal/invoice/store"
	"github.com/aprovost/studiodesk/internal/lead"
	leadStore "github.com/aprovost/studiodesk/internal/lead/store"
	"github.com/aprovost/studiodesk/internal/product"
	productStore "github.com/aprovost/studiodesk/internal/product/store"
	"github.com/aprovost/studiodesk/internal/search"
	searchStore "github.com/aprovost/studiodesk/internal/search/store"
	"github.com/aprovost/studiodesk/internal/session"
	sessionStore "github.com/aprovost/studiodesk/internal/session/store"
	"github.com/aprovost/studiodesk/internal/staff"
	staffStore "github.com/aprovost/studiodesk/internal/staff/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		clientService    = client.NewService(clientStore.New(db))
		sessionService   = session.NewService(sessionStore.New(db))
		invoiceService   = invoice.NewService(invoiceStore.New(db))
		staffService     = staff.NewService(staffStore.New(db))
		productService   = product.NewService(productStore.New(db))
		leadService      = lead.NewService(leadStore.New(db))
		analyticsService = analytics.NewService(analyticsStore.New(db))
		searchService    = search.NewService(searchStore.New(db))
	)

	var (
		clientH    = clientHandler.NewHandler(clientService, sessionService)
		sessionH   = sessionHandler.NewHandler(sessionService)
		invoiceH   = invoiceHandler.NewHandler(invoiceService)
		staffH     = staffHandler.NewHandler(staffService)
		productH   = productHandler.NewHandler(productService)
		leadH      = leadHandler.NewHandler(leadService)
		analyticsH = analyticsHandler.NewHandler(analyticsService)
		searchH    = searchHandler.NewHandler(searchService)
	)

	router := studioHttp.New(
		clientH, sessionH, invoiceH, staffH, productH, leadH, analyticsH, searchH,
		studioHttp.Options{
			Version:        cfg.App.Version,
			Production:     cfg.Production(),
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr, "env", cfg.App.Env)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
