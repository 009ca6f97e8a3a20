package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"itemsBack/internal/config"
	"itemsBack/internal/handlers"
	"itemsBack/internal/metrics"
	"itemsBack/internal/repositories"
	"itemsBack/internal/services"
)

type application struct {
	errorLog    *log.Logger
	infoLog     *log.Logger
	debug       bool
	metrics     *metrics.Manager
	itemHandler *handlers.ItemHandler
	itemRepo    *repositories.ItemRepository
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	app := &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		debug:    cfg.Server.Debug,
		metrics: metrics.NewManager(
			metrics.WithNamespace(cfg.Metrics.Namespace),
			metrics.WithHistogramBuckets(cfg.Metrics.Buckets),
		),
	}

	// Repositories
	itemRepo := &repositories.ItemRepository{DB: db, Dialect: cfg.Dialect()}
	// Services
	itemService := &services.ItemService{ItemRepo: &metrics.Store{Next: itemRepo, Metrics: app.metrics}}
	// Handlers
	itemHandler := &handlers.ItemHandler{Service: itemService, ServerError: app.serverError}

	app.itemRepo = itemRepo
	app.itemHandler = itemHandler
	return app
}

func openDB(dialect repositories.Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	dialect.ConfigurePool(db)
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		db.Close()
		return nil, err
	}
	log.Printf("Successfully connected to %s database", dialect)
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
