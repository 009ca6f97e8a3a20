package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"itemsBack/internal/config"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	flag.StringVar(&configPath, "config", configPath, "Path to the YAML config file")
	addrFlag := flag.String("addr", "", "HTTP network address (overrides the configured port)")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		errorLog.Fatal(err)
	}
	addr := cfg.Addr()
	if *addrFlag != "" {
		addr = *addrFlag
	}

	db, err := openDB(cfg.Dialect(), cfg.DSN())
	if err != nil {
		errorLog.Fatal(err)
	}
	defer db.Close()

	app := initializeApp(db, cfg, errorLog, infoLog)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	srv := &http.Server{
		Addr:         addr,
		ErrorLog:     errorLog,
		Handler:      addSecurityHeaders(c.Handler(app.routes())),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	idle := make(chan struct{})
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer close(idle)
		<-shutdown
		infoLog.Print("Shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			errorLog.Printf("Shutdown: %v", err)
		}
	}()

	infoLog.Printf("Starting server on %s (driver %s, debug %t)", addr, cfg.Dialect(), cfg.Server.Debug)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		errorLog.Fatal(err)
	}
	<-idle
}
