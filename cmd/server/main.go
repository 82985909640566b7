package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"skylogger/dronelog/internal/db"
	"skylogger/dronelog/internal/logging"
	"skylogger/dronelog/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Dronelog starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	if err := db.InitStore(); err != nil {
		logging.Error("Failed to connect document store", "error", err.Error())
		log.Fatalf("Failed to connect document store: %v", err)
	}
	logging.Info("Document store connected")

	if _, err := db.InitORM(); err != nil {
		logging.Error("Failed to connect relational store", "error", err.Error())
		log.Fatalf("Failed to connect relational store: %v", err)
	}
	logging.Info("Relational store connected")

	upSince := time.Now()
	router := routes.RegisterRoutes(upSince)

	// Metrics endpoint lives outside the chi router.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info("Server starting", "port", port, "environment", appEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logging.Info("Shutting down")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server exited with error", "error", err.Error())
		os.Exit(1)
	}
}
