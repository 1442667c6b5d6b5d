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

	"github.com/joho/godotenv"

	"github.com/niravp-mindfire/fitness-tracking-app-sub001/config"
	"github.com/niravp-mindfire/fitness-tracking-app-sub001/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "fitness_tracker"
	}
	app, err := config.Connect(os.Getenv("MONGODB_URI"), dbName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: routes.SetupRouter(app),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("listening on :%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := app.Close(); err != nil {
		log.Printf("database disconnect: %v", err)
	}
}
