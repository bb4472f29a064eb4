package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andriamanitra/portfolio-api/internal/config"
	"github.com/andriamanitra/portfolio-api/internal/handlers"
	"github.com/andriamanitra/portfolio-api/internal/store"
)

func main() {
	cfg := config.Load()

	// A failed connection is not fatal: the API stays up and reports the
	// store as unavailable, matching the /test diagnostic.
	db := connect(cfg)
	st := store.New(db)

	h := handlers.NewHandler(st, cfg)
	r := handlers.NewRouter(h)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func connect(cfg *config.Config) *mongo.Database {
	if cfg.MongoURI == "" {
		log.Println("DATABASE_URL is not set, store unavailable.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Printf("Failed to connect to MongoDB: %v", err)
		return nil
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("Failed to ping MongoDB: %v", err)
		return nil
	}

	log.Println("Successfully connected to MongoDB!")
	return client.Database(cfg.DatabaseName)
}
