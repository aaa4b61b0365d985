package main

import (
	"context"
	"log"

	"automart-be/internal/bootstrap"
	"automart-be/internal/config"
	"automart-be/internal/server"
	"automart-be/internal/tracer"
	"automart-be/pkg/database"
)

func main() {
	// 0. Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Configuration
	cfg := config.Load()

	// 2. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Background workers
	go func() {
		log.Println("Background: Starting listing index consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	// 5. HTTP server
	srv := server.New(cfg, container, container.Logger)

	log.Fatal(srv.Run())
}
