package main

import (
	"context"
	"log"

	"notevault-be/internal/bootstrap"
	"notevault-be/internal/config"
	"notevault-be/internal/server"
	"notevault-be/internal/tracer"
	"notevault-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	go func() {
		log.Println("Background: Starting Activity Consumer...")
		if err := container.ActivityConsumer.Consume(context.Background()); err != nil {
			log.Printf("Background Activity Consumer error: %v", err)
		}
	}()

	go func() {
		log.Println("Background: Starting Sync Dispatcher...")
		if err := container.SyncDispatcher.Run(context.Background()); err != nil {
			log.Printf("Background Sync Dispatcher error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
