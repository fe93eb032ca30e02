package main

import (
	"context"
	"log"

	"exec-workspace-be/internal/bootstrap"
	"exec-workspace-be/internal/config"
	"exec-workspace-be/internal/server"
	"exec-workspace-be/internal/tracer"
	"exec-workspace-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container, err := bootstrap.NewContainer(gormDB, cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap application: %v", err)
	}

	// The activity consumer drains workspace events for the log trail
	if err := container.ActivityConsumer.Consume(context.Background()); err != nil {
		log.Printf("Background consumer error: %v", err)
	}

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
