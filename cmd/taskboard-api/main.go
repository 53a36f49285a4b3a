package main

import (
	"log"

	"github.com/terzigolu/taskboard-go/api"
	"github.com/terzigolu/taskboard-go/pkg/config"
	"github.com/terzigolu/taskboard-go/pkg/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repository.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	r := api.NewRouter(db)
	if err := r.Run(cfg.Server.Addr()); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
