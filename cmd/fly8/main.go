//go:generate swag init --generalInfo internal/fly8/http/router.go --dir ../../ --output ../../api --outputTypes go --parseDependency

package main

import (
	"log"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/app"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
