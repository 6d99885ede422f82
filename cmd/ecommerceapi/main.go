package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/phuongndtech-dev/ECommerceApi/internal/app"
	"github.com/phuongndtech-dev/ECommerceApi/internal/config"
)

func main() {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
