package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/stpnv0/HotelBooker/internal/app"
	"github.com/stpnv0/HotelBooker/internal/config"
)

func main() {
	// .env необязателен, в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
