package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"englishquest/internal/api"
	"englishquest/internal/auth"
	"englishquest/internal/config"
	"englishquest/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	cfg := config.LoadConfigOrPanic()

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		log.Fatalf("DB connect error: %v", err)
	}
	log.Println("DB connected!")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("DB migrate error: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTConfig.Secret, cfg.JWTConfig.TTLMinutes)
	handler := api.NewApiHandler(db, tokens)
	router := api.NewRouter(handler)

	addr := fmt.Sprintf(":%d", cfg.AppConfig.Port)
	log.Printf("Starting %s on %s", cfg.AppConfig.APPName, addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server start error: %v", err)
	}
}
