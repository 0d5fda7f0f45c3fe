package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/youruser/decksheet/internal/api"
	"github.com/youruser/decksheet/internal/session"
)

func main() {
	// Load .env if present (best-effort)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Warning: failed to load .env:", err)
	}

	outputDir := os.Getenv("DECK_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "out"
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandlers(session.New(), outputDir))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
