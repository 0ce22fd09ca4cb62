package main

import (
	"log"

	"store499_app/internal/config"
	"store499_app/internal/stubapi"
)

func main() {
	config.Load()

	server := stubapi.NewServer(config.JWTSecret())
	r := server.Router()

	port := config.Port()
	log.Println("🚀 499 Store stub backend listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
