package main

import (
	"log"
	"os"

	"github.com/Shahriar-Utchas/TrackNFresh-server/config"
	"github.com/Shahriar-Utchas/TrackNFresh-server/routes"
)

func main() {
	db, closeDB := config.InitDB()
	defer closeDB()

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
