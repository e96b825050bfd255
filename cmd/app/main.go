package main

import (
	"log"

	"foodies-backend/cmd/config"
	migration "foodies-backend/cmd/database/migrate"
	"foodies-backend/cmd/database/seed"
	"foodies-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if utils.GetConfig("SEED") == "true" {
		log.Println("Running seed...")
		if err := seed.Run(db, "./seed-data"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to configure app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("Server is running. Use our API on port: %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
