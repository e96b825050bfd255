package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"foodies-backend/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Area{}); err != nil {
		log.Fatalf("Error migrating area database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Testimonial{}); err != nil {
		log.Fatalf("Error migrating testimonial database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Favorite{}); err != nil {
		log.Fatalf("Error migrating favorite database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Follower{}); err != nil {
		log.Fatalf("Error migrating follower database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
