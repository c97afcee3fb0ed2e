package migration

import (
	"fmt"
	"log"

	"recipe-hub-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Fatalf("Error migrating review database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NewsletterSubscription{}); err != nil {
		log.Fatalf("Error migrating newsletter database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Contact{}); err != nil {
		log.Fatalf("Error migrating contact database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AboutPage{}, &entities.CoreValue{}, &entities.TeamMember{}); err != nil {
		log.Fatalf("Error migrating about page database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
