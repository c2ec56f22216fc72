package migration

import (
	"Food-Traceability-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.TraceabilityRecord{}); err != nil {
		log.Fatalf("Error migrating traceability record database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
