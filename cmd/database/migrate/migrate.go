package migration

import (
	"PantryPal-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.User{},
		&entities.Pantry{},
		&entities.PantryItem{},
		&entities.ShoppingList{},
		&entities.ShoppingListItem{},
		&entities.MealPlan{},
		&entities.MealEntry{},
		&entities.Recipe{},
		&entities.Notification{},
		&entities.ReceiptScan{},
		&entities.FoodRecognition{},
		&entities.Transaction{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
