package database

import (
	"log"

	"resto_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates a demo account and restaurant so a fresh install has a
// browsable public menu. Idempotent via FirstOrCreate.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("demo123"), 10)
	if err != nil {
		log.Println("failed to hash demo password:", err)
		return
	}

	account := model.Account{Email: "demo@chezmaman.bj", Password: string(bytes), Active: true}
	if err := db.Where(model.Account{Email: account.Email}).FirstOrCreate(&account).Error; err != nil {
		log.Println("failed to seed demo account:", err)
		return
	}

	active := true
	restaurant := model.Restaurant{
		AccountId: account.ID,
		Name:      "Chez Maman",
		Slug:      "chez-maman",
		City:      "Cotonou",
		Whatsapp:  "+22997000000",
		Active:    &active,
	}
	if err := db.Where(model.Restaurant{Slug: restaurant.Slug}).FirstOrCreate(&restaurant).Error; err != nil {
		log.Println("failed to seed demo restaurant:", err)
		return
	}

	categories := []model.Category{
		{RestaurantId: restaurant.ID, Name: "Plats", Position: 1},
		{RestaurantId: restaurant.ID, Name: "Boissons", Position: 2},
	}
	for i := range categories {
		if err := db.Where(model.Category{RestaurantId: restaurant.ID, Name: categories[i].Name}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", categories[i].Name, "error:", err)
		}
	}

	dishes := []model.Dish{
		{RestaurantId: restaurant.ID, CategoryId: &categories[0].ID, Name: "Poulet braisé", Price: 2500, Available: true, Position: 1},
		{RestaurantId: restaurant.ID, CategoryId: &categories[0].ID, Name: "Riz sauce arachide", Price: 1500, Available: true, Position: 2},
		{RestaurantId: restaurant.ID, CategoryId: &categories[1].ID, Name: "Bissap", Price: 500, Available: true, Position: 1},
	}
	for _, d := range dishes {
		if err := db.Where(model.Dish{RestaurantId: restaurant.ID, Name: d.Name}).FirstOrCreate(&d).Error; err != nil {
			log.Println("failed to seed dish:", d.Name, "error:", err)
		}
	}
}
