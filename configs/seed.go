package configs

import (
	"log"

	"github.com/HuyNLy/Little-Lemon-App/entity"
)

// SeedFallbackMenu primes the menu cache on a first run that never reached
// the network. The cache is still bulk-replaced by the first successful
// fetch; this only keeps the offline fallback from being empty.
func SeedFallbackMenu() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("menu cache already populated, skip seeding")
		return nil
	}

	items := []entity.MenuItem{
		{ID: 0, Name: "Greek Salad", Price: 12.99, Description: "Crispy lettuce, peppers, olives and our Chicago style feta cheese.", Image: "greekSalad.jpg", Category: entity.CategoryStarters},
		{ID: 1, Name: "Bruschetta", Price: 7.99, Description: "Grilled bread smeared with garlic and topped with tomatoes.", Image: "bruschetta.jpg", Category: entity.CategoryStarters},
		{ID: 2, Name: "Grilled Fish", Price: 20.00, Description: "Barbequed catch of the day, with red onion and crisp capers.", Image: "grilledFish.jpg", Category: entity.CategoryMains},
		{ID: 3, Name: "Pasta", Price: 18.99, Description: "Penne with fried aubergines, tomato sauce and fresh basil.", Image: "pasta.jpg", Category: entity.CategoryMains},
		{ID: 4, Name: "Lemon Dessert", Price: 6.99, Description: "Traditional homemade Italian lemon ricotta cake.", Image: "lemonDessert.jpg", Category: entity.CategoryDesserts},
	}
	return db.Create(&items).Error
}
