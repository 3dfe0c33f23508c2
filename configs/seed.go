package configs

import (
	"log"
	"time"

	"github.com/Om-Rawte/AIMenuAssistant/entity"
)

// SeedTables creates the venue's physical tables on first boot.
func SeedTables() error {
	db := DB()

	tables := []entity.Table{
		{Code: "T1", Name: "Window 1", Seats: 2},
		{Code: "T2", Name: "Window 2", Seats: 2},
		{Code: "T3", Name: "Center 1", Seats: 4},
		{Code: "T4", Name: "Center 2", Seats: 4},
		{Code: "T5", Name: "Patio", Seats: 6},
	}
	for _, t := range tables {
		// match on the QR code only, so renaming a table or changing its
		// seat count in a later release never collides with the unique index
		err := db.Where(entity.Table{Code: t.Code}).
			Attrs(entity.Table{Name: t.Name, Seats: t.Seats}).
			FirstOrCreate(&entity.Table{}).Error
		if err != nil {
			return err
		}
	}

	var count int64
	db.Model(&entity.Reservation{}).Count(&count)
	if count == 0 {
		db.Create(&entity.Reservation{
			CustomerName: "Walk-in Demo",
			ReservedFor:  time.Now().Add(30 * time.Minute),
			TableID:      3,
		})
	}
	return nil
}

// SeedMenu loads the demo menu when the table is empty.
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		log.Println("menu already seeded")
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Bruschetta", Description: "Grilled bread, tomato, basil", Price: 650, Category: "Starters",
			Allergens: entity.StringList{"gluten"}, Dietary: entity.StringList{"vegetarian"}, Available: true},
		{Name: "Caesar Salad", Description: "Romaine, parmesan, croutons", Price: 900, Category: "Starters",
			Allergens: entity.StringList{"gluten", "dairy", "egg"}, Available: true},
		{Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: 1250, Category: "Mains",
			Allergens: entity.StringList{"gluten", "dairy"}, Dietary: entity.StringList{"vegetarian"}, Available: true},
		{Name: "Grilled Salmon", Description: "Lemon butter, seasonal greens", Price: 1850, Category: "Mains",
			Allergens: entity.StringList{"fish", "dairy"}, Dietary: entity.StringList{"gluten-free"}, Available: true},
		{Name: "Mushroom Risotto", Description: "Arborio rice, porcini, parmesan", Price: 1400, Category: "Mains",
			Allergens: entity.StringList{"dairy"}, Dietary: entity.StringList{"vegetarian", "gluten-free"}, Available: true},
		{Name: "Tiramisu", Description: "Espresso-soaked ladyfingers, mascarpone", Price: 750, Category: "Desserts",
			Allergens: entity.StringList{"gluten", "dairy", "egg"}, Dietary: entity.StringList{"vegetarian"}, Available: true},
		{Name: "Sparkling Water", Description: "750ml bottle", Price: 400, Category: "Drinks",
			Dietary: entity.StringList{"vegan", "gluten-free"}, Available: true},
		{Name: "House Red", Description: "Glass of the house blend", Price: 800, Category: "Drinks",
			Dietary: entity.StringList{"vegan"}, Available: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("menu seeded")
	return nil
}
