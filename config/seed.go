package config

import (
	"log"
	"os"

	"staybnb/models"

	"github.com/lib/pq"
)

// SeedListings nạp dữ liệu listing khởi tạo khi SEED_LISTINGS=true.
// Dữ liệu mẫu là cấu hình khởi động tường minh, không nhúng trong handler.
func SeedListings() {
	if os.Getenv("SEED_LISTINGS") != "true" {
		return
	}

	var count int64
	if err := DB.Model(&models.Listing{}).Count(&count).Error; err != nil {
		log.Printf("Lỗi khi đếm listing: %v", err)
		return
	}
	if count > 0 {
		return
	}

	seeds := []models.Listing{
		{
			Title:       "Cozy Cabin in the Woods",
			Description: "A quiet retreat with a wood-burning fireplace.",
			Price:       120,
			Location:    "Aspen, CO",
			Rating:      4.8,
			Bedrooms:    2,
			Bathrooms:   1,
			Amenities:   pq.StringArray{"Fireplace", "Wifi"},
		},
		{
			Title:       "Modern Downtown Loft",
			Description: "2-bedroom loft in the heart of the city.",
			Price:       200,
			Location:    "New York, NY",
			Rating:      4.9,
			Bedrooms:    2,
			Bathrooms:   2,
			Amenities:   pq.StringArray{"Wifi", "Kitchen", "Elevator"},
		},
		{
			Title:       "Beachfront Villa",
			Description: "Luxury villa with private beach access.",
			Price:       350,
			Location:    "Miami, FL",
			Rating:      4.7,
			Bedrooms:    4,
			Bathrooms:   3,
			Amenities:   pq.StringArray{"Pool", "Beach access", "Wifi"},
		},
	}

	if err := DB.Create(&seeds).Error; err != nil {
		log.Printf("Lỗi khi seed listing: %v", err)
		return
	}
	log.Printf("Đã seed %d listing mẫu", len(seeds))
}
