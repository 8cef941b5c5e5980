package dto

import "staybnb/models"

// CreateListingRequest là DTO cho request tạo listing mới
type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	ImageURL    string   `json:"imageUrl"`
	Location    string   `json:"location" binding:"required"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Bedrooms    int      `json:"bedrooms" binding:"gte=0"`
	Bathrooms   int      `json:"bathrooms" binding:"gte=0"`
	Amenities   []string `json:"amenities"`
}

// UpdateListingRequest là DTO cho request cập nhật listing
type UpdateListingRequest struct {
	ID          uint     `json:"id" binding:"required"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Location    string   `json:"location"`
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms"`
	Amenities   []string `json:"amenities"`
}

// ListingResponse là DTO cho response của listing
type ListingResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Amenities   []string `json:"amenities"`
	Superhost   bool     `json:"superhost"`
}

// ScoredListing là listing kèm điểm phù hợp khi search
type ScoredListing struct {
	Listing models.Listing
	Score   int
}
