package controllers

import (
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"staybnb/config"
	"staybnb/dto"
	"staybnb/models"
	"staybnb/response"
	"staybnb/services"
	"staybnb/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const listingsCacheKey = "listings:all"

func convertToListingResponse(listing models.Listing) dto.ListingResponse {
	return dto.ListingResponse{
		ID:          listing.ID,
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price,
		ImageURL:    listing.ImageURL,
		Location:    listing.Location,
		Rating:      listing.Rating,
		Reviews:     listing.Reviews,
		Bedrooms:    listing.Bedrooms,
		Bathrooms:   listing.Bathrooms,
		Amenities:   listing.Amenities,
		Superhost:   listing.Superhost,
	}
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tạo danh sách vị trí duy nhất từ danh sách listing cho closestmatch
func prepareLocationList(listings []models.Listing) []string {
	uniqueValues := make(map[string]bool)
	for _, listing := range listings {
		if listing.Location != "" {
			uniqueValues[normalizeInput(listing.Location)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho listing so với query
func calculateListingScore(query string, listing models.Listing, cmLocation *closestmatch.ClosestMatch) int {
	score := 0

	normalizedTitle := normalizeInput(listing.Title)
	normalizedDesc := normalizeInput(listing.Description)

	if strings.Contains(normalizedTitle, query) {
		score += 20
	} else if calculateSimilarity(query, normalizedTitle) > 0.7 {
		score += 12
	}

	if strings.Contains(normalizedDesc, query) {
		score += 8
	}

	if cmLocation.Closest(query) == normalizeInput(listing.Location) {
		score += 13
	}

	for _, amenity := range listing.Amenities {
		normalizedAmenity := normalizeInput(amenity)
		if strings.Contains(query, normalizedAmenity) || calculateSimilarity(query, normalizedAmenity) > 0.7 {
			score += 4
			break
		}
	}

	return score
}

func filterAndScoreListings(query string, listings []models.Listing, cmLocation *closestmatch.ClosestMatch) []dto.ScoredListing {
	var filtered []dto.ScoredListing
	scoreCh := make(chan dto.ScoredListing, len(listings))
	var wg sync.WaitGroup

	for _, listing := range listings {
		wg.Add(1)
		go func(listing models.Listing) {
			defer wg.Done()
			score := calculateListingScore(query, listing, cmLocation)
			if score > 0 {
				scoreCh <- dto.ScoredListing{Listing: listing, Score: score}
			}
		}(listing)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scored := range scoreCh {
		filtered = append(filtered, scored)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})
	return filtered
}

// GetListings trả về danh sách listing có filter và phân trang.
// Danh sách đầy đủ được cache ở Redis, filter chạy trên bộ nhớ.
func GetListings(c *gin.Context) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Không kết nối được Redis, đọc thẳng từ DB: %v", err)
	}

	var allListings []models.Listing
	if rdb == nil || services.GetFromRedis(config.Ctx, rdb, listingsCacheKey, &allListings) != nil || len(allListings) == 0 {
		if err := config.DB.Find(&allListings).Error; err != nil {
			response.ServerError(c)
			return
		}
		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, listingsCacheKey, allListings, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách listing vào Redis: %v", err)
			}
		}
	}

	// Lấy các tham số filter từ query
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	searchTerm := c.Query("search")
	locationFilter := c.Query("location")
	priceMinStr := c.Query("priceMin")
	priceMaxStr := c.Query("priceMax")
	ratingStr := c.Query("rating")

	// Xử lý phân trang
	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	// Áp dụng bộ lọc
	filtered := make([]models.Listing, 0)
	for _, listing := range allListings {
		if locationFilter != "" {
			decodedLocation, _ := url.QueryUnescape(locationFilter)
			if !strings.Contains(strings.ToLower(listing.Location), strings.ToLower(decodedLocation)) {
				continue
			}
		}
		if priceMinStr != "" {
			if priceMin, err := strconv.ParseFloat(priceMinStr, 64); err == nil && listing.Price < priceMin {
				continue
			}
		}
		if priceMaxStr != "" {
			if priceMax, err := strconv.ParseFloat(priceMaxStr, 64); err == nil && listing.Price > priceMax {
				continue
			}
		}
		if ratingStr != "" {
			if rating, err := strconv.ParseFloat(ratingStr, 64); err == nil && listing.Rating != 0 && listing.Rating < rating {
				continue
			}
		}
		filtered = append(filtered, listing)
	}

	// Search term dùng fuzzy matching, kết quả xếp theo điểm phù hợp
	if searchTerm != "" {
		decodedSearch, _ := url.QueryUnescape(searchTerm)
		query := normalizeInput(decodedSearch)
		cmLocation := createMatcher(prepareLocationList(filtered))

		scored := filterAndScoreListings(query, filtered, cmLocation)
		filtered = make([]models.Listing, 0, len(scored))
		for _, s := range scored {
			filtered = append(filtered, s.Listing)
		}
	}

	total := len(filtered)

	// Áp dụng phân trang
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Listing{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	listingResponses := make([]dto.ListingResponse, 0, len(filtered))
	for _, listing := range filtered {
		listingResponses = append(listingResponses, convertToListingResponse(listing))
	}

	response.SuccessWithPagination(c, listingResponses, page, limit, total)
}

// GetListingDetail trả về chi tiết một listing theo ID
func GetListingDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var listing models.Listing
	if err := config.DB.Preload("Statuses").First(&listing, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToListingResponse(listing))
}

// CreateListing tạo listing mới cho host đang đăng nhập
func CreateListing(c *gin.Context) {
	var request dto.CreateListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	userID := c.GetUint("userID")

	listing := models.Listing{
		UserID:      userID,
		Title:       request.Title,
		Description: request.Description,
		Price:       request.Price,
		ImageURL:    request.ImageURL,
		Location:    request.Location,
		City:        request.City,
		Country:     request.Country,
		Bedrooms:    request.Bedrooms,
		Bathrooms:   request.Bathrooms,
		Amenities:   pq.StringArray(request.Amenities),
	}

	if err := validator.ValidateListing(&listing); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&listing).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateListingsCache()
	response.Success(c, convertToListingResponse(listing))
}

// UpdateListing cập nhật listing; chỉ host sở hữu mới được sửa
func UpdateListing(c *gin.Context) {
	var request dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	userID := c.GetUint("userID")
	if listing.UserID != userID {
		response.Forbidden(c)
		return
	}

	if request.Title != "" {
		listing.Title = request.Title
	}
	if request.Description != "" {
		listing.Description = request.Description
	}
	if request.Price != nil {
		listing.Price = *request.Price
	}
	if request.ImageURL != "" {
		listing.ImageURL = request.ImageURL
	}
	if request.Location != "" {
		listing.Location = request.Location
	}
	if request.Bedrooms != nil {
		listing.Bedrooms = *request.Bedrooms
	}
	if request.Bathrooms != nil {
		listing.Bathrooms = *request.Bathrooms
	}
	if request.Amenities != nil {
		listing.Amenities = pq.StringArray(request.Amenities)
	}

	if err := validator.ValidateListing(&listing); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&listing).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateListingsCache()
	response.Success(c, convertToListingResponse(listing))
}

// DeleteListing xóa listing; chỉ host sở hữu mới được xóa
func DeleteListing(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var listing models.Listing
	if err := config.DB.First(&listing, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	userID := c.GetUint("userID")
	if listing.UserID != userID {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&listing).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateListingsCache()
	response.Success(c, nil)
}

func invalidateListingsCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, listingsCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache listing: %v", err)
	}
}
