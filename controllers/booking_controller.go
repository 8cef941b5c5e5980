package controllers

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"staybnb/builders"
	"staybnb/commands"
	"staybnb/config"
	"staybnb/constants"
	"staybnb/dto"
	"staybnb/models"
	"staybnb/response"
	"staybnb/services"
	"staybnb/validator"

	"github.com/gin-gonic/gin"
)

func convertToBookingListingResponse(listing models.Listing) dto.BookingListingResponse {
	return dto.BookingListingResponse{
		ID:       listing.ID,
		Title:    listing.Title,
		Location: listing.Location,
		Price:    listing.Price,
		ImageURL: listing.ImageURL,
	}
}

func convertToBookingResponse(booking models.Booking) dto.BookingResponse {
	var actor dto.ActorResponse
	if booking.UserID != nil && booking.User != nil {
		actor = dto.ActorResponse{Name: booking.User.Name, Email: booking.User.Email, PhoneNumber: booking.User.PhoneNumber}
	} else {
		actor = dto.ActorResponse{Name: booking.GuestName, Email: booking.GuestEmail, PhoneNumber: booking.GuestPhone}
	}

	return dto.BookingResponse{
		ID:           booking.ID,
		User:         actor,
		Listing:      convertToBookingListingResponse(booking.Listing),
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		Guests:       booking.Guests,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
		NightlyRate:  booking.NightlyRate,
		Nights:       booking.Nights,
		TotalPrice:   booking.TotalPrice,
	}
}

// CreateBooking tạo booking mới: kiểm tra ngày, kiểm tra listing còn
// trống, tính tổng giá rồi giữ khoảng ngày.
func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var userId *uint
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, _, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			return
		}
		userId = &userID
	} else if request.UserID != 0 {
		var userInfo models.User
		if err := config.DB.First(&userInfo, request.UserID).Error; err != nil {
			response.NotFound(c)
			return
		}
		userId = &userInfo.ID
	}

	if err := validator.ValidateBookingDates(request.CheckInDate, request.CheckOutDate); err != nil {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}

	checkInDate, _ := time.Parse("2006-01-02", request.CheckInDate)
	checkOutDate, _ := time.Parse("2006-01-02", request.CheckOutDate)

	if err := services.ValidateStayRange(checkInDate, checkOutDate, time.Now()); err != nil {
		response.BadRequest(c, "Ngày nhận phòng không được nhỏ hơn ngày hiện tại")
		return
	}

	// Listing phải tồn tại: không dựa vào payload phía client
	var listing models.Listing
	if err := config.DB.First(&listing, request.ListingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	bookingService := services.NewBookingService(config.DB)
	overlapping, err := bookingService.HasOverlappingHold(listing.ID, checkInDate, checkOutDate)
	if err != nil {
		response.ServerError(c)
		return
	}
	if overlapping {
		response.BadRequest(c, "Chỗ ở đã được đặt hoặc không khả dụng trong khoảng thời gian này")
		return
	}

	nights := services.CountNights(checkInDate, checkOutDate)
	totalPrice := services.ComputeTotal(checkInDate, checkOutDate, listing.Price)

	booking := builders.NewBookingBuilder().
		WithUser(userId).
		WithListing(listing.ID).
		WithStay(request.CheckInDate, request.CheckOutDate, request.Guests).
		WithGuestInfo(request.GuestName, request.GuestPhone, request.GuestEmail).
		WithStatus(constants.BookingStatusPending).
		WithPricing(listing.Price, nights, totalPrice).
		Build()

	if err := commands.NewCreateBookingCommand(booking, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	if err := bookingService.CreateHold(listing.ID, checkInDate, checkOutDate); err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("User").Preload("Listing").First(booking, booking.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingsCache(userId)
	response.Success(c, convertToBookingResponse(*booking))
}

// GetBookings trả về danh sách booking của user hiện tại, có filter
func GetBookings(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	currentUserID, currentUserRole, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	cacheKey := fmt.Sprintf("bookings:all:user:%d", currentUserID)
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Không kết nối được Redis, đọc thẳng từ DB: %v", err)
	}

	var allBookings []models.Booking
	if rdb == nil || services.GetFromRedis(config.Ctx, rdb, cacheKey, &allBookings) != nil || len(allBookings) == 0 {
		baseTx := config.DB.Model(&models.Booking{}).
			Preload("Listing").
			Preload("User")

		// Host (role 1) thấy booking trên các listing của mình,
		// khách chỉ thấy booking mình đặt.
		if currentUserRole == 1 {
			baseTx = baseTx.Where("bookings.listing_id IN (?)",
				config.DB.Model(&models.Listing{}).Select("id").Where("user_id = ?", currentUserID))
		} else if currentUserRole != 2 {
			baseTx = baseTx.Where("bookings.user_id = ?", currentUserID)
		}

		if err := baseTx.Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}

		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKey, allBookings, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
			}
		}
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

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

	filtered := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if statusFilter != "" {
			if parsedStatus, err := strconv.Atoi(statusFilter); err == nil && booking.Status != parsedStatus {
				continue
			}
		}
		if fromDateStr != "" {
			fromDate, err := time.Parse("2006-01-02", fromDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng fromDate")
				return
			}
			if booking.CreatedAt.Before(fromDate) {
				continue
			}
		}
		if toDateStr != "" {
			toDate, err := time.Parse("2006-01-02", toDateStr)
			if err != nil {
				response.BadRequest(c, "Sai định dạng toDate")
				return
			}
			if booking.CreatedAt.After(toDate) {
				continue
			}
		}
		filtered = append(filtered, booking)
	}

	total := len(filtered)

	// Xếp theo update mới nhất
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Booking{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filtered))
	for _, booking := range filtered {
		bookingResponses = append(bookingResponses, convertToBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

// GetBookingDetail trả về chi tiết một booking
func GetBookingDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("User").Preload("Listing").First(&booking, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// ChangeBookingStatus cập nhật trạng thái booking qua state machine
func ChangeBookingStatus(c *gin.Context) {
	var request dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	bookingService := services.NewBookingService(config.DB)

	// Hủy đi qua service để khoảng ngày đang giữ được nhả ra cùng lúc
	var err error
	switch request.Status {
	case constants.BookingStatusConfirmed:
		err = bookingService.Confirm(&booking)
	case constants.BookingStatusCompleted:
		err = bookingService.Complete(&booking)
	case constants.BookingStatusCancelled:
		err = bookingService.Cancel(&booking)
	default:
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invalidateBookingsCache(booking.UserID)
	response.Success(c, convertToBookingResponse(booking))
}

func invalidateBookingsCache(userID *uint) {
	if userID == nil {
		return
	}
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	cacheKey := fmt.Sprintf("bookings:all:user:%d", *userID)
	if err := services.DeleteFromRedis(config.Ctx, rdb, cacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache booking: %v", err)
	}
}
