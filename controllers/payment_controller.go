package controllers

import (
	"errors"
	"strconv"

	"staybnb/config"
	"staybnb/constants"
	"staybnb/dto"
	"staybnb/models"
	"staybnb/response"
	"staybnb/services"

	"github.com/gin-gonic/gin"
)

var bookingFacade *services.BookingFacade

// InitPaymentController nhận facade từ tầng khởi tạo
func InitPaymentController(facade *services.BookingFacade) {
	bookingFacade = facade
}

func convertToPaymentResponse(attempt *models.PaymentAttempt) dto.PaymentResponse {
	return dto.PaymentResponse{
		AttemptID:  attempt.ID,
		BookingID:  attempt.BookingID,
		State:      attempt.State,
		Amount:     attempt.Amount,
		CardLast4:  attempt.CardLast4,
		FailReason: attempt.FailReason,
	}
}

// paymentValidationResponse gắn lỗi theo field vào response của attempt
// khi form không hợp lệ; attempt giữ nguyên trạng thái.
func paymentValidationResponse(attempt *models.PaymentAttempt, fieldErrors services.ValidationResult) dto.PaymentResponse {
	result := convertToPaymentResponse(attempt)
	result.Errors = fieldErrors
	return result
}

// currentAttempt tìm attempt đang mở của booking, không có thì tạo mới.
// Attempt đã Succeeded hoặc Cancelled là trạng thái kết thúc, mỗi lần
// thanh toán lại bắt đầu bằng một attempt mới.
func currentAttempt(booking *models.Booking) (*models.PaymentAttempt, error) {
	var attempt models.PaymentAttempt
	err := config.DB.
		Where("booking_id = ? AND state IN ?", booking.ID,
			[]int{constants.PaymentStateEditing, constants.PaymentStateProcessing, constants.PaymentStateFailed}).
		Order("id DESC").
		First(&attempt).Error
	if err == nil {
		return &attempt, nil
	}

	attempt = models.PaymentAttempt{
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		State:     constants.PaymentStateEditing,
	}
	if err := config.DB.Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// SubmitPayment nhận form thanh toán cho một booking và chạy quy trình
// Editing -> Processing -> Succeeded/Failed
func SubmitPayment(c *gin.Context) {
	var request dto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, request.BookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if booking.Status == constants.BookingStatusCancelled {
		response.BadRequest(c, "Booking đã bị hủy")
		return
	}
	if booking.Status != constants.BookingStatusPending {
		response.BadRequest(c, "Booking đã được thanh toán")
		return
	}

	attempt, err := currentAttempt(&booking)
	if err != nil {
		response.ServerError(c)
		return
	}

	fieldErrors, err := bookingFacade.Payments().Submit(c.Request.Context(), attempt, request.Fields)
	if len(fieldErrors) > 0 {
		response.ValidationError(c, paymentValidationResponse(attempt, fieldErrors))
		return
	}
	if err != nil {
		// Đang Processing thì lần gửi thứ hai bị chặn
		if errors.Is(err, models.ErrPaymentInProgress) {
			response.Conflict(c, "Đang xử lý thanh toán, vui lòng chờ")
			return
		}
		if errors.Is(err, models.ErrPaymentFinished) {
			response.BadRequest(c, "Lần thanh toán này đã kết thúc")
			return
		}
		response.ServerError(c)
		return
	}

	// State sau khi chạy có thể là Succeeded, Failed (bị từ chối) hoặc
	// Cancelled (người dùng bỏ dở); client dựa vào state và failReason.
	response.Success(c, convertToPaymentResponse(attempt))
}

// RetryPayment đưa attempt bị từ chối về trạng thái Editing để gửi lại
func RetryPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var attempt models.PaymentAttempt
	if err := config.DB.First(&attempt, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := bookingFacade.Payments().Retry(&attempt); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, convertToPaymentResponse(&attempt))
}

// CancelPayment hủy attempt đang dang dở và nhả khoảng ngày đang giữ
func CancelPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var attempt models.PaymentAttempt
	if err := config.DB.First(&attempt, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := bookingFacade.Payments().Cancel(&attempt); err != nil {
		if errors.Is(err, models.ErrPaymentFinished) {
			response.BadRequest(c, "Lần thanh toán này đã kết thúc")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToPaymentResponse(&attempt))
}

// GetPaymentAttempts trả về các lần thanh toán của một booking
func GetPaymentAttempts(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var attempts []models.PaymentAttempt
	if err := config.DB.Where("booking_id = ?", bookingID).Order("id DESC").Find(&attempts).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.PaymentResponse, 0, len(attempts))
	for i := range attempts {
		results = append(results, convertToPaymentResponse(&attempts[i]))
	}
	response.Success(c, results)
}
