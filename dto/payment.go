package dto

// PaymentFields là dữ liệu thô của form thanh toán. Giá trị đã qua
// formatter (có khoảng trắng, dấu "/") vẫn hợp lệ với validator.
type PaymentFields struct {
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// SubmitPaymentRequest là DTO cho request thanh toán một booking
type SubmitPaymentRequest struct {
	BookingID uint          `json:"bookingId" binding:"required"`
	Fields    PaymentFields `json:"fields" binding:"required"`
}

// PaymentResponse là DTO cho response của một lần thanh toán
type PaymentResponse struct {
	AttemptID  uint              `json:"attemptId"`
	BookingID  uint              `json:"bookingId"`
	State      int               `json:"state"`
	Amount     float64           `json:"amount"`
	CardLast4  string            `json:"cardLast4,omitempty"`
	FailReason string            `json:"failReason,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"` // Lỗi theo từng field khi validate fail
}
