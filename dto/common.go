package dto

// ActorResponse là DTO cho thông tin người đặt (user hoặc khách vãng lai)
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}
