package services

import (
	"fmt"
	"net/smtp"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword so sánh mật khẩu với hash đã lưu
func CheckPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// SendBookingEmail gửi email xác nhận booking sau khi thanh toán thành công
func SendBookingEmail(email string, bookingID uint, totalPrice float64, checkInDate, checkOutDate string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := "smtp.gmail.com"
	port := "587"

	to := []string{email}
	subject := "Xác nhận đặt chỗ Staybnb"
	body := fmt.Sprintf(
		"Đặt chỗ #%d của bạn đã được xác nhận.\n"+
			"Nhận phòng: %s\n"+
			"Trả phòng: %s\n"+
			"Tổng thanh toán: $%.2f\n\n"+
			"Cảm ơn bạn đã sử dụng Staybnb.",
		bookingID, checkInDate, checkOutDate, totalPrice,
	)

	msg := []byte("To: " + email + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
