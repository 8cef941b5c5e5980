package services

import (
	"regexp"
	"strings"

	"staybnb/dto"
)

// ValidationResult là map lỗi theo tên field; map rỗng nghĩa là form
// hợp lệ và có thể submit.
type ValidationResult map[string]string

var (
	cardNumberRegex = regexp.MustCompile(`^\d{16}$`)
	expiryRegex     = regexp.MustCompile(`^(0[1-9]|1[0-2])/?([0-9]{2})$`)
	cvvRegex        = regexp.MustCompile(`^\d{3,4}$`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s`)
)

// ValidatePaymentFields kiểm tra cả bốn field độc lập với nhau, không
// dừng ở lỗi đầu tiên, để UI hiển thị được mọi field sai cùng lúc.
func ValidatePaymentFields(fields dto.PaymentFields) ValidationResult {
	result := ValidationResult{}

	cardDigits := whitespaceRegex.ReplaceAllString(fields.CardNumber, "")
	if !cardNumberRegex.MatchString(cardDigits) {
		result["cardNumber"] = "Valid card number required"
	}

	if strings.TrimSpace(fields.CardName) == "" {
		result["cardName"] = "Name on card required"
	}

	if !expiryRegex.MatchString(fields.ExpiryDate) {
		result["expiryDate"] = "MM/YY format required"
	}

	if !cvvRegex.MatchString(fields.CVV) {
		result["cvv"] = "3 or 4 digit code required"
	}

	return result
}

// FormatCardNumber chuẩn hóa số thẻ hiển thị: chỉ giữ chữ số, chèn một
// khoảng trắng sau mỗi cụm 4 số, cắt tối đa 19 ký tự (16 số + 3 khoảng
// trắng). Idempotent: format lại output ra chính nó.
func FormatCardNumber(raw string) string {
	digits := nonDigitRegex.ReplaceAllString(raw, "")

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}

	formatted := b.String()
	if len(formatted) > 19 {
		formatted = formatted[:19]
	}
	return strings.TrimRight(formatted, " ")
}

// FormatExpiryDate chuẩn hóa ngày hết hạn hiển thị: chỉ giữ chữ số, chèn
// "/" ngay sau 2 số đầu khi đã có số thứ 3, cắt tối đa 5 ký tự (MM/YY).
// Idempotent như FormatCardNumber.
func FormatExpiryDate(raw string) string {
	digits := nonDigitRegex.ReplaceAllString(raw, "")

	if len(digits) < 3 {
		return digits
	}

	formatted := digits[:2] + "/" + digits[2:]
	if len(formatted) > 5 {
		formatted = formatted[:5]
	}
	return formatted
}

// MaskCardNumber trả về 4 số cuối để lưu lại, không bao giờ lưu số đầy đủ
func MaskCardNumber(raw string) string {
	digits := nonDigitRegex.ReplaceAllString(raw, "")
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
