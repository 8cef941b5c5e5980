package services

import (
	"testing"

	"staybnb/dto"

	"github.com/stretchr/testify/assert"
)

func validFields() dto.PaymentFields {
	return dto.PaymentFields{
		CardNumber: "4111111111111111",
		CardName:   "Nguyen Van A",
		ExpiryDate: "12/25",
		CVV:        "123",
	}
}

func TestValidatePaymentFields(t *testing.T) {
	t.Run("form hợp lệ trả về map rỗng", func(t *testing.T) {
		result := ValidatePaymentFields(validFields())
		assert.Empty(t, result)
	})

	t.Run("số thẻ có khoảng trắng vẫn hợp lệ", func(t *testing.T) {
		fields := validFields()
		fields.CardNumber = "4111 1111 1111 1111"
		assert.Empty(t, ValidatePaymentFields(fields))
	})

	t.Run("ngày hết hạn không có dấu gạch vẫn hợp lệ", func(t *testing.T) {
		fields := validFields()
		fields.ExpiryDate = "1225"
		assert.Empty(t, ValidatePaymentFields(fields))
	})

	t.Run("cvv 4 số hợp lệ", func(t *testing.T) {
		fields := validFields()
		fields.CVV = "1234"
		assert.Empty(t, ValidatePaymentFields(fields))
	})

	t.Run("mọi field sai đều được báo cùng lúc", func(t *testing.T) {
		result := ValidatePaymentFields(dto.PaymentFields{
			CardNumber: "123",
			CardName:   "   ",
			ExpiryDate: "13/99",
			CVV:        "12",
		})

		assert.Len(t, result, 4)
		assert.Equal(t, "Valid card number required", result["cardNumber"])
		assert.Equal(t, "Name on card required", result["cardName"])
		assert.Equal(t, "MM/YY format required", result["expiryDate"])
		assert.Equal(t, "3 or 4 digit code required", result["cvv"])
	})

	t.Run("tháng 00 không hợp lệ", func(t *testing.T) {
		fields := validFields()
		fields.ExpiryDate = "00/25"
		result := ValidatePaymentFields(fields)
		assert.Contains(t, result, "expiryDate")
	})

	t.Run("số thẻ 15 số không hợp lệ", func(t *testing.T) {
		fields := validFields()
		fields.CardNumber = "411111111111111"
		result := ValidatePaymentFields(fields)
		assert.Contains(t, result, "cardNumber")
	})
}

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"16 số liền nhau", "4111111111111111", "4111 1111 1111 1111"},
		{"lẫn ký tự khác", "4111-1111-1111-1111", "4111 1111 1111 1111"},
		{"đang gõ dở", "41111", "4111 1"},
		{"chuỗi ngắn", "41", "41"},
		{"quá 16 số bị cắt", "41111111111111112222", "4111 1111 1111 1111"},
		{"chuỗi rỗng", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCardNumber(tt.input)
			assert.Equal(t, tt.want, got)
			// Idempotent: format lại output ra chính nó
			assert.Equal(t, got, FormatCardNumber(got))
		})
	}
}

func TestFormatExpiryDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"4 số liền nhau", "1225", "12/25"},
		{"đã có dấu gạch", "12/25", "12/25"},
		{"một số", "1", "1"},
		{"hai số chưa chèn gạch", "12", "12"},
		{"ba số", "123", "12/3"},
		{"quá 4 số bị cắt", "122567", "12/25"},
		{"chuỗi rỗng", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatExpiryDate(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, FormatExpiryDate(got))
		})
	}
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "1111", MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "4321", MaskCardNumber("8765432187654321"))
	assert.Equal(t, "12", MaskCardNumber("12"))
}
