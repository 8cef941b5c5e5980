package controllers

import (
	"testing"

	"staybnb/constants"
	"staybnb/dto"
	"staybnb/models"
	"staybnb/services"

	"github.com/stretchr/testify/assert"
)

func TestPaymentValidationResponseCarriesFieldErrors(t *testing.T) {
	attempt := &models.PaymentAttempt{
		ID:        5,
		BookingID: 9,
		Amount:    360,
		State:     constants.PaymentStateEditing,
	}

	fieldErrors := services.ValidatePaymentFields(dto.PaymentFields{
		CardNumber: "123",
		CardName:   "",
		ExpiryDate: "13/99",
		CVV:        "12",
	})

	result := paymentValidationResponse(attempt, fieldErrors)

	assert.Equal(t, uint(5), result.AttemptID)
	assert.Equal(t, uint(9), result.BookingID)
	assert.Equal(t, constants.PaymentStateEditing, result.State)
	assert.Len(t, result.Errors, 4)
	assert.Equal(t, "Valid card number required", result.Errors["cardNumber"])
	assert.Equal(t, "Name on card required", result.Errors["cardName"])
	assert.Equal(t, "MM/YY format required", result.Errors["expiryDate"])
	assert.Equal(t, "3 or 4 digit code required", result.Errors["cvv"])
}
