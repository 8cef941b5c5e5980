package validator

import (
	"testing"

	"staybnb/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBookingDates(t *testing.T) {
	t.Run("khoảng ngày hợp lệ", func(t *testing.T) {
		require.NoError(t, ValidateBookingDates("2026-03-01", "2026-03-04"))
	})

	t.Run("sai định dạng", func(t *testing.T) {
		assert.Error(t, ValidateBookingDates("01/03/2026", "2026-03-04"))
		assert.Error(t, ValidateBookingDates("2026-03-01", "next week"))
	})

	t.Run("check-out không sau check-in", func(t *testing.T) {
		assert.Error(t, ValidateBookingDates("2026-03-04", "2026-03-04"))
		assert.Error(t, ValidateBookingDates("2026-03-04", "2026-03-01"))
	})
}

func TestValidateListing(t *testing.T) {
	valid := models.Listing{Title: "Cozy Cabin", Price: 120, Location: "Aspen, CO", Rating: 4.8}
	require.NoError(t, ValidateListing(&valid))

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, ValidateListing(&missingTitle))

	negativePrice := valid
	negativePrice.Price = -1
	assert.Error(t, ValidateListing(&negativePrice))

	badRating := valid
	badRating.Rating = 5.5
	assert.Error(t, ValidateListing(&badRating))
}
