package services

import (
	"testing"
	"time"

	"staybnb/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "một đêm",
			checkIn:  date(2026, 3, 1),
			checkOut: date(2026, 3, 2),
			want:     1,
		},
		{
			name:     "ba đêm",
			checkIn:  date(2026, 3, 1),
			checkOut: date(2026, 3, 4),
			want:     3,
		},
		{
			name:     "chênh lệch lẻ làm tròn lên",
			checkIn:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC),
			want:     3,
		},
		{
			name:     "qua tháng",
			checkIn:  date(2026, 1, 30),
			checkOut: date(2026, 2, 2),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountNights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeTotal(t *testing.T) {
	// 3 đêm x $120
	total := ComputeTotal(date(2026, 3, 1), date(2026, 3, 4), 120)
	assert.Equal(t, 360.0, total)

	// Chênh lệch 2.5 ngày tính thành 3 đêm trọn
	total = ComputeTotal(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC),
		100,
	)
	assert.Equal(t, 300.0, total)
}

func TestValidateStayRange(t *testing.T) {
	now := date(2026, 3, 1)

	t.Run("khoảng ngày hợp lệ", func(t *testing.T) {
		err := ValidateStayRange(date(2026, 3, 5), date(2026, 3, 8), now)
		require.NoError(t, err)
	})

	t.Run("check-in hôm nay vẫn hợp lệ", func(t *testing.T) {
		err := ValidateStayRange(date(2026, 3, 1), date(2026, 3, 2), now)
		require.NoError(t, err)
	})

	t.Run("check-out trùng check-in", func(t *testing.T) {
		err := ValidateStayRange(date(2026, 3, 5), date(2026, 3, 5), now)
		assert.ErrorIs(t, err, errors.ErrInvalidDateRange)
	})

	t.Run("check-out trước check-in", func(t *testing.T) {
		err := ValidateStayRange(date(2026, 3, 8), date(2026, 3, 5), now)
		assert.ErrorIs(t, err, errors.ErrInvalidDateRange)
	})

	t.Run("check-in trong quá khứ", func(t *testing.T) {
		err := ValidateStayRange(date(2026, 2, 25), date(2026, 3, 5), now)
		assert.ErrorIs(t, err, errors.ErrCheckInPast)
	})
}
