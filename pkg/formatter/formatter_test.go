package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{
		0:          "0",
		999:        "999",
		1000:       "1,000",
		123456:     "123,456",
		1234567:    "1,234,567",
		-1234:      "-1,234",
		-999:       "-999",
		1000000000: "1,000,000,000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatNumber(in), "input %d", in)
	}
}

func TestTimestamp(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	captured := time.Date(2024, time.March, 9, 22, 5, 0, 0, time.UTC)
	assert.Equal(t, "10-03-2024 05:05", Timestamp(captured, jakarta))
	assert.Equal(t, "09-03-2024 22:05", Timestamp(captured, time.UTC))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Summer", Truncate("Summer", 15))
	assert.Equal(t, "exactly fifteen", Truncate("exactly fifteen", 15))
	assert.Equal(t, "Holiday in Bali...", Truncate("Holiday in Bali 2023", 15))
	assert.Equal(t, "ééééé...", Truncate("éééééé", 5))
}
