package formatter

import (
	"strconv"
	"strings"
	"time"
)

// FormatNumber groups the digits of n in thousands.
// Example: 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	digits := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var sb strings.Builder
	sb.WriteString(sign)
	sb.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// Timestamp renders t in loc as day-month-year hour:minute.
func Timestamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02-01-2006 15:04")
}

// Truncate keeps the first limit runes of s and appends "..." when it cut.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
