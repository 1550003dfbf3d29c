package responder

import (
	"strconv"
	"time"
)

// Reply layouts. The day of month is rendered separately with its ordinal suffix.
const (
	monthLayout = "Jan"
	yearLayout  = "2006"
	timeLayout  = "3:04:05 pm"
)

// FormatDate renders t as "Jan 2nd 2024".
func FormatDate(t time.Time) string {
	return t.Format(monthLayout) + " " + Ordinal(t.Day()) + " " + t.Format(yearLayout)
}

// FormatTime renders t as "3:04:05 pm".
func FormatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// Ordinal returns n followed by its English ordinal suffix (1st, 2nd, 3rd, 4th, 11th, 22nd...).
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
