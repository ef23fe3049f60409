package utils

import (
	"fmt"
	"time"
)

// FormatDate renders a timestamp the way the feed displays it,
// e.g. "November 5, 2023 02:32 PM".
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006 03:04 PM")
}

// FormatDateShort renders a compact relative form for cards:
// Today, Yesterday, "N days ago", "N weeks ago", then "Nov 5".
func FormatDateShort(t time.Time, now time.Time) string {
	diffDays := int(now.Sub(t).Hours() / 24)
	if diffDays < 0 {
		diffDays = -diffDays
	}

	switch {
	case diffDays == 0:
		return "Today"
	case diffDays == 1:
		return "Yesterday"
	case diffDays < 7:
		return fmt.Sprintf("%d days ago", diffDays)
	case diffDays < 30:
		return fmt.Sprintf("%d weeks ago", diffDays/7)
	default:
		return t.Format("Jan 2")
	}
}

// FormatBirthdate renders a birthdate stored as "2006-01-02".
// Unparseable or empty input renders as empty string.
func FormatBirthdate(dateString string) string {
	if dateString == "" {
		return ""
	}
	date, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		return ""
	}
	return date.Format("January 2, 2006")
}
