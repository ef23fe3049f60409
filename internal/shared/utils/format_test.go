package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateShort(t *testing.T) {
	now := time.Date(2023, 12, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"same day", time.Date(2023, 12, 10, 9, 0, 0, 0, time.UTC), "Today"},
		{"previous day", time.Date(2023, 12, 9, 9, 0, 0, 0, time.UTC), "Yesterday"},
		{"few days ago", time.Date(2023, 12, 7, 9, 0, 0, 0, time.UTC), "3 days ago"},
		{"weeks ago", time.Date(2023, 11, 24, 9, 0, 0, 0, time.UTC), "2 weeks ago"},
		{"older falls back to date", time.Date(2023, 10, 15, 9, 0, 0, 0, time.UTC), "Oct 15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateShort(tt.at, now))
		})
	}
}

func TestFormatBirthdate(t *testing.T) {
	assert.Equal(t, "March 15, 1995", FormatBirthdate("1995-03-15"))
	assert.Equal(t, "", FormatBirthdate("not-a-date"))
	assert.Equal(t, "", FormatBirthdate(""))
}

func TestMediaTypeFromContentType(t *testing.T) {
	got, ok := MediaTypeFromContentType("image/jpeg")
	assert.True(t, ok)
	assert.Equal(t, "image", got)

	got, ok = MediaTypeFromContentType("video/mp4")
	assert.True(t, ok)
	assert.Equal(t, "video", got)

	_, ok = MediaTypeFromContentType("application/pdf")
	assert.False(t, ok)
}
