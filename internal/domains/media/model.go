package media

import (
	"strings"
	"time"

	"photoshare-backend/internal/domains/identity"
)

// Type phân loại media item
type Type string

const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
)

// IsValid kiểm tra type hợp lệ
func (t Type) IsValid() bool {
	return t == TypeImage || t == TypeVideo
}

// Media là một post trong feed: photo hoặc video kèm metadata.
//
// Likes không bao giờ âm. HasLiked là overlay field per-session: không
// persist server-side, được merge vào record lúc đọc.
type Media struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Type         Type      `json:"type"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	Tags         []string  `json:"tags,omitempty"`
	Likes        int       `json:"likes"`
	HasLiked     bool      `json:"has_liked"`
}

// Clone returns a deep copy so store state never leaks to callers.
func (m *Media) Clone() *Media {
	cp := *m
	if m.Description != nil {
		d := *m.Description
		cp.Description = &d
	}
	if m.ThumbnailURL != nil {
		t := *m.ThumbnailURL
		cp.ThumbnailURL = &t
	}
	if len(m.Tags) > 0 {
		cp.Tags = append([]string(nil), m.Tags...)
	}
	return &cp
}

// Comment là text reply gắn với đúng một Media.
// User là derived view field: resolve qua Identity Directory lúc đọc,
// không bao giờ là source of truth.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	MediaID   string    `json:"media_id"`
	CreatedAt time.Time `json:"created_at"`

	User *identity.User `json:"user,omitempty"`
}

// NormalizeTags case-folds, trims and dedupes while keeping order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}

	if len(normalized) == 0 {
		return nil
	}
	return normalized
}
