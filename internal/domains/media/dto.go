package media

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// MEDIA DTOs
// ========================================

// CreateMediaRequest là draft từ view layer: id, timestamp, likes và
// has_liked do store tự gán, không nhận từ client.
type CreateMediaRequest struct {
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	URL          string   `json:"url"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Type         Type     `json:"type"`
	Tags         []string `json:"tags"`
}

func (r CreateMediaRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Description,
			validation.Length(0, 2000),
		),
		validation.Field(&r.URL,
			validation.Required.Error("url is required"),
			is.RequestURL.Error("url must be a valid URL"),
		),
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(TypeImage, TypeVideo).Error("type must be image or video"),
		),
		validation.Field(&r.Tags,
			validation.Length(0, 20),
			validation.Each(validation.Length(1, 50)),
		),
	)
}

// ========================================
// COMMENT DTOs
// ========================================

// AddCommentRequest cố ý không validate blank-vs-empty ở binding layer:
// cả hai đi qua cùng một đường ValidationFailed của store.
type AddCommentRequest struct {
	Content string `json:"content"`
}

func (r AddCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 1000),
		),
	)
}
