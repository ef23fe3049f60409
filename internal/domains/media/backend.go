package media

import "context"

// Backend là ContentBackend capability: nguồn dữ liệu phía sau content
// store. Hai variant: in-memory fixture (demo mode) và remote Postgres
// service. Store chỉ phụ thuộc interface này, không bao giờ branch theo
// shape của id.
//
// Mọi lỗi từ remote variant surface về store như một generic upstream
// failure: single attempt, fail-fast, không retry.
type Backend interface {
	// Load returns the full collection and its comments, used once when
	// the store initializes.
	Load(ctx context.Context) ([]Media, map[string][]Comment, error)

	// InsertMedia persists a new media item.
	InsertMedia(ctx context.Context, item Media) error

	// UpdateMedia persists mutable fields of an existing item (like count).
	UpdateMedia(ctx context.Context, item Media) error

	// RemoveMedia deletes the item and, upstream, its comments.
	RemoveMedia(ctx context.Context, id string) error

	// InsertComment persists a new comment.
	InsertComment(ctx context.Context, comment Comment) error

	// RemoveComment deletes one comment.
	RemoveComment(ctx context.Context, mediaID, commentID string) error
}
