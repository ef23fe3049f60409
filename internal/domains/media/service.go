package media

import "context"

// Service là content store: own toàn bộ media và comments của session,
// cùng các operation mutate chúng.
//
// Mọi mutation yêu cầu active session - caller anonymous nhận
// identity.ErrNotAuthenticated và state giữ nguyên. Search và các read
// không cần auth. Không có failed operation nào để lại partial mutation.
type Service interface {
	// Init loads the initial collection from the backend. Run once at startup.
	Init(ctx context.Context) error

	// List returns the full collection, newest first.
	List(ctx context.Context) ([]Media, error)

	// Get returns one media item by id.
	Get(ctx context.Context, id string) (*Media, error)

	// Create assigns id, timestamp, zero likes and the active identity as
	// author, then inserts the item at the front of the collection.
	Create(ctx context.Context, req CreateMediaRequest) (*Media, error)

	// Delete removes the item and cascades to all its comments atomically.
	Delete(ctx context.Context, id string) error

	// ToggleLike flips the per-session liked flag and moves the like count
	// by exactly one in the opposite direction. Applying it twice restores
	// the original (likes, has_liked) pair.
	ToggleLike(ctx context.Context, id string) (*Media, error)

	// Search matches the query case-insensitively against title,
	// description or any tag. A blank query returns the full collection.
	Search(ctx context.Context, query string) ([]Media, error)

	// ListByUser returns every item authored by the given user.
	ListByUser(ctx context.Context, userID string) ([]Media, error)

	// Comments returns a media item's comments oldest first, each enriched
	// with its author resolved through the Identity Directory.
	Comments(ctx context.Context, mediaID string) ([]Comment, error)

	// AddComment appends a comment stamped with the active identity and the
	// current time. Whitespace-only content is rejected without mutation.
	AddComment(ctx context.Context, mediaID, content string) (*Comment, error)

	// DeleteComment removes exactly one comment from the item's list.
	DeleteComment(ctx context.Context, mediaID, commentID string) error
}
