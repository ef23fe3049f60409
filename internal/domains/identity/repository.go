package identity

import "context"

// Directory là allow-list chính thức của platform: chỉ những identity
// trong directory mới được phép sign in. Read-mostly.
//
// Contract: mỗi email (case-insensitive) map tới tối đa một identity.
// Unknown id và malformed id đều trả ErrUserNotFound - không special-case
// theo id shape.
type Directory interface {
	// FindByID looks up a member by exact id.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail looks up a member by case-insensitive exact email match.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List returns every member of the directory.
	List(ctx context.Context) ([]User, error)

	// UpdateProfile persists the mutable profile fields of an existing member.
	// ID and Email are never changed by this call.
	UpdateProfile(ctx context.Context, user *User) error
}
