package identity

import "strings"

// User là domain entity cho một thành viên trong allow-list
// ID và Email là immutable sau khi tạo, các field còn lại owner có thể sửa
type User struct {
	// Identity
	ID    string `json:"id"`
	Email string `json:"email"`

	// Profile
	Name      string  `json:"name"`
	Birthdate *string `json:"birthdate,omitempty"` // "2006-01-02"
	AvatarURL *string `json:"profile_picture,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// Clone returns a deep copy so callers can never mutate store state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Birthdate = clonePtr(u.Birthdate)
	cp.AvatarURL = clonePtr(u.AvatarURL)
	cp.Bio = clonePtr(u.Bio)
	return &cp
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave unchanged".
// ID and Email are deliberately absent: they never change after creation.
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty"`
	Birthdate *string `json:"birthdate,omitempty"`
	AvatarURL *string `json:"profile_picture,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// Apply merges the update into a copy of the user and returns it.
func (u *User) Apply(update ProfileUpdate) *User {
	merged := u.Clone()
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Birthdate != nil {
		merged.Birthdate = clonePtr(update.Birthdate)
	}
	if update.AvatarURL != nil {
		merged.AvatarURL = clonePtr(update.AvatarURL)
	}
	if update.Bio != nil {
		merged.Bio = clonePtr(update.Bio)
	}
	return merged
}

// SessionState mô tả lifecycle của session store
type SessionState string

const (
	StateAnonymous      SessionState = "anonymous"
	StateAuthenticating SessionState = "authenticating"
	StateAuthenticated  SessionState = "authenticated"
)

// NormalizeEmail is the canonical lookup key: trimmed, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
