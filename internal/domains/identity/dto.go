package identity

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// AUTH DTOs
// ========================================

// LoginRequest is the only credential this closed platform asks for.
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
	)
}

// LoginResponse carries the signed-in identity plus the welcome message
// the view layer shows as a toast.
type LoginResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// SessionResponse exposes the observable session state, including the
// transitional "authenticating" phase.
type SessionResponse struct {
	State SessionState `json:"state"`
	User  *User        `json:"user,omitempty"`
}

// ========================================
// PROFILE DTOs
// ========================================

// UpdateProfileRequest mirrors ProfileUpdate at the HTTP boundary.
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Birthdate *string `json:"birthdate"`
	AvatarURL *string `json:"profile_picture"`
	Bio       *string `json:"bio"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be blank"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Birthdate,
			validation.Date("2006-01-02").Error("birthdate must be YYYY-MM-DD"),
		),
		validation.Field(&r.AvatarURL,
			validation.Length(0, 2048),
		),
		validation.Field(&r.Bio,
			validation.Length(0, 500),
		),
	)
}

// ToUpdate converts the request into the domain-level partial update.
func (r UpdateProfileRequest) ToUpdate() ProfileUpdate {
	return ProfileUpdate{
		Name:      r.Name,
		Birthdate: r.Birthdate,
		AvatarURL: r.AvatarURL,
		Bio:       r.Bio,
	}
}
