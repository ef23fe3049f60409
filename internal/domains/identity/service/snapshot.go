package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"photoshare-backend/internal/domains/identity"
)

// snapshotClaims là persisted session snapshot dạng signed token.
// Ký snapshot để một value bị sửa tay hoặc corrupt trong store sẽ fail
// parse và restore coi như anonymous thay vì nhận identity sai.
type snapshotClaims struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Birthdate *string `json:"birthdate,omitempty"`
	AvatarURL *string `json:"profile_picture,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	jwt.RegisteredClaims
}

// snapshotCodec đóng gói encode/decode giữa identity.User và snapshot string.
type snapshotCodec struct {
	secret string
}

func newSnapshotCodec(secret string) *snapshotCodec {
	return &snapshotCodec{secret: secret}
}

// Encode serializes the user into a signed HS256 snapshot.
// Snapshot không có expiry: session sống tới khi logout.
func (c *snapshotCodec) Encode(user *identity.User) (string, error) {
	claims := snapshotClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Birthdate: user.Birthdate,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.secret))
	if err != nil {
		return "", fmt.Errorf("encode session snapshot: %w", err)
	}
	return signed, nil
}

// Decode parses and verifies a persisted snapshot. Any malformed or
// tampered input is an error - the caller treats it as anonymous.
func (c *snapshotCodec) Decode(snapshot string) (*identity.User, error) {
	claims := &snapshotClaims{}
	token, err := jwt.ParseWithClaims(snapshot, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(c.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode session snapshot: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("decode session snapshot: invalid token")
	}
	if claims.UserID == "" || claims.Email == "" {
		return nil, fmt.Errorf("decode session snapshot: missing identity fields")
	}

	return &identity.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
		Birthdate: claims.Birthdate,
		AvatarURL: claims.AvatarURL,
		Bio:       claims.Bio,
	}, nil
}
