package repository

import "photoshare-backend/internal/domains/identity"

// DefaultMembers là allow-list fixture cho demo mode.
// Đây là closed platform: muốn thêm member thì sửa list này (hoặc chạy
// remote mode với bảng profiles).
func DefaultMembers() []identity.User {
	return []identity.User{
		{
			ID:        "1",
			Name:      "Alex Johnson",
			Email:     "alex@example.com",
			Birthdate: strPtr("1995-03-15"),
			AvatarURL: strPtr("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?q=80&w=200&auto=format&fit=crop"),
			Bio:       strPtr("Film enthusiast and amateur photographer"),
		},
		{
			ID:        "2",
			Name:      "Taylor Smith",
			Email:     "taylor@example.com",
			Birthdate: strPtr("1996-07-22"),
			AvatarURL: strPtr("https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=200&auto=format&fit=crop"),
			Bio:       strPtr("Adventure seeker and nature lover"),
		},
		{
			ID:        "3",
			Name:      "Jordan Lee",
			Email:     "jordan@example.com",
			Birthdate: strPtr("1995-11-08"),
			AvatarURL: strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=200&auto=format&fit=crop"),
			Bio:       strPtr("Music producer and coffee addict"),
		},
		{
			ID:        "4",
			Name:      "Casey Nguyen",
			Email:     "casey@example.com",
			Birthdate: strPtr("1997-01-30"),
			AvatarURL: strPtr("https://images.unsplash.com/photo-1534528741775-53994a69daeb?q=80&w=200&auto=format&fit=crop"),
			Bio:       strPtr("Fashion design student and art collector"),
		},
		{
			ID:        "5",
			Name:      "Riley Garcia",
			Email:     "riley@example.com",
			Birthdate: strPtr("1996-05-17"),
			AvatarURL: strPtr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?q=80&w=200&auto=format&fit=crop"),
			Bio:       strPtr("Tech enthusiast and gamer"),
		},
	}
}

func strPtr(s string) *string {
	return &s
}
