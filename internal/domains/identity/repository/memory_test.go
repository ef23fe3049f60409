package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoshare-backend/internal/domains/identity"
)

func TestFindByEmailIsCaseInsensitive(t *testing.T) {
	directory := NewMemoryDirectory(DefaultMembers())
	ctx := context.Background()

	user, err := directory.FindByEmail(ctx, "  RILEY@EXAMPLE.COM ")
	require.NoError(t, err)
	assert.Equal(t, "5", user.ID)

	_, err = directory.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, identity.ErrUserNotFound)
}

func TestFindByID(t *testing.T) {
	directory := NewMemoryDirectory(DefaultMembers())
	ctx := context.Background()

	user, err := directory.FindByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", user.Name)

	_, err = directory.FindByID(ctx, "999")
	assert.ErrorIs(t, err, identity.ErrUserNotFound)

	// Malformed id và unknown id có cùng contract
	_, err = directory.FindByID(ctx, "not-an-id-at-all")
	assert.ErrorIs(t, err, identity.ErrUserNotFound)
}

func TestOneIdentityPerEmail(t *testing.T) {
	members := []identity.User{
		{ID: "a", Name: "First", Email: "shared@example.com"},
		{ID: "b", Name: "Second", Email: "SHARED@example.com"},
	}
	directory := NewMemoryDirectory(members)
	ctx := context.Background()

	user, err := directory.FindByEmail(ctx, "shared@example.com")
	require.NoError(t, err)
	assert.Equal(t, "a", user.ID)

	users, err := directory.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateProfilePreservesIDAndEmail(t *testing.T) {
	directory := NewMemoryDirectory(DefaultMembers())
	ctx := context.Background()

	user, err := directory.FindByID(ctx, "1")
	require.NoError(t, err)

	user.Name = "Renamed"
	user.Email = "hijacked@example.com" // phải bị bỏ qua
	require.NoError(t, directory.UpdateProfile(ctx, user))

	updated, err := directory.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "alex@example.com", updated.Email)

	// Lookup theo email cũ vẫn hoạt động
	byEmail, err := directory.FindByEmail(ctx, "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", byEmail.Name)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	directory := NewMemoryDirectory(DefaultMembers())

	err := directory.UpdateProfile(context.Background(), &identity.User{ID: "999", Email: "x@example.com"})
	assert.ErrorIs(t, err, identity.ErrUserNotFound)
}

func TestListReturnsCopies(t *testing.T) {
	directory := NewMemoryDirectory(DefaultMembers())
	ctx := context.Background()

	users, err := directory.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)

	users[0].Name = "Mutated"

	again, err := directory.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", again[0].Name)
}
