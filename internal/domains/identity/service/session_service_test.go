package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoshare-backend/internal/domains/identity"
	"photoshare-backend/internal/domains/identity/repository"
	"photoshare-backend/internal/infrastructure/persistence"
)

const testSecret = "test-secret"

func newTestSession(store persistence.Store, delay time.Duration) (identity.Service, identity.Directory) {
	directory := repository.NewMemoryDirectory(repository.DefaultMembers())
	return NewSessionService(directory, store, testSecret, delay), directory
}

func TestLoginMatchesAllowListCaseInsensitive(t *testing.T) {
	store := persistence.NewMemoryStore()
	svc, _ := newTestSession(store, 0)
	ctx := context.Background()

	user, err := svc.Login(ctx, "ALEX@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "Alex Johnson", user.Name)
	assert.Equal(t, identity.StateAuthenticated, svc.State())

	// Snapshot phải được persist ngay sau login
	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLoginUnknownEmailLeavesSessionUnchanged(t *testing.T) {
	store := persistence.NewMemoryStore()
	svc, _ := newTestSession(store, 0)
	ctx := context.Background()

	_, err := svc.Login(ctx, "stranger@example.com")
	assert.ErrorIs(t, err, identity.ErrNotAuthorized)
	assert.Nil(t, svc.Current())
	assert.Equal(t, identity.StateAnonymous, svc.State())

	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	// Session đang authenticated cũng không bị failed login làm thay đổi
	_, err = svc.Login(ctx, "alex@example.com")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "stranger@example.com")
	assert.ErrorIs(t, err, identity.ErrNotAuthorized)
	require.NotNil(t, svc.Current())
	assert.Equal(t, "1", svc.Current().ID)
}

func TestLoginSingleFlight(t *testing.T) {
	svc, _ := newTestSession(persistence.NewMemoryStore(), 100*time.Millisecond)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Login(ctx, "alex@example.com")
		done <- err
	}()

	// Đợi attempt đầu vào transitional state
	require.Eventually(t, func() bool {
		return svc.State() == identity.StateAuthenticating
	}, time.Second, 5*time.Millisecond)

	// Attempt thứ hai bị reject trong khi attempt đầu pending
	_, err := svc.Login(ctx, "taylor@example.com")
	assert.ErrorIs(t, err, identity.ErrLoginInProgress)

	require.NoError(t, <-done)
	require.NotNil(t, svc.Current())
	assert.Equal(t, "1", svc.Current().ID)
}

func TestLogoutClearsSessionAndSnapshot(t *testing.T) {
	store := persistence.NewMemoryStore()
	svc, _ := newTestSession(store, 0)
	ctx := context.Background()

	_, err := svc.Login(ctx, "alex@example.com")
	require.NoError(t, err)

	svc.Logout(ctx)

	assert.Nil(t, svc.Current())
	assert.Equal(t, identity.StateAnonymous, svc.State())

	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	svc, _ := newTestSession(persistence.NewMemoryStore(), 0)

	name := "Someone Else"
	_, err := svc.UpdateProfile(context.Background(), identity.ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, identity.ErrNotAuthenticated)
}

func TestUpdateProfileMergesFieldsAndKeepsIdentity(t *testing.T) {
	svc, directory := newTestSession(persistence.NewMemoryStore(), 0)
	ctx := context.Background()

	_, err := svc.Login(ctx, "alex@example.com")
	require.NoError(t, err)

	name := "Alex J."
	bio := "Updated bio"
	updated, err := svc.UpdateProfile(ctx, identity.ProfileUpdate{Name: &name, Bio: &bio})
	require.NoError(t, err)

	// Merged fields
	assert.Equal(t, "Alex J.", updated.Name)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Updated bio", *updated.Bio)

	// ID và Email không bao giờ đổi
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "alex@example.com", updated.Email)

	// Field không đưa vào update giữ nguyên
	require.NotNil(t, updated.Birthdate)
	assert.Equal(t, "1995-03-15", *updated.Birthdate)

	// Directory cũng nhận được profile mới
	fromDirectory, err := directory.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Alex J.", fromDirectory.Name)

	assert.Equal(t, identity.StateAuthenticated, svc.State())
}

func TestRestoreFromPersistedSnapshot(t *testing.T) {
	store := persistence.NewMemoryStore()
	ctx := context.Background()

	first, _ := newTestSession(store, 0)
	_, err := first.Login(ctx, "taylor@example.com")
	require.NoError(t, err)

	// Process mới với cùng store: restore lại đúng identity
	second, _ := newTestSession(store, 0)
	second.Restore(ctx)

	require.NotNil(t, second.Current())
	assert.Equal(t, "2", second.Current().ID)
	assert.Equal(t, "Taylor Smith", second.Current().Name)
}

func TestRestoreAbsentSnapshotStaysAnonymous(t *testing.T) {
	svc, _ := newTestSession(persistence.NewMemoryStore(), 0)
	svc.Restore(context.Background())

	assert.Nil(t, svc.Current())
	assert.Equal(t, identity.StateAnonymous, svc.State())
}

func TestRestoreMalformedSnapshotStaysAnonymous(t *testing.T) {
	store := persistence.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "not-a-valid-snapshot"))

	svc, _ := newTestSession(store, 0)
	svc.Restore(ctx)

	assert.Nil(t, svc.Current())
}

func TestRestoreTamperedSnapshotStaysAnonymous(t *testing.T) {
	store := persistence.NewMemoryStore()
	ctx := context.Background()

	// Snapshot ký bằng secret khác == tampered
	directory := repository.NewMemoryDirectory(repository.DefaultMembers())
	other := NewSessionService(directory, store, "different-secret", 0)
	_, err := other.Login(ctx, "alex@example.com")
	require.NoError(t, err)

	svc, _ := newTestSession(store, 0)
	svc.Restore(ctx)

	assert.Nil(t, svc.Current())
}

type rejectingDirectory struct {
	identity.Directory
}

func (d *rejectingDirectory) UpdateProfile(ctx context.Context, user *identity.User) error {
	return errors.New("directory down")
}

func TestUpdateProfileDirectoryFailureLeavesSessionUnchanged(t *testing.T) {
	store := persistence.NewMemoryStore()
	directory := &rejectingDirectory{
		Directory: repository.NewMemoryDirectory(repository.DefaultMembers()),
	}
	svc := NewSessionService(directory, store, testSecret, 0)
	ctx := context.Background()

	_, err := svc.Login(ctx, "alex@example.com")
	require.NoError(t, err)

	snapshotBefore, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)

	name := "New Name"
	_, err = svc.UpdateProfile(ctx, identity.ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, identity.ErrUpstreamFailure)

	// Session giữ nguyên identity cũ
	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, "Alex Johnson", current.Name)
	assert.Equal(t, identity.StateAuthenticated, svc.State())

	// Và snapshot đã persist không bị ghi đè
	snapshotAfter, found, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snapshotBefore, snapshotAfter)
}
