package repository

import (
	"context"
	"sync"

	"photoshare-backend/internal/domains/identity"
)

// memoryDirectory là fixed in-memory catalog cho demo mode.
// Không expose create/delete - allow-list là closed set.
type memoryDirectory struct {
	mu      sync.RWMutex
	byID    map[string]*identity.User
	byEmail map[string]*identity.User
	order   []string // giữ insertion order cho List
}

// NewMemoryDirectory builds a directory from a fixed member list.
// When two members share the same normalized email the first one wins,
// keeping the one-identity-per-email contract.
func NewMemoryDirectory(members []identity.User) identity.Directory {
	d := &memoryDirectory{
		byID:    make(map[string]*identity.User, len(members)),
		byEmail: make(map[string]*identity.User, len(members)),
	}

	for i := range members {
		member := members[i].Clone()
		email := identity.NormalizeEmail(member.Email)
		if _, taken := d.byEmail[email]; taken {
			continue
		}
		if _, taken := d.byID[member.ID]; taken {
			continue
		}
		d.byID[member.ID] = member
		d.byEmail[email] = member
		d.order = append(d.order, member.ID)
	}

	return d
}

func (d *memoryDirectory) FindByID(ctx context.Context, id string) (*identity.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.byID[id]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return user.Clone(), nil
}

func (d *memoryDirectory) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.byEmail[identity.NormalizeEmail(email)]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return user.Clone(), nil
}

func (d *memoryDirectory) List(ctx context.Context) ([]identity.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]identity.User, 0, len(d.order))
	for _, id := range d.order {
		users = append(users, *d.byID[id].Clone())
	}
	return users, nil
}

func (d *memoryDirectory) UpdateProfile(ctx context.Context, user *identity.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	existing, ok := d.byID[user.ID]
	if !ok {
		return identity.ErrUserNotFound
	}

	// ID và Email giữ nguyên, chỉ merge profile fields
	updated := user.Clone()
	updated.ID = existing.ID
	updated.Email = existing.Email
	d.byID[user.ID] = updated
	d.byEmail[identity.NormalizeEmail(existing.Email)] = updated

	return nil
}
