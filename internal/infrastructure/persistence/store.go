// Package persistence giữ session snapshot giữa các lần process restart.
// Đây là analogue của browser local storage: một value duy nhất dưới một
// fixed key.
package persistence

import "context"

// Store là contract của persistence service cho session store.
// Absent và corrupt value đều trả về found=false, không bao giờ làm
// crash startup.
type Store interface {
	// Save persists the snapshot, overwriting any previous one.
	Save(ctx context.Context, snapshot string) error

	// Load returns the persisted snapshot. found=false when absent.
	Load(ctx context.Context) (snapshot string, found bool, err error)

	// Clear removes the persisted snapshot. Clearing an absent snapshot
	// is not an error.
	Clear(ctx context.Context) error
}
