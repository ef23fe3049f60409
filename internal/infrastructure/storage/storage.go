package storage

import "context"

// ObjectStore là file storage service cho avatar và media upload.
// Caller coi URL trả về là opaque string.
type ObjectStore interface {
	// Store uploads the object and returns its public URL.
	Store(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Remove deletes the object. Removing an absent object is not an error.
	Remove(ctx context.Context, key string) error
}
