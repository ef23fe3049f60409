package repository

import (
	"context"
	"sync"

	"photoshare-backend/internal/domains/media"
)

// memoryBackend là fixture variant của media.Backend cho demo mode.
// Giữ data trong slice/map riêng để store có thể reload sau restart
// của chính nó (Load trả copy, không alias internal state).
type memoryBackend struct {
	mu       sync.Mutex
	medias   []media.Media
	comments map[string][]media.Comment
}

// NewMemoryBackend seeds the backend with the given fixture data.
func NewMemoryBackend(medias []media.Media, comments map[string][]media.Comment) media.Backend {
	b := &memoryBackend{
		medias:   make([]media.Media, 0, len(medias)),
		comments: make(map[string][]media.Comment, len(comments)),
	}
	for _, m := range medias {
		b.medias = append(b.medias, *m.Clone())
	}
	for id, list := range comments {
		b.comments[id] = append([]media.Comment(nil), list...)
	}
	return b
}

func (b *memoryBackend) Load(ctx context.Context) ([]media.Media, map[string][]media.Comment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	medias := make([]media.Media, 0, len(b.medias))
	for _, m := range b.medias {
		medias = append(medias, *m.Clone())
	}

	comments := make(map[string][]media.Comment, len(b.comments))
	for id, list := range b.comments {
		comments[id] = append([]media.Comment(nil), list...)
	}

	return medias, comments, nil
}

func (b *memoryBackend) InsertMedia(ctx context.Context, item media.Media) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.medias = append([]media.Media{*item.Clone()}, b.medias...)
	return nil
}

func (b *memoryBackend) UpdateMedia(ctx context.Context, item media.Media) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.medias {
		if b.medias[i].ID == item.ID {
			b.medias[i] = *item.Clone()
			return nil
		}
	}
	return media.ErrMediaNotFound
}

func (b *memoryBackend) RemoveMedia(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.medias {
		if b.medias[i].ID == id {
			b.medias = append(b.medias[:i], b.medias[i+1:]...)
			delete(b.comments, id)
			return nil
		}
	}
	return media.ErrMediaNotFound
}

func (b *memoryBackend) InsertComment(ctx context.Context, comment media.Comment) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	comment.User = nil // enrichment không bao giờ persist
	b.comments[comment.MediaID] = append(b.comments[comment.MediaID], comment)
	return nil
}

func (b *memoryBackend) RemoveComment(ctx context.Context, mediaID, commentID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.comments[mediaID]
	for i := range list {
		if list[i].ID == commentID {
			b.comments[mediaID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return media.ErrCommentNotFound
}
