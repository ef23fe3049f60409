package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"photoshare-backend/internal/domains/identity"
	"photoshare-backend/internal/domains/media"
	"photoshare-backend/pkg/logger"
)

// contentService implement media.Service.
//
// State: collection theo insertion order (mới nhất ở đầu), comments map
// theo media id (append order = display order), và liked overlay map
// per-session. Một mutex cho cả ba để cascade delete và like toggle
// atomic từ góc nhìn caller.
type contentService struct {
	backend   media.Backend
	sessions  identity.Service
	directory identity.Directory

	mu       sync.RWMutex
	medias   []media.Media
	comments map[string][]media.Comment
	liked    map[string]bool // overlay: media id -> current session đã like
}

// NewContentService tạo content store. Gọi Init trước khi serve.
func NewContentService(
	backend media.Backend,
	sessions identity.Service,
	directory identity.Directory,
) media.Service {
	return &contentService{
		backend:   backend,
		sessions:  sessions,
		directory: directory,
		comments:  make(map[string][]media.Comment),
		liked:     make(map[string]bool),
	}
}

// Init loads the collection from the backend. Overlay bắt đầu rỗng:
// không bao giờ hard-code id nào là "đã like".
func (s *contentService) Init(ctx context.Context) error {
	medias, comments, err := s.backend.Load(ctx)
	if err != nil {
		return media.ErrUpstreamFailure
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.medias = medias
	s.comments = make(map[string][]media.Comment, len(comments))
	for id, list := range comments {
		s.comments[id] = list
	}
	s.liked = make(map[string]bool)

	logger.Info("content store loaded", map[string]interface{}{
		"media_count": len(medias),
	})

	return nil
}

// actor trả về identity đang active, hoặc ErrNotAuthenticated.
// Mọi mutation đều re-check qua đây, kể cả khi middleware đã gate.
func (s *contentService) actor() (*identity.User, error) {
	current := s.sessions.Current()
	if current == nil {
		return nil, identity.ErrNotAuthenticated
	}
	return current, nil
}

// ========================================
// MEDIA OPERATIONS
// ========================================

func (s *contentService) Create(ctx context.Context, req media.CreateMediaRequest) (*media.Media, error) {
	author, err := s.actor()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, media.ErrTitleRequired
	}
	if !req.Type.IsValid() {
		return nil, media.ErrInvalidType
	}

	// Store-assigned fields: id, timestamp, likes, overlay flag, author
	item := media.Media{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		Type:         req.Type,
		UserID:       author.ID,
		CreatedAt:    time.Now().UTC(),
		Tags:         media.NormalizeTags(req.Tags),
		Likes:        0,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Backend trước, state sau: upstream fail thì không có gì được insert
	if err := s.backend.InsertMedia(ctx, item); err != nil {
		logger.Error("insert media rejected by backend", err)
		return nil, media.ErrUpstreamFailure
	}

	s.medias = append([]media.Media{item}, s.medias...)

	return item.Clone(), nil
}

func (s *contentService) Delete(ctx context.Context, id string) error {
	if _, err := s.actor(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return media.ErrMediaNotFound
	}

	if err := s.backend.RemoveMedia(ctx, id); err != nil && !errors.Is(err, media.ErrMediaNotFound) {
		logger.Error("remove media rejected by backend", err)
		return media.ErrUpstreamFailure
	}

	// Media, comments và overlay entry biến mất trong cùng một critical
	// section - không reader nào thấy post mất mà comment còn.
	s.medias = append(s.medias[:index], s.medias[index+1:]...)
	delete(s.comments, id)
	delete(s.liked, id)

	return nil
}

func (s *contentService) ToggleLike(ctx context.Context, id string) (*media.Media, error) {
	if _, err := s.actor(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, media.ErrMediaNotFound
	}

	item := s.medias[index]
	hasLiked := s.liked[id]
	if hasLiked {
		item.Likes--
		if item.Likes < 0 {
			// Seed data không bao giờ nên đưa likes xuống âm, nhưng
			// invariant vẫn được giữ tuyệt đối.
			item.Likes = 0
		}
	} else {
		item.Likes++
	}

	if err := s.backend.UpdateMedia(ctx, item); err != nil {
		logger.Error("like update rejected by backend", err)
		return nil, media.ErrUpstreamFailure
	}

	s.medias[index] = item
	s.liked[id] = !hasLiked

	return s.overlay(item), nil
}

func (s *contentService) Get(ctx context.Context, id string) (*media.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, media.ErrMediaNotFound
	}
	return s.overlay(s.medias[index]), nil
}

// List trả full collection sorted newest-first. Store order là insertion
// order; sort theo timestamp là presentation convention.
func (s *contentService) List(ctx context.Context) ([]media.Media, error) {
	s.mu.RLock()
	items := s.snapshot()
	s.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *contentService) ListByUser(ctx context.Context, userID string) ([]media.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []media.Media
	for i := range s.medias {
		if s.medias[i].UserID == userID {
			items = append(items, *s.overlay(s.medias[i]))
		}
	}
	return items, nil
}

// Search: blank query trả full collection (không phải empty). Match là
// case-insensitive substring trên title, description hoặc bất kỳ tag
// nào - trúng một field là đủ.
func (s *contentService) Search(ctx context.Context, query string) ([]media.Media, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	if normalized == "" {
		return s.snapshot(), nil
	}

	var matches []media.Media
	for i := range s.medias {
		if matchesQuery(&s.medias[i], normalized) {
			matches = append(matches, *s.overlay(s.medias[i]))
		}
	}
	return matches, nil
}

func matchesQuery(item *media.Media, normalizedQuery string) bool {
	if strings.Contains(strings.ToLower(item.Title), normalizedQuery) {
		return true
	}
	if item.Description != nil && strings.Contains(strings.ToLower(*item.Description), normalizedQuery) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), normalizedQuery) {
			return true
		}
	}
	return false
}

// ========================================
// COMMENT OPERATIONS
// ========================================

func (s *contentService) AddComment(ctx context.Context, mediaID, content string) (*media.Comment, error) {
	author, err := s.actor()
	if err != nil {
		return nil, err
	}

	// Whitespace-only content: no-op có báo lỗi, comment count giữ nguyên
	if strings.TrimSpace(content) == "" {
		return nil, media.ErrEmptyComment
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(mediaID) < 0 {
		return nil, media.ErrMediaNotFound
	}

	comment := media.Comment{
		ID:        uuid.NewString(),
		Content:   content,
		UserID:    author.ID,
		MediaID:   mediaID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.backend.InsertComment(ctx, comment); err != nil {
		logger.Error("insert comment rejected by backend", err)
		return nil, media.ErrUpstreamFailure
	}

	// Append order = display order, oldest first
	s.comments[mediaID] = append(s.comments[mediaID], comment)

	enriched := comment
	enriched.User = author
	return &enriched, nil
}

func (s *contentService) DeleteComment(ctx context.Context, mediaID, commentID string) error {
	if _, err := s.actor(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.comments[mediaID]
	index := -1
	for i := range list {
		if list[i].ID == commentID {
			index = i
			break
		}
	}
	if index < 0 {
		return media.ErrCommentNotFound
	}

	if err := s.backend.RemoveComment(ctx, mediaID, commentID); err != nil && !errors.Is(err, media.ErrCommentNotFound) {
		logger.Error("remove comment rejected by backend", err)
		return media.ErrUpstreamFailure
	}

	s.comments[mediaID] = append(list[:index], list[index+1:]...)
	return nil
}

// Comments enriches each comment with its author resolved through the
// Directory. Đây là derived view: tính lại mỗi lần gọi, không cache vào
// state.
func (s *contentService) Comments(ctx context.Context, mediaID string) ([]media.Comment, error) {
	s.mu.RLock()
	if s.indexOf(mediaID) < 0 {
		s.mu.RUnlock()
		return nil, media.ErrMediaNotFound
	}
	list := append([]media.Comment(nil), s.comments[mediaID]...)
	s.mu.RUnlock()

	for i := range list {
		author, err := s.directory.FindByID(ctx, list[i].UserID)
		if err != nil {
			// Author đã rời directory: comment vẫn hiển thị, không có
			// user attachment.
			continue
		}
		list[i].User = author
	}
	return list, nil
}

// ========================================
// INTERNAL HELPERS (caller giữ lock)
// ========================================

func (s *contentService) indexOf(id string) int {
	for i := range s.medias {
		if s.medias[i].ID == id {
			return i
		}
	}
	return -1
}

// overlay merges the per-session liked flag into a copy of the item.
func (s *contentService) overlay(item media.Media) *media.Media {
	cp := item.Clone()
	cp.HasLiked = s.liked[item.ID]
	return cp
}

func (s *contentService) snapshot() []media.Media {
	items := make([]media.Media, 0, len(s.medias))
	for i := range s.medias {
		items = append(items, *s.overlay(s.medias[i]))
	}
	return items
}
