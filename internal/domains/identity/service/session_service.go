package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"photoshare-backend/internal/domains/identity"
	"photoshare-backend/internal/infrastructure/persistence"
	"photoshare-backend/pkg/logger"
)

// sessionService implement identity.Service - session store duy nhất
// của process. Mutex giữ cho readers không bao giờ thấy partial state.
type sessionService struct {
	directory identity.Directory
	store     persistence.Store
	codec     *snapshotCodec

	// loginDelay giả lập remote call latency của login.
	// Set 0 trong tests.
	loginDelay time.Duration

	mu             sync.RWMutex
	current        *identity.User
	authenticating bool
}

// NewSessionService tạo session store, inject directory và persistence
// qua constructor.
func NewSessionService(
	directory identity.Directory,
	store persistence.Store,
	secret string,
	loginDelay time.Duration,
) identity.Service {
	return &sessionService{
		directory:  directory,
		store:      store,
		codec:      newSnapshotCodec(secret),
		loginDelay: loginDelay,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

// Login xác thực email với allow-list của Directory.
func (s *sessionService) Login(ctx context.Context, email string) (*identity.User, error) {
	// Single-flight: tối đa một login attempt tại một thời điểm.
	// Attempt thứ hai bị reject, không bao giờ có hai active session.
	s.mu.Lock()
	if s.authenticating {
		s.mu.Unlock()
		return nil, identity.ErrLoginInProgress
	}
	s.authenticating = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.authenticating = false
		s.mu.Unlock()
	}()

	// Simulated remote call. Cố tình không nghe ctx.Done(): một attempt
	// đã start thì luôn resolve thành success hoặc failure.
	if s.loginDelay > 0 {
		time.Sleep(s.loginDelay)
	}

	found, err := s.directory.FindByEmail(ctx, identity.NormalizeEmail(email))
	if err != nil {
		// Session giữ nguyên trên mọi nhánh lỗi.
		if errors.Is(err, identity.ErrUserNotFound) {
			// Closed allow-list: no match là outcome, không phải crash.
			return nil, identity.ErrNotAuthorized
		}
		logger.Error("directory lookup failed during login", err)
		return nil, identity.ErrUpstreamFailure
	}

	s.mu.Lock()
	s.current = found.Clone()
	s.mu.Unlock()

	s.persistSnapshot(ctx, found)

	logger.Info("user signed in", map[string]interface{}{
		"user_id": found.ID,
		"name":    found.Name,
	})

	return found.Clone(), nil
}

// Logout xóa active identity và persisted snapshot. Luôn thành công:
// lỗi persistence chỉ được log, in-memory session vẫn bị clear.
func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		logger.Warn("failed to clear session snapshot", err)
	}
}

// ========================================
// PROFILE
// ========================================

// UpdateProfile merge partial fields vào active identity.
// Directory write đi trước: nếu upstream fail thì session giữ nguyên.
func (s *sessionService) UpdateProfile(ctx context.Context, update identity.ProfileUpdate) (*identity.User, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil {
		return nil, identity.ErrNotAuthenticated
	}

	// Apply giữ nguyên ID và Email theo invariant của model
	merged := current.Apply(update)

	if err := s.directory.UpdateProfile(ctx, merged); err != nil {
		logger.Error("profile update rejected by directory", err)
		return nil, identity.ErrUpstreamFailure
	}

	s.mu.Lock()
	s.current = merged.Clone()
	s.mu.Unlock()

	s.persistSnapshot(ctx, merged)

	return merged.Clone(), nil
}

// ========================================
// PERSISTENCE
// ========================================

// Restore chạy một lần khi startup. Mọi snapshot absent/corrupt/tampered
// đều cho kết quả anonymous, không bao giờ crash.
func (s *sessionService) Restore(ctx context.Context) {
	snapshot, found, err := s.store.Load(ctx)
	if err != nil {
		logger.Warn("session snapshot unavailable, starting anonymous", err)
		return
	}
	if !found {
		return
	}

	user, err := s.codec.Decode(snapshot)
	if err != nil {
		logger.Warn("discarding malformed session snapshot", err)
		return
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	logger.Info("session restored", map[string]interface{}{
		"user_id": user.ID,
	})
}

func (s *sessionService) persistSnapshot(ctx context.Context, user *identity.User) {
	snapshot, err := s.codec.Encode(user)
	if err != nil {
		logger.Warn("failed to encode session snapshot", err)
		return
	}
	if err := s.store.Save(ctx, snapshot); err != nil {
		logger.Warn("failed to persist session snapshot", err)
	}
}

// ========================================
// READERS
// ========================================

func (s *sessionService) Current() *identity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

func (s *sessionService) State() identity.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.authenticating {
		return identity.StateAuthenticating
	}
	if s.current != nil {
		return identity.StateAuthenticated
	}
	return identity.StateAnonymous
}
