package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"photoshare-backend/internal/config"
	"photoshare-backend/internal/infrastructure/database"
	"photoshare-backend/internal/infrastructure/persistence"
	"photoshare-backend/internal/infrastructure/storage"

	"photoshare-backend/internal/domains/identity"
	identityHandler "photoshare-backend/internal/domains/identity/handler"
	identityRepo "photoshare-backend/internal/domains/identity/repository"
	identityService "photoshare-backend/internal/domains/identity/service"

	"photoshare-backend/internal/domains/media"
	mediaHandler "photoshare-backend/internal/domains/media/handler"
	mediaRepo "photoshare-backend/internal/domains/media/repository"
	mediaService "photoshare-backend/internal/domains/media/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application - root của
// dependency graph. Mọi field đều singleton trong app lifetime.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config       *config.Config
	DB           *database.PostgresDB // nil trong demo mode
	SessionStore persistence.Store    // Redis hoặc memory
	ObjectStore  storage.ObjectStore  // MinIO hoặc memory

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	Directory    identity.Directory // allow-list + profile lookups
	MediaBackend media.Backend      // fixture hoặc remote service

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	Sessions identity.Service // session store
	Contents media.Service    // content store

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	IdentityHandler *identityHandler.IdentityHandler
	MediaHandler    *mediaHandler.MediaHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer khởi tạo toàn bộ dependency graph theo thứ tự:
// 1. Config
// 2. Infrastructure (DB/Redis/MinIO hoặc memory variants theo DEMO_MODE)
// 3. Repositories
// 4. Services (kèm Restore + Init - explicit lifecycle của hai store)
// 5. Handlers
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s, DemoMode: %v)", cfg.App.Environment, cfg.App.DemoMode)

	// ========================================
	// STEP 2: INFRASTRUCTURE
	// ========================================
	if cfg.App.DemoMode {
		log.Println("🎭 Demo mode: in-memory persistence, storage and fixtures")

		c.SessionStore = persistence.NewMemoryStore()
		c.ObjectStore = storage.NewMemoryStore()
		c.Directory = identityRepo.NewMemoryDirectory(identityRepo.DefaultMembers())
		c.MediaBackend = mediaRepo.NewMemoryBackend(mediaRepo.DemoMedias(), mediaRepo.DemoComments())
	} else {
		// PostgreSQL
		log.Println("🗄️  Connecting to PostgreSQL...")

		db := database.NewPostgresDB(cfg.Database)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := db.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.HealthCheck(context.Background()); err != nil {
			return nil, fmt.Errorf("database health check failed: %w", err)
		}
		c.DB = db
		log.Println("✅ Database connected")

		// Redis - session snapshot persistence
		log.Println("🔴 Connecting to Redis...")

		redisStore := persistence.NewRedisStore(
			cfg.Redis.Host,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Session.SnapshotKey,
		)
		if err := redisStore.Ping(context.Background()); err != nil {
			return nil, fmt.Errorf("redis health check failed: %w", err)
		}
		c.SessionStore = redisStore
		log.Println("✅ Redis connected")

		// MinIO - file storage service
		log.Println("📦 Connecting to MinIO...")

		objectStore, err := storage.NewMinIOStore(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize object storage: %w", err)
		}
		c.ObjectStore = objectStore
		log.Println("✅ MinIO connected")

		c.Directory = identityRepo.NewPostgresDirectory(db.Pool)
		c.MediaBackend = mediaRepo.NewPostgresBackend(db.Pool)
	}

	// ========================================
	// STEP 3: SERVICES
	// ========================================
	log.Println("⚙️  Wiring services...")

	c.Sessions = identityService.NewSessionService(
		c.Directory,
		c.SessionStore,
		cfg.Session.Secret,
		time.Duration(cfg.Session.LoginDelayMS)*time.Millisecond,
	)
	c.Contents = mediaService.NewContentService(c.MediaBackend, c.Sessions, c.Directory)

	// Explicit lifecycle: restore session snapshot rồi load content
	// collection trước khi serve request đầu tiên.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer startupCancel()

	c.Sessions.Restore(startupCtx)
	if err := c.Contents.Init(startupCtx); err != nil {
		return nil, fmt.Errorf("failed to load content store: %w", err)
	}
	log.Println("✅ Stores initialized")

	// ========================================
	// STEP 4: HANDLERS
	// ========================================
	c.IdentityHandler = identityHandler.NewIdentityHandler(c.Sessions, c.Directory, c.ObjectStore)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.Contents)

	log.Println("✅ Container ready")
	return c, nil
}

// Cleanup đóng các connection khi shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container...")

	if redisStore, ok := c.SessionStore.(*persistence.RedisStore); ok {
		if err := redisStore.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("✅ Cleanup complete")
}
