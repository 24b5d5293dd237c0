package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	customthemeUC "vitrine/internal/application/customtheme/usecases"
	installationUC "vitrine/internal/application/installation/usecases"
	previewUC "vitrine/internal/application/preview/usecases"
	themeUC "vitrine/internal/application/theme/usecases"
	themefilesUC "vitrine/internal/application/themefiles/usecases"
	"vitrine/internal/domain/customtheme"
	"vitrine/internal/domain/installation"
	"vitrine/internal/domain/store"
	"vitrine/internal/domain/theme"
	"vitrine/internal/infrastructure/auth"
	"vitrine/internal/infrastructure/config"
	"vitrine/internal/infrastructure/ratelimit"
	"vitrine/internal/infrastructure/repository"
	"vitrine/internal/infrastructure/themefs"
	"vitrine/internal/interfaces/http/handlers"
	"vitrine/internal/interfaces/http/middleware"
	shareddb "vitrine/internal/shared/db"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/services/markdown"
)

// Container wires infrastructure, repositories, use cases, and handlers
// together. All theme storage is resolved beneath the single configured
// root, so swapping the root (e.g. to a temp dir in tests) relocates the
// whole tree.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Theme storage
	layout       *themefs.Layout
	catalogStore *themefs.CatalogStore
	customStore  *themefs.CustomStore
	fileStore    *themefs.FileStore
	cloner       *themefs.Cloner

	// Repositories
	themeRepo       theme.Repository
	customThemeRepo customtheme.Repository
	storeRepo       store.Repository
	instRepo        installation.Repository
	recentRepo      installation.RecentRepository

	txManager *shareddb.TransactionManager

	// Middleware
	authMiddleware *middleware.AuthMiddleware
	uploadLimiter  ratelimit.RateLimiter

	// Handlers
	themeHandler       *handlers.ThemeHandler
	installHandler     *handlers.InstallationHandler
	customThemeHandler *handlers.CustomThemeHandler
	themeFilesHandler  *handlers.ThemeFilesHandler
	previewHandler     *handlers.PreviewHandler
}

// NewContainer builds the full dependency graph. It fails only when the
// storage root cannot be prepared; everything past that is pure wiring.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	root, err := c.cfg.Storage.AbsRoot()
	if err != nil {
		return err
	}
	c.layout, err = themefs.NewLayout(root)
	if err != nil {
		return err
	}

	c.catalogStore = themefs.NewCatalogStore(c.layout, c.log)
	c.customStore = themefs.NewCustomStore(c.layout, c.log)
	c.fileStore = themefs.NewFileStore(c.layout, c.log)
	c.cloner = themefs.NewCloner(c.layout, c.log)

	c.themeRepo = repository.NewThemeRepository(c.db, c.log)
	c.customThemeRepo = repository.NewCustomThemeRepository(c.db, c.log)
	c.storeRepo = repository.NewStoreRepository(c.db, c.log)
	c.instRepo = repository.NewInstallationRepository(c.db, c.log)
	c.recentRepo = repository.NewRecentInstallationRepository(c.db, c.log)

	c.txManager = shareddb.NewTransactionManager(c.db)

	jwtSvc := auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, c.log)

	if c.cfg.Redis.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		c.uploadLimiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		c.uploadLimiter = ratelimit.NewNoopRateLimiter()
	}

	return nil
}

func (c *Container) initHandlers() {
	maxUpload := c.cfg.Storage.MaxUploadBytes
	maxThumbnail := c.cfg.Storage.MaxThumbnailBytes
	thumbWidth := c.cfg.Storage.ThumbnailMaxWidth

	// Catalog themes
	markdownSvc := markdown.NewMarkdownService()
	c.themeHandler = handlers.NewThemeHandler(
		themeUC.NewListThemesUseCase(c.themeRepo, c.log),
		themeUC.NewGetThemeUseCase(c.themeRepo, markdownSvc, c.log),
		themeUC.NewUploadThemeUseCase(c.themeRepo, c.catalogStore, thumbWidth, c.log),
		themeUC.NewRateThemeUseCase(c.themeRepo, c.log),
		themeUC.NewDeactivateThemeUseCase(c.themeRepo, c.log),
		c.themeRepo,
		c.catalogStore,
		maxUpload,
		maxThumbnail,
		c.log,
	)

	// Catalog installations
	c.installHandler = handlers.NewInstallationHandler(
		installationUC.NewInstallThemeUseCase(c.themeRepo, c.storeRepo, c.instRepo, c.cloner, c.fileStore, c.txManager, c.log),
		installationUC.NewUninstallThemeUseCase(c.themeRepo, c.storeRepo, c.instRepo, c.fileStore, c.txManager, c.log),
		installationUC.NewCustomizeThemeUseCase(c.themeRepo, c.storeRepo, c.instRepo, c.fileStore, c.log),
		installationUC.NewListInstallationsUseCase(c.themeRepo, c.storeRepo, c.instRepo, c.log),
		c.log,
	)

	// Custom themes
	c.customThemeHandler = handlers.NewCustomThemeHandler(
		customthemeUC.NewCreateCustomThemeUseCase(c.customThemeRepo, c.customStore, thumbWidth, c.log),
		customthemeUC.NewListCustomThemesUseCase(c.customThemeRepo, c.log),
		customthemeUC.NewGetCustomThemeUseCase(c.customThemeRepo, c.customStore, c.log),
		customthemeUC.NewUpdateCustomThemeUseCase(c.customThemeRepo, c.customStore, thumbWidth, c.log),
		customthemeUC.NewDeleteCustomThemeUseCase(c.customThemeRepo, c.customStore, c.log),
		customthemeUC.NewInstallCustomThemeUseCase(c.customThemeRepo, c.storeRepo, c.instRepo, c.recentRepo, c.customStore, c.fileStore, c.txManager, c.log),
		customthemeUC.NewUninstallCustomThemeUseCase(c.storeRepo, c.instRepo, c.log),
		customthemeUC.NewListRecentInstallationsUseCase(c.customThemeRepo, c.recentRepo, c.log),
		c.customThemeRepo,
		c.customStore,
		maxUpload,
		maxThumbnail,
		c.log,
	)

	// Installation file sandbox
	c.themeFilesHandler = handlers.NewThemeFilesHandler(
		themefilesUC.NewGetStructureUseCase(c.storeRepo, c.instRepo, c.fileStore, c.log),
		themefilesUC.NewReadFileUseCase(c.storeRepo, c.instRepo, c.fileStore, c.log),
		themefilesUC.NewWriteFileUseCase(c.storeRepo, c.instRepo, c.fileStore, c.log),
		themefilesUC.NewCreateFileUseCase(c.storeRepo, c.instRepo, c.fileStore, c.log),
		themefilesUC.NewDeleteFileUseCase(c.storeRepo, c.instRepo, c.fileStore, c.log),
		c.log,
	)

	// Public preview
	c.previewHandler = handlers.NewPreviewHandler(
		previewUC.NewPreviewFileUseCase(c.customThemeRepo, c.customStore, c.cfg.Preview.BaseURL, c.log),
		c.log,
	)
}

func (c *Container) uploadRateLimit() gin.HandlerFunc {
	return middleware.UploadRateLimit(c.uploadLimiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: c.cfg.RateLimit.RequestsPerMinute,
		RequestsPerHour:   c.cfg.RateLimit.RequestsPerHour,
		RequestsPerDay:    c.cfg.RateLimit.RequestsPerDay,
	})
}

// Shutdown releases resources held by the container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
