package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vitrine/internal/interfaces/http/middleware"
	"vitrine/internal/shared/logger"
)

// SetupRoutes registers all HTTP routes. The preview routes are served
// outside the SecurityHeaders middleware on purpose: previews are meant to
// be iframed, so they carry their own frame policy.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	c.setupPreviewRoutes()

	api := c.engine.Group("/")
	api.Use(middleware.SecurityHeaders())

	c.setupThemeRoutes(api)
	c.setupThemeFileRoutes(api)
	c.setupCustomThemeRoutes(api)
	c.setupInstalledThemeRoutes(api)
}

func (c *Container) setupThemeRoutes(api *gin.RouterGroup) {
	group := api.Group("/client-theme")
	{
		// Catalog browsing is public.
		group.GET("/themes", c.themeHandler.ListThemes)
		group.GET("/themes/:themeId", c.themeHandler.GetTheme)
		group.GET("/themes/:themeId/thumbnail", c.themeHandler.GetThumbnail)

		authed := group.Group("")
		authed.Use(c.authMiddleware.RequireAuth())
		{
			authed.POST("/themes/:themeId/rate", c.themeHandler.RateTheme)
			authed.POST("/install", c.installHandler.InstallTheme)
			authed.GET("/store/:storeId/themes", c.installHandler.ListInstallations)
			authed.PUT("/installation/:installationId/customize", c.installHandler.CustomizeTheme)
			authed.DELETE("/installation/:installationId", c.installHandler.UninstallTheme)
		}

		admin := group.Group("")
		admin.Use(c.authMiddleware.RequireAuth(), c.authMiddleware.RequireAdmin())
		{
			admin.POST("/", c.uploadRateLimit(), c.themeHandler.UploadTheme)
			admin.DELETE("/themes/:themeId", c.themeHandler.DeactivateTheme)
		}
	}
}

func (c *Container) setupThemeFileRoutes(api *gin.RouterGroup) {
	group := api.Group("/client-theme-files")
	group.Use(c.authMiddleware.RequireAuth())
	{
		group.GET("/installation/:installationId/structure", c.themeFilesHandler.GetStructure)
		group.GET("/installation/:installationId/file/*filePath", c.themeFilesHandler.ReadFile)
		group.PUT("/installation/:installationId/file/*filePath", c.themeFilesHandler.WriteFile)
		group.POST("/installation/:installationId/file/*filePath", c.themeFilesHandler.CreateFile)
		group.DELETE("/installation/:installationId/file/*filePath", c.themeFilesHandler.DeleteFile)
	}
}

func (c *Container) setupCustomThemeRoutes(api *gin.RouterGroup) {
	group := api.Group("/custom-theme")
	{
		// Thumbnails back the URLs embedded in list responses.
		group.GET("/:themeId/thumbnail", c.customThemeHandler.GetThumbnail)

		authed := group.Group("")
		authed.Use(c.authMiddleware.RequireAuth())
		{
			authed.POST("/", c.uploadRateLimit(), c.customThemeHandler.CreateCustomTheme)
			authed.GET("/", c.customThemeHandler.ListCustomThemes)
			authed.GET("/recent-installations", c.customThemeHandler.ListRecentInstallations)
			authed.POST("/install", c.customThemeHandler.InstallCustomTheme)
			authed.POST("/uninstall", c.customThemeHandler.UninstallCustomTheme)
			authed.GET("/:themeId", c.customThemeHandler.GetCustomTheme)
			authed.PUT("/:themeId", c.uploadRateLimit(), c.customThemeHandler.UpdateCustomTheme)
			authed.DELETE("/:themeId", c.customThemeHandler.DeleteCustomTheme)
		}
	}
}

func (c *Container) setupInstalledThemeRoutes(api *gin.RouterGroup) {
	group := api.Group("/installed-themes")
	group.Use(c.authMiddleware.RequireAuth())
	{
		group.POST("/", c.installHandler.ActivateTheme)
		group.GET("/store/:storeId", c.installHandler.ListActiveInstallations)
		group.DELETE("/:installedThemeId", c.installHandler.PurgeInstallation)
	}
}

// setupPreviewRoutes registers the public iframe-embeddable preview
// endpoints. Auth is optional and never rejects; no SecurityHeaders.
func (c *Container) setupPreviewRoutes() {
	preview := c.engine.Group("")
	preview.Use(c.authMiddleware.OptionalAuth())
	{
		preview.GET("/custom-theme/:themeId/preview", c.previewHandler.PreviewIndex)
		preview.GET("/custom-theme/:themeId/files/*filePath", c.previewHandler.PreviewFile)
	}
}

// GetEngine exposes the gin engine, mainly for tests.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Run starts the HTTP server and blocks until the context is cancelled,
// then drains in-flight requests before returning.
func (c *Container) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Info("shutting down HTTP server")
	return srv.Shutdown(shutdownCtx)
}
