package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"vitrine/internal/application/customtheme/usecases"
	"vitrine/internal/domain/customtheme"
	"vitrine/internal/infrastructure/themefs"
	"vitrine/internal/interfaces/http/middleware"
	"vitrine/internal/shared/id"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/utils"
)

// CustomThemeHandler handles HTTP requests for merchant-uploaded themes.
type CustomThemeHandler struct {
	createUC       usecases.CreateCustomThemeExecutor
	listUC         usecases.ListCustomThemesExecutor
	getUC          usecases.GetCustomThemeExecutor
	updateUC       usecases.UpdateCustomThemeExecutor
	deleteUC       usecases.DeleteCustomThemeExecutor
	installUC      usecases.InstallCustomThemeExecutor
	uninstallUC    usecases.UninstallCustomThemeExecutor
	listRecentUC   usecases.ListRecentInstallationsExecutor
	themeRepo         customtheme.Repository
	customStore       *themefs.CustomStore
	maxUploadBytes    int64
	maxThumbnailBytes int64
	logger            logger.Interface
}

func NewCustomThemeHandler(
	createUC usecases.CreateCustomThemeExecutor,
	listUC usecases.ListCustomThemesExecutor,
	getUC usecases.GetCustomThemeExecutor,
	updateUC usecases.UpdateCustomThemeExecutor,
	deleteUC usecases.DeleteCustomThemeExecutor,
	installUC usecases.InstallCustomThemeExecutor,
	uninstallUC usecases.UninstallCustomThemeExecutor,
	listRecentUC usecases.ListRecentInstallationsExecutor,
	themeRepo customtheme.Repository,
	customStore *themefs.CustomStore,
	maxUploadBytes int64,
	maxThumbnailBytes int64,
	logger logger.Interface,
) *CustomThemeHandler {
	return &CustomThemeHandler{
		createUC:          createUC,
		listUC:            listUC,
		getUC:             getUC,
		updateUC:          updateUC,
		deleteUC:          deleteUC,
		installUC:         installUC,
		uninstallUC:       uninstallUC,
		listRecentUC:      listRecentUC,
		themeRepo:         themeRepo,
		customStore:       customStore,
		maxUploadBytes:    maxUploadBytes,
		maxThumbnailBytes: maxThumbnailBytes,
		logger:            logger,
	}
}

// CreateCustomTheme handles POST /custom-theme/ (multipart)
// Form fields: name. Files: zipFile (required), thumbnail (optional).
func (h *CustomThemeHandler) CreateCustomTheme(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	zipFile, err := c.FormFile("zipFile")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "theme archive is required")
		return
	}
	if h.maxUploadBytes > 0 && zipFile.Size > h.maxUploadBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "theme archive exceeds the upload size limit")
		return
	}

	zipPath, cleanupZip, err := saveUploadToTemp(c, zipFile, "custom-theme-*.zip")
	if err != nil {
		h.logger.Errorw("failed to buffer uploaded archive", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to process uploaded archive")
		return
	}
	defer cleanupZip()

	cmd := usecases.CreateCustomThemeCommand{
		Name:      c.PostForm("name"),
		CreatorID: userID,
		ZipPath:   zipPath,
		ZipName:   zipFile.Filename,
	}

	if thumb, err := c.FormFile("thumbnail"); err == nil {
		if h.maxThumbnailBytes > 0 && thumb.Size > h.maxThumbnailBytes {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "thumbnail exceeds the upload size limit")
			return
		}
		thumbPath, cleanupThumb, err := saveUploadToTemp(c, thumb, "custom-thumb-*")
		if err != nil {
			h.logger.Errorw("failed to buffer uploaded thumbnail", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to process uploaded thumbnail")
			return
		}
		defer cleanupThumb()
		cmd.ThumbnailPath = thumbPath
		cmd.ThumbnailName = thumb.Filename
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Theme, "custom theme created successfully")
}

// ListCustomThemes handles GET /custom-theme/
func (h *CustomThemeHandler) ListCustomThemes(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListCustomThemesQuery{
		CreatorID: userID,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Themes, result.Total, page, pageSize)
}

// GetCustomTheme handles GET /custom-theme/:themeId
func (h *CustomThemeHandler) GetCustomTheme(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	sid, err := utils.ParseSIDParam(c, "themeId", id.PrefixCustomTheme, "custom theme")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCustomThemeQuery{
		ThemeSID: sid,
		ActorID:  userID,
		IsAdmin:  middleware.IsAdmin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Theme)
}

// UpdateCustomTheme handles PUT /custom-theme/:themeId (multipart)
// All parts are optional: name, zipFile, thumbnail.
func (h *CustomThemeHandler) UpdateCustomTheme(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	sid, err := utils.ParseSIDParam(c, "themeId", id.PrefixCustomTheme, "custom theme")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateCustomThemeCommand{
		ThemeSID: sid,
		ActorID:  userID,
		IsAdmin:  middleware.IsAdmin(c),
		Name:     c.PostForm("name"),
	}

	if zipFile, err := c.FormFile("zipFile"); err == nil {
		if h.maxUploadBytes > 0 && zipFile.Size > h.maxUploadBytes {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "theme archive exceeds the upload size limit")
			return
		}
		zipPath, cleanupZip, err := saveUploadToTemp(c, zipFile, "custom-theme-*.zip")
		if err != nil {
			h.logger.Errorw("failed to buffer uploaded archive", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to process uploaded archive")
			return
		}
		defer cleanupZip()
		cmd.ZipPath = zipPath
		cmd.ZipName = zipFile.Filename
	}

	if thumb, err := c.FormFile("thumbnail"); err == nil {
		if h.maxThumbnailBytes > 0 && thumb.Size > h.maxThumbnailBytes {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "thumbnail exceeds the upload size limit")
			return
		}
		thumbPath, cleanupThumb, err := saveUploadToTemp(c, thumb, "custom-thumb-*")
		if err != nil {
			h.logger.Errorw("failed to buffer uploaded thumbnail", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to process uploaded thumbnail")
			return
		}
		defer cleanupThumb()
		cmd.ThumbnailPath = thumbPath
		cmd.ThumbnailName = thumb.Filename
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "custom theme updated", result.Theme)
}

// DeleteCustomTheme handles DELETE /custom-theme/:themeId
func (h *CustomThemeHandler) DeleteCustomTheme(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	sid, err := utils.ParseSIDParam(c, "themeId", id.PrefixCustomTheme, "custom theme")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCustomThemeCommand{
		ThemeSID: sid,
		ActorID:  userID,
		IsAdmin:  middleware.IsAdmin(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "custom theme deleted", nil)
}

type installCustomThemeRequest struct {
	ThemeID string `json:"theme_id" binding:"required"`
	StoreID string `json:"store_id" binding:"required"`
}

// InstallCustomTheme handles POST /custom-theme/install
func (h *CustomThemeHandler) InstallCustomTheme(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req installCustomThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "theme_id and store_id are required")
		return
	}

	result, err := h.installUC.Execute(c.Request.Context(), usecases.InstallCustomThemeCommand{
		ThemeSID: req.ThemeID,
		StoreSID: req.StoreID,
		ActorID:  userID,
		IsAdmin:  middleware.IsAdmin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "custom theme installed successfully")
}

// UninstallCustomTheme handles POST /custom-theme/uninstall
func (h *CustomThemeHandler) UninstallCustomTheme(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req installCustomThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "theme_id and store_id are required")
		return
	}

	if err := h.uninstallUC.Execute(c.Request.Context(), usecases.UninstallCustomThemeCommand{
		ThemeSID: req.ThemeID,
		StoreSID: req.StoreID,
		ActorID:  userID,
		IsAdmin:  middleware.IsAdmin(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "custom theme uninstalled", nil)
}

// ListRecentInstallations handles GET /custom-theme/recent-installations
func (h *CustomThemeHandler) ListRecentInstallations(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRecentUC.Execute(c.Request.Context(), usecases.ListRecentInstallationsQuery{ActorID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Installations)
}

// GetThumbnail handles GET /custom-theme/:themeId/thumbnail. The URL is
// referenced by CustomThemeSummary.ThumbnailURL, so it skips the ownership
// check the other endpoints apply.
func (h *CustomThemeHandler) GetThumbnail(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "themeId", id.PrefixCustomTheme, "custom theme")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entity, err := h.themeRepo.GetBySID(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if entity == nil || entity.Thumbnail() == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "thumbnail not found")
		return
	}

	path := h.customStore.ThumbnailPath(entity.ThemePath(), entity.Thumbnail().FileName)
	if _, err := os.Stat(path); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "thumbnail not found")
		return
	}

	c.Header("Content-Type", entity.Thumbnail().ContentType)
	c.File(path)
}
