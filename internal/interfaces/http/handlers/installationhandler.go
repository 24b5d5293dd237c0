package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitrine/internal/application/installation/usecases"
	"vitrine/internal/interfaces/http/middleware"
	"vitrine/internal/shared/id"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/utils"
)

// InstallationHandler handles HTTP requests for catalog theme installations.
type InstallationHandler struct {
	installThemeUC      usecases.InstallThemeExecutor
	uninstallThemeUC    usecases.UninstallThemeExecutor
	customizeThemeUC    usecases.CustomizeThemeExecutor
	listInstallationsUC usecases.ListInstallationsExecutor
	logger              logger.Interface
}

func NewInstallationHandler(
	installThemeUC usecases.InstallThemeExecutor,
	uninstallThemeUC usecases.UninstallThemeExecutor,
	customizeThemeUC usecases.CustomizeThemeExecutor,
	listInstallationsUC usecases.ListInstallationsExecutor,
	logger logger.Interface,
) *InstallationHandler {
	return &InstallationHandler{
		installThemeUC:      installThemeUC,
		uninstallThemeUC:    uninstallThemeUC,
		customizeThemeUC:    customizeThemeUC,
		listInstallationsUC: listInstallationsUC,
		logger:              logger,
	}
}

type installThemeRequest struct {
	ThemeID string `json:"theme_id" binding:"required"`
	StoreID string `json:"store_id" binding:"required"`
}

// InstallTheme handles POST /client-theme/install. The same flow backs
// POST /installed-themes/, so re-installing an already installed theme just
// reactivates it.
func (h *InstallationHandler) InstallTheme(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req installThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "theme_id and store_id are required")
		return
	}

	result, err := h.installThemeUC.Execute(c.Request.Context(), usecases.InstallThemeCommand{
		StoreSID: req.StoreID,
		ThemeSID: req.ThemeID,
		ActorID:  userID,
		IsAdmin:  middleware.IsAdmin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Installation, "theme installed successfully")
}

// ActivateTheme handles POST /installed-themes/. It is the same upsert flow
// as InstallTheme, exposed where storefront builders expect an "activate"
// endpoint.
func (h *InstallationHandler) ActivateTheme(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req installThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "theme_id and store_id are required")
		return
	}

	result, err := h.installThemeUC.Execute(c.Request.Context(), usecases.InstallThemeCommand{
		StoreSID: req.StoreID,
		ThemeSID: req.ThemeID,
		ActorID:  userID,
		IsAdmin:  middleware.IsAdmin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "theme activated", result.Installation)
}

// ListInstallations handles GET /client-theme/store/:storeId/themes
func (h *InstallationHandler) ListInstallations(c *gin.Context) {
	h.listForStore(c, false)
}

// ListActiveInstallations handles GET /installed-themes/store/:storeId
func (h *InstallationHandler) ListActiveInstallations(c *gin.Context) {
	h.listForStore(c, true)
}

func (h *InstallationHandler) listForStore(c *gin.Context, activeOnly bool) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	storeSID, err := utils.ParseSIDParam(c, "storeId", id.PrefixStore, "store")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listInstallationsUC.Execute(c.Request.Context(), usecases.ListInstallationsQuery{
		StoreSID:   storeSID,
		ActorID:    userID,
		IsAdmin:    middleware.IsAdmin(c),
		ActiveOnly: activeOnly,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Installations)
}

// CustomizeTheme handles PUT /client-theme/installation/:installationId/customize
// The body is an arbitrary JSON document appended to the customization history.
func (h *InstallationHandler) CustomizeTheme(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	instSID, err := utils.ParseSIDParam(c, "installationId", id.PrefixInstallation, "installation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var payload json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "customization payload must be valid JSON")
		return
	}

	result, err := h.customizeThemeUC.Execute(c.Request.Context(), usecases.CustomizeThemeCommand{
		InstallationSID: instSID,
		ActorID:         userID,
		IsAdmin:         middleware.IsAdmin(c),
		Payload:         payload,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "customization saved", result.Installation)
}

// UninstallTheme handles DELETE /client-theme/installation/:installationId.
// Deactivates the installation and keeps its files for a later re-install.
func (h *InstallationHandler) UninstallTheme(c *gin.Context) {
	h.uninstall(c, "installationId", false)
}

// PurgeInstallation handles DELETE /installed-themes/:installedThemeId.
// Deactivates the installation and removes its directory from disk.
func (h *InstallationHandler) PurgeInstallation(c *gin.Context) {
	h.uninstall(c, "installedThemeId", true)
}

func (h *InstallationHandler) uninstall(c *gin.Context, paramName string, purge bool) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	instSID, err := utils.ParseSIDParam(c, paramName, id.PrefixInstallation, "installation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uninstallThemeUC.Execute(c.Request.Context(), usecases.UninstallThemeCommand{
		InstallationSID: instSID,
		ActorID:         userID,
		IsAdmin:         middleware.IsAdmin(c),
		Purge:           purge,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "theme uninstalled", nil)
}
