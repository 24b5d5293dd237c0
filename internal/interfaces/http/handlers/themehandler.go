package handlers

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"vitrine/internal/application/theme/usecases"
	"vitrine/internal/domain/theme"
	"vitrine/internal/infrastructure/themefs"
	"vitrine/internal/shared/id"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/utils"
)

// ThemeHandler handles HTTP requests for the catalog theme operations.
type ThemeHandler struct {
	listThemesUC      usecases.ListThemesExecutor
	getThemeUC        usecases.GetThemeExecutor
	uploadThemeUC     usecases.UploadThemeExecutor
	rateThemeUC       usecases.RateThemeExecutor
	deactivateThemeUC usecases.DeactivateThemeExecutor
	themeRepo         theme.Repository
	catalogStore      *themefs.CatalogStore
	maxUploadBytes    int64
	maxThumbnailBytes int64
	logger            logger.Interface
}

func NewThemeHandler(
	listThemesUC usecases.ListThemesExecutor,
	getThemeUC usecases.GetThemeExecutor,
	uploadThemeUC usecases.UploadThemeExecutor,
	rateThemeUC usecases.RateThemeExecutor,
	deactivateThemeUC usecases.DeactivateThemeExecutor,
	themeRepo theme.Repository,
	catalogStore *themefs.CatalogStore,
	maxUploadBytes int64,
	maxThumbnailBytes int64,
	logger logger.Interface,
) *ThemeHandler {
	return &ThemeHandler{
		listThemesUC:      listThemesUC,
		getThemeUC:        getThemeUC,
		uploadThemeUC:     uploadThemeUC,
		rateThemeUC:       rateThemeUC,
		deactivateThemeUC: deactivateThemeUC,
		themeRepo:         themeRepo,
		catalogStore:      catalogStore,
		maxUploadBytes:    maxUploadBytes,
		maxThumbnailBytes: maxThumbnailBytes,
		logger:            logger,
	}
}

// ListThemes handles GET /client-theme/themes
// Query parameters: category, plan_tier, search, page, page_size
func (h *ThemeHandler) ListThemes(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listThemesUC.Execute(c.Request.Context(), usecases.ListThemesQuery{
		Category: c.Query("category"),
		PlanTier: c.Query("plan_tier"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Themes, result.Total, result.Page, result.PageSize)
}

// GetTheme handles GET /client-theme/themes/:themeId
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "themeId", id.PrefixTheme, "theme")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getThemeUC.Execute(c.Request.Context(), usecases.GetThemeQuery{ThemeSID: sid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", detail)
}

type uploadThemeForm struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Category string  `json:"category" validate:"omitempty,oneof=ecommerce portfolio blog landing other"`
	PlanTier string  `json:"plan_tier" validate:"omitempty,oneof=free basic premium"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// UploadTheme handles POST /client-theme/ (admin, multipart)
// Form fields: name, description, category, plan_tier, price, tags
// Files: zipFile (required), thumbnail (optional)
func (h *ThemeHandler) UploadTheme(c *gin.Context) {
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

	zipPath, cleanupZip, err := saveUploadToTemp(c, zipFile, "theme-*.zip")
	if err != nil {
		h.logger.Errorw("failed to buffer uploaded archive", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to process uploaded archive")
		return
	}
	defer cleanupZip()

	cmd := usecases.UploadThemeCommand{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		PlanTier:    c.PostForm("plan_tier"),
		Tags:        splitTags(c.PostForm("tags")),
		UploaderID:  userID,
		ZipPath:     zipPath,
		ZipName:     zipFile.Filename,
	}
	if price := c.PostForm("price"); price != "" {
		if cmd.Price, err = strconv.ParseFloat(price, 64); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid price")
			return
		}
	}

	if err := utils.ValidateStruct(uploadThemeForm{
		Name:     cmd.Name,
		Category: cmd.Category,
		PlanTier: cmd.PlanTier,
		Price:    cmd.Price,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if thumb, err := c.FormFile("thumbnail"); err == nil {
		if h.maxThumbnailBytes > 0 && thumb.Size > h.maxThumbnailBytes {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "thumbnail exceeds the upload size limit")
			return
		}
		thumbPath, cleanupThumb, err := saveUploadToTemp(c, thumb, "thumb-*")
		if err != nil {
			h.logger.Errorw("failed to buffer uploaded thumbnail", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to process uploaded thumbnail")
			return
		}
		defer cleanupThumb()
		cmd.ThumbnailPath = thumbPath
		cmd.ThumbnailName = thumb.Filename
	}

	result, err := h.uploadThemeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Theme, "theme uploaded successfully")
}

// RateTheme handles POST /client-theme/themes/:themeId/rate
func (h *ThemeHandler) RateTheme(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	sid, err := utils.ParseSIDParam(c, "themeId", id.PrefixTheme, "theme")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req struct {
		Rating int `json:"rating" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	result, err := h.rateThemeUC.Execute(c.Request.Context(), usecases.RateThemeCommand{
		ThemeSID: sid,
		Score:    req.Rating,
		UserID:   userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeactivateTheme handles DELETE /client-theme/themes/:themeId (admin)
func (h *ThemeHandler) DeactivateTheme(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "themeId", id.PrefixTheme, "theme")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deactivateThemeUC.Execute(c.Request.Context(), usecases.DeactivateThemeCommand{ThemeSID: sid}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "theme deactivated", nil)
}

// GetThumbnail handles GET /client-theme/themes/:themeId/thumbnail
func (h *ThemeHandler) GetThumbnail(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "themeId", id.PrefixTheme, "theme")
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

	path := h.catalogStore.ThumbnailPath(sid, entity.Thumbnail().FileName)
	if _, err := os.Stat(path); err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "thumbnail not found")
		return
	}

	c.Header("Content-Type", entity.Thumbnail().ContentType)
	c.File(path)
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
