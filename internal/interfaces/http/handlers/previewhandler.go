package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vitrine/internal/application/preview/usecases"
	"vitrine/internal/shared/id"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/utils"
)

// PreviewHandler serves custom theme files for iframe embedding. The routes
// are public and explicitly allow framing, so the router must not attach the
// standard security headers to them.
type PreviewHandler struct {
	previewUC usecases.PreviewFileExecutor
	logger    logger.Interface
}

func NewPreviewHandler(previewUC usecases.PreviewFileExecutor, logger logger.Interface) *PreviewHandler {
	return &PreviewHandler{previewUC: previewUC, logger: logger}
}

// PreviewIndex handles GET /custom-theme/:themeId/preview
func (h *PreviewHandler) PreviewIndex(c *gin.Context) {
	h.serve(c, "")
}

// PreviewFile handles GET /custom-theme/:themeId/files/*filePath
func (h *PreviewHandler) PreviewFile(c *gin.Context) {
	h.serve(c, strings.TrimPrefix(c.Param("filePath"), "/"))
}

func (h *PreviewHandler) serve(c *gin.Context, filePath string) {
	sid, err := utils.ParseSIDParam(c, "themeId", id.PrefixCustomTheme, "custom theme")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.previewUC.Execute(c.Request.Context(), usecases.PreviewFileQuery{
		ThemeSID: sid,
		FilePath: filePath,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("X-Frame-Options", "ALLOWALL")
	c.Header("Content-Security-Policy", "frame-ancestors *")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
