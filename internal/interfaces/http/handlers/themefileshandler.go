package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vitrine/internal/application/themefiles/usecases"
	"vitrine/internal/interfaces/http/middleware"
	"vitrine/internal/shared/id"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/utils"
)

// ThemeFilesHandler handles HTTP requests against an installation's file
// sandbox. Paths arrive through a gin wildcard, so every method strips the
// leading slash before handing the path to the use case.
type ThemeFilesHandler struct {
	getStructureUC usecases.GetStructureExecutor
	readFileUC     usecases.ReadFileExecutor
	writeFileUC    usecases.WriteFileExecutor
	createFileUC   usecases.CreateFileExecutor
	deleteFileUC   usecases.DeleteFileExecutor
	logger         logger.Interface
}

func NewThemeFilesHandler(
	getStructureUC usecases.GetStructureExecutor,
	readFileUC usecases.ReadFileExecutor,
	writeFileUC usecases.WriteFileExecutor,
	createFileUC usecases.CreateFileExecutor,
	deleteFileUC usecases.DeleteFileExecutor,
	logger logger.Interface,
) *ThemeFilesHandler {
	return &ThemeFilesHandler{
		getStructureUC: getStructureUC,
		readFileUC:     readFileUC,
		writeFileUC:    writeFileUC,
		createFileUC:   createFileUC,
		deleteFileUC:   deleteFileUC,
		logger:         logger,
	}
}

// GetStructure handles GET /client-theme-files/installation/:installationId/structure
func (h *ThemeFilesHandler) GetStructure(c *gin.Context) {
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

	result, err := h.getStructureUC.Execute(c.Request.Context(), usecases.GetStructureQuery{
		InstallationSID: instSID,
		ActorID:         userID,
		IsAdmin:         middleware.IsAdmin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Structure)
}

// ReadFile handles GET /client-theme-files/installation/:installationId/file/*filePath
func (h *ThemeFilesHandler) ReadFile(c *gin.Context) {
	userID, instSID, filePath, ok := h.fileParams(c)
	if !ok {
		return
	}

	result, err := h.readFileUC.Execute(c.Request.Context(), usecases.ReadFileQuery{
		InstallationSID: instSID,
		FilePath:        filePath,
		ActorID:         userID,
		IsAdmin:         middleware.IsAdmin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"path":    filePath,
		"content": string(result.Content),
	})
}

// WriteFile handles PUT /client-theme-files/installation/:installationId/file/*filePath
// The raw request body is the new file content.
func (h *ThemeFilesHandler) WriteFile(c *gin.Context) {
	userID, instSID, filePath, ok := h.fileParams(c)
	if !ok {
		return
	}

	content, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := h.writeFileUC.Execute(c.Request.Context(), usecases.WriteFileCommand{
		InstallationSID: instSID,
		FilePath:        filePath,
		Content:         content,
		ActorID:         userID,
		IsAdmin:         middleware.IsAdmin(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "file saved", nil)
}

// CreateFile handles POST /client-theme-files/installation/:installationId/file/*filePath
func (h *ThemeFilesHandler) CreateFile(c *gin.Context) {
	userID, instSID, filePath, ok := h.fileParams(c)
	if !ok {
		return
	}

	content, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := h.createFileUC.Execute(c.Request.Context(), usecases.CreateFileCommand{
		InstallationSID: instSID,
		FilePath:        filePath,
		Content:         content,
		ActorID:         userID,
		IsAdmin:         middleware.IsAdmin(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"path": filePath}, "file created")
}

// DeleteFile handles DELETE /client-theme-files/installation/:installationId/file/*filePath
func (h *ThemeFilesHandler) DeleteFile(c *gin.Context) {
	userID, instSID, filePath, ok := h.fileParams(c)
	if !ok {
		return
	}

	if err := h.deleteFileUC.Execute(c.Request.Context(), usecases.DeleteFileCommand{
		InstallationSID: instSID,
		FilePath:        filePath,
		ActorID:         userID,
		IsAdmin:         middleware.IsAdmin(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "file deleted", nil)
}

func (h *ThemeFilesHandler) fileParams(c *gin.Context) (userID uint, instSID, filePath string, ok bool) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, "", "", false
	}

	instSID, err = utils.ParseSIDParam(c, "installationId", id.PrefixInstallation, "installation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, "", "", false
	}

	filePath = strings.TrimPrefix(c.Param("filePath"), "/")
	if filePath == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "file path is required")
		return 0, "", "", false
	}

	return userID, instSID, filePath, true
}
