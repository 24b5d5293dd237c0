package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/application/themefiles/usecases"
	"vitrine/internal/infrastructure/auth"
	"vitrine/internal/interfaces/http/handlers/testutil"
)

type mockReadFileUC struct {
	lastQuery usecases.ReadFileQuery
	result    *usecases.ReadFileResult
	err       error
}

func (m *mockReadFileUC) Execute(ctx context.Context, query usecases.ReadFileQuery) (*usecases.ReadFileResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockWriteFileUC struct {
	lastCmd usecases.WriteFileCommand
	err     error
}

func (m *mockWriteFileUC) Execute(ctx context.Context, cmd usecases.WriteFileCommand) error {
	m.lastCmd = cmd
	return m.err
}

type mockDeleteFileUC struct {
	lastCmd usecases.DeleteFileCommand
	err     error
}

func (m *mockDeleteFileUC) Execute(ctx context.Context, cmd usecases.DeleteFileCommand) error {
	m.lastCmd = cmd
	return m.err
}

func newTestThemeFilesHandler(readUC *mockReadFileUC, writeUC *mockWriteFileUC, deleteUC *mockDeleteFileUC) *ThemeFilesHandler {
	return NewThemeFilesHandler(nil, readUC, writeUC, nil, deleteUC, testutil.NewMockLogger())
}

func TestThemeFilesHandler_ReadFile_TrimsWildcardSlash(t *testing.T) {
	mockUC := &mockReadFileUC{result: &usecases.ReadFileResult{Content: []byte("body { color: red; }")}}
	handler := newTestThemeFilesHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/client-theme-files/installation/ins_abc123/file/css/style.css", nil)
	testutil.SetAuthContext(c, 42, auth.RoleMerchant)
	testutil.SetURLParam(c, "installationId", "ins_abc123")
	testutil.SetURLParam(c, "filePath", "/css/style.css")

	handler.ReadFile(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "css/style.css", mockUC.lastQuery.FilePath)
	assert.Equal(t, "ins_abc123", mockUC.lastQuery.InstallationSID)
	assert.Equal(t, uint(42), mockUC.lastQuery.ActorID)
	assert.False(t, mockUC.lastQuery.IsAdmin)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, w.Body.String(), "color: red")
}

func TestThemeFilesHandler_ReadFile_EmptyPath(t *testing.T) {
	mockUC := &mockReadFileUC{}
	handler := newTestThemeFilesHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/client-theme-files/installation/ins_abc123/file/", nil)
	testutil.SetAuthContext(c, 42, auth.RoleMerchant)
	testutil.SetURLParam(c, "installationId", "ins_abc123")
	testutil.SetURLParam(c, "filePath", "/")

	handler.ReadFile(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockUC.lastQuery.InstallationSID)
}

func TestThemeFilesHandler_ReadFile_Unauthenticated(t *testing.T) {
	handler := newTestThemeFilesHandler(&mockReadFileUC{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/client-theme-files/installation/ins_abc123/file/index.html", nil)
	testutil.SetURLParam(c, "installationId", "ins_abc123")
	testutil.SetURLParam(c, "filePath", "/index.html")

	handler.ReadFile(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestThemeFilesHandler_WriteFile_BodyIsContent(t *testing.T) {
	mockUC := &mockWriteFileUC{}
	handler := newTestThemeFilesHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/client-theme-files/installation/ins_abc123/file/index.html", nil)
	c.Request.Body = io.NopCloser(strings.NewReader("<h1>updated</h1>"))
	testutil.SetAuthContext(c, 7, auth.RoleAdmin)
	testutil.SetURLParam(c, "installationId", "ins_abc123")
	testutil.SetURLParam(c, "filePath", "/index.html")

	handler.WriteFile(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte("<h1>updated</h1>"), mockUC.lastCmd.Content)
	assert.Equal(t, "index.html", mockUC.lastCmd.FilePath)
	assert.True(t, mockUC.lastCmd.IsAdmin)
}

func TestThemeFilesHandler_DeleteFile(t *testing.T) {
	mockUC := &mockDeleteFileUC{}
	handler := newTestThemeFilesHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodDelete, "/client-theme-files/installation/ins_abc123/file/old.css", nil)
	testutil.SetAuthContext(c, 7, auth.RoleMerchant)
	testutil.SetURLParam(c, "installationId", "ins_abc123")
	testutil.SetURLParam(c, "filePath", "/old.css")

	handler.DeleteFile(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "old.css", mockUC.lastCmd.FilePath)
	assert.Equal(t, uint(7), mockUC.lastCmd.ActorID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "file deleted", resp.Message)
}
