package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/application/installation/usecases"
	"vitrine/internal/infrastructure/auth"
	"vitrine/internal/interfaces/http/handlers/testutil"
	"vitrine/internal/shared/errors"
)

type mockInstallThemeUC struct {
	lastCmd usecases.InstallThemeCommand
	result  *usecases.InstallThemeResult
	err     error
}

func (m *mockInstallThemeUC) Execute(ctx context.Context, cmd usecases.InstallThemeCommand) (*usecases.InstallThemeResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockUninstallThemeUC struct {
	lastCmd usecases.UninstallThemeCommand
	err     error
}

func (m *mockUninstallThemeUC) Execute(ctx context.Context, cmd usecases.UninstallThemeCommand) error {
	m.lastCmd = cmd
	return m.err
}

type mockCustomizeThemeUC struct {
	lastCmd usecases.CustomizeThemeCommand
	result  *usecases.CustomizeThemeResult
	err     error
}

func (m *mockCustomizeThemeUC) Execute(ctx context.Context, cmd usecases.CustomizeThemeCommand) (*usecases.CustomizeThemeResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListInstallationsUC struct {
	lastQuery usecases.ListInstallationsQuery
	result    *usecases.ListInstallationsResult
	err       error
}

func (m *mockListInstallationsUC) Execute(ctx context.Context, query usecases.ListInstallationsQuery) (*usecases.ListInstallationsResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

func newTestInstallationHandler(
	installUC usecases.InstallThemeExecutor,
	uninstallUC usecases.UninstallThemeExecutor,
	customizeUC usecases.CustomizeThemeExecutor,
	listUC usecases.ListInstallationsExecutor,
) *InstallationHandler {
	return NewInstallationHandler(installUC, uninstallUC, customizeUC, listUC, testutil.NewMockLogger())
}

func TestInstallationHandler_InstallTheme_Success(t *testing.T) {
	mockUC := &mockInstallThemeUC{result: &usecases.InstallThemeResult{
		Installation: usecases.InstallationView{SID: "ins_abc123", StoreSID: "st_1", IsActive: true},
	}}
	handler := newTestInstallationHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/client-theme/install", map[string]string{
		"theme_id": "thm_abc123",
		"store_id": "st_1",
	})
	testutil.SetAuthContext(c, 42, auth.RoleMerchant)

	handler.InstallTheme(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "thm_abc123", mockUC.lastCmd.ThemeSID)
	assert.Equal(t, "st_1", mockUC.lastCmd.StoreSID)
	assert.Equal(t, uint(42), mockUC.lastCmd.ActorID)
	assert.False(t, mockUC.lastCmd.IsAdmin)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestInstallationHandler_InstallTheme_MissingBody(t *testing.T) {
	handler := newTestInstallationHandler(&mockInstallThemeUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/client-theme/install", map[string]string{
		"theme_id": "thm_abc123",
	})
	testutil.SetAuthContext(c, 42, auth.RoleMerchant)

	handler.InstallTheme(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInstallationHandler_InstallTheme_Unauthenticated(t *testing.T) {
	handler := newTestInstallationHandler(&mockInstallThemeUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/client-theme/install", map[string]string{
		"theme_id": "thm_abc123",
		"store_id": "st_1",
	})

	handler.InstallTheme(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInstallationHandler_InstallTheme_UseCaseError(t *testing.T) {
	mockUC := &mockInstallThemeUC{err: errors.NewForbiddenError("store does not belong to you")}
	handler := newTestInstallationHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/client-theme/install", map[string]string{
		"theme_id": "thm_abc123",
		"store_id": "st_1",
	})
	testutil.SetAuthContext(c, 42, auth.RoleMerchant)

	handler.InstallTheme(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInstallationHandler_ActivateTheme_PassesAdminFlag(t *testing.T) {
	mockUC := &mockInstallThemeUC{result: &usecases.InstallThemeResult{
		Installation: usecases.InstallationView{SID: "ins_abc123", IsActive: true},
	}}
	handler := newTestInstallationHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/installed-themes/", map[string]string{
		"theme_id": "thm_abc123",
		"store_id": "st_1",
	})
	testutil.SetAuthContext(c, 7, auth.RoleAdmin)

	handler.ActivateTheme(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastCmd.IsAdmin)
}

func TestInstallationHandler_UninstallTheme_SoftDoesNotPurge(t *testing.T) {
	mockUC := &mockUninstallThemeUC{}
	handler := newTestInstallationHandler(nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/client-theme/installation/ins_abc123", nil)
	testutil.SetAuthContext(c, 42, auth.RoleMerchant)
	testutil.SetURLParam(c, "installationId", "ins_abc123")

	handler.UninstallTheme(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ins_abc123", mockUC.lastCmd.InstallationSID)
	assert.False(t, mockUC.lastCmd.Purge)
}

func TestInstallationHandler_PurgeInstallation_SetsPurge(t *testing.T) {
	mockUC := &mockUninstallThemeUC{}
	handler := newTestInstallationHandler(nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/installed-themes/ins_abc123", nil)
	testutil.SetAuthContext(c, 42, auth.RoleMerchant)
	testutil.SetURLParam(c, "installedThemeId", "ins_abc123")

	handler.PurgeInstallation(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastCmd.Purge)
}

func TestInstallationHandler_CustomizeTheme_ForwardsPayload(t *testing.T) {
	mockUC := &mockCustomizeThemeUC{result: &usecases.CustomizeThemeResult{}}
	handler := newTestInstallationHandler(nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/client-theme/installation/ins_abc123/customize", map[string]any{
		"colors": map[string]string{"primary": "#ff0000"},
	})
	testutil.SetAuthContext(c, 42, auth.RoleMerchant)
	testutil.SetURLParam(c, "installationId", "ins_abc123")

	handler.CustomizeTheme(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"colors":{"primary":"#ff0000"}}`, string(mockUC.lastCmd.Payload))
}

func TestInstallationHandler_ListActiveInstallations_SetsActiveOnly(t *testing.T) {
	mockUC := &mockListInstallationsUC{result: &usecases.ListInstallationsResult{}}
	handler := newTestInstallationHandler(nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/installed-themes/store/st_1", nil)
	testutil.SetAuthContext(c, 42, auth.RoleMerchant)
	testutil.SetURLParam(c, "storeId", "st_1")

	handler.ListActiveInstallations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastQuery.ActiveOnly)
	assert.Equal(t, "st_1", mockUC.lastQuery.StoreSID)
}

func TestInstallationHandler_ListInstallations_AllForStore(t *testing.T) {
	mockUC := &mockListInstallationsUC{result: &usecases.ListInstallationsResult{}}
	handler := newTestInstallationHandler(nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/client-theme/store/st_1/themes", nil)
	testutil.SetAuthContext(c, 42, auth.RoleMerchant)
	testutil.SetURLParam(c, "storeId", "st_1")

	handler.ListInstallations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, mockUC.lastQuery.ActiveOnly)
}
