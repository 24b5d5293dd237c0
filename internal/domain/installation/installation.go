package installation

import (
	"encoding/json"
	"fmt"
	"time"

	vo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/shared/id"
)

// Customization is one applied edit payload. The database row holds the
// canonical ordered list; the on-disk manifest is rebuilt from it.
type Customization struct {
	Payload   json.RawMessage `json:"payload"`
	AppliedAt time.Time       `json:"applied_at"`
}

type Installation struct {
	id             uint
	sid            string
	storeSID       string
	themeRef       vo.ThemeRef
	installPath    string
	status         vo.Status
	isActive       bool
	installedAt    time.Time
	uninstalledAt  *time.Time
	customizations []Customization
	createdAt      time.Time
	updatedAt      time.Time
}

func NewInstallation(storeSID string, themeRef vo.ThemeRef, installPath string) (*Installation, error) {
	if len(storeSID) == 0 {
		return nil, fmt.Errorf("store SID is required")
	}
	if themeRef.IsZero() {
		return nil, fmt.Errorf("theme ref is required")
	}
	if len(installPath) == 0 {
		return nil, fmt.Errorf("install path is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixInstallation, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate installation SID: %w", err)
	}

	now := time.Now()
	return &Installation{
		sid:            sid,
		storeSID:       storeSID,
		themeRef:       themeRef,
		installPath:    installPath,
		status:         vo.StatusInstalled,
		installedAt:    now,
		customizations: []Customization{},
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructInstallation(
	id uint,
	sid string,
	storeSID string,
	themeRef vo.ThemeRef,
	installPath string,
	status vo.Status,
	isActive bool,
	installedAt time.Time,
	uninstalledAt *time.Time,
	customizations []Customization,
	createdAt, updatedAt time.Time,
) (*Installation, error) {
	if id == 0 {
		return nil, fmt.Errorf("installation ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("installation SID is required")
	}
	if len(storeSID) == 0 {
		return nil, fmt.Errorf("store SID is required")
	}
	if themeRef.IsZero() {
		return nil, fmt.Errorf("theme ref is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid installation status")
	}

	if customizations == nil {
		customizations = []Customization{}
	}

	return &Installation{
		id:             id,
		sid:            sid,
		storeSID:       storeSID,
		themeRef:       themeRef,
		installPath:    installPath,
		status:         status,
		isActive:       isActive,
		installedAt:    installedAt,
		uninstalledAt:  uninstalledAt,
		customizations: customizations,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (i *Installation) ID() uint                        { return i.id }
func (i *Installation) SID() string                     { return i.sid }
func (i *Installation) StoreSID() string                { return i.storeSID }
func (i *Installation) ThemeRef() vo.ThemeRef           { return i.themeRef }
func (i *Installation) InstallPath() string             { return i.installPath }
func (i *Installation) Status() vo.Status               { return i.status }
func (i *Installation) IsActive() bool                  { return i.isActive }
func (i *Installation) InstalledAt() time.Time          { return i.installedAt }
func (i *Installation) UninstalledAt() *time.Time       { return i.uninstalledAt }
func (i *Installation) Customizations() []Customization { return i.customizations }
func (i *Installation) CreatedAt() time.Time            { return i.createdAt }
func (i *Installation) UpdatedAt() time.Time            { return i.updatedAt }

func (i *Installation) SetID(id uint) {
	i.id = id
}

func (i *Installation) Activate() {
	i.isActive = true
	i.updatedAt = time.Now()
}

func (i *Installation) Deactivate() {
	i.isActive = false
	i.updatedAt = time.Now()
}

// Reinstall puts a previously uninstalled installation back into service
// without creating a duplicate row.
func (i *Installation) Reinstall() {
	now := time.Now()
	i.status = vo.StatusInstalled
	i.installedAt = now
	i.uninstalledAt = nil
	i.updatedAt = now
}

func (i *Installation) MarkUninstalled() {
	now := time.Now()
	i.status = vo.StatusUninstalled
	i.isActive = false
	i.uninstalledAt = &now
	i.updatedAt = now
}

func (i *Installation) IsUninstalled() bool {
	return i.status == vo.StatusUninstalled
}

func (i *Installation) ApplyCustomization(payload json.RawMessage) error {
	if len(payload) == 0 {
		return fmt.Errorf("customization payload is required")
	}
	if !json.Valid(payload) {
		return fmt.Errorf("customization payload is not valid JSON")
	}
	i.customizations = append(i.customizations, Customization{
		Payload:   payload,
		AppliedAt: time.Now(),
	})
	i.updatedAt = time.Now()
	return nil
}

func (i *Installation) Touch() {
	i.updatedAt = time.Now()
}
