package customtheme

import (
	"fmt"
	"strings"
	"time"

	"vitrine/internal/shared/id"
)

// Directories records where the pieces of a custom theme live on disk,
// relative to the storage root.
type Directories struct {
	Theme         string `json:"theme"`
	Thumbnail     string `json:"thumbnail"`
	UnzippedTheme string `json:"unzippedTheme"`
}

type FileMeta struct {
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	ContentType  string `json:"contentType"`
}

// CustomTheme is a merchant-uploaded theme. The HTML/CSS bodies are never
// stored on the entity; they are read from disk per request.
type CustomTheme struct {
	id          uint
	sid         string
	name        string
	themePath   string
	directories Directories
	thumbnail   *FileMeta
	creatorID   uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCustomTheme(name, themePath string, creatorID uint) (*CustomTheme, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("theme name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("theme name exceeds maximum length of 200 characters")
	}
	if len(themePath) == 0 {
		return nil, fmt.Errorf("theme path is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixCustomTheme, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate custom theme SID: %w", err)
	}

	now := time.Now()
	return &CustomTheme{
		sid:       sid,
		name:      name,
		themePath: themePath,
		creatorID: creatorID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomTheme(
	id uint,
	sid string,
	name string,
	themePath string,
	directories Directories,
	thumbnail *FileMeta,
	creatorID uint,
	createdAt, updatedAt time.Time,
) (*CustomTheme, error) {
	if id == 0 {
		return nil, fmt.Errorf("custom theme ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("custom theme SID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("theme name is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &CustomTheme{
		id:          id,
		sid:         sid,
		name:        name,
		themePath:   themePath,
		directories: directories,
		thumbnail:   thumbnail,
		creatorID:   creatorID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *CustomTheme) ID() uint                 { return c.id }
func (c *CustomTheme) SID() string              { return c.sid }
func (c *CustomTheme) Name() string             { return c.name }
func (c *CustomTheme) ThemePath() string        { return c.themePath }
func (c *CustomTheme) Directories() Directories { return c.directories }
func (c *CustomTheme) Thumbnail() *FileMeta     { return c.thumbnail }
func (c *CustomTheme) CreatorID() uint          { return c.creatorID }
func (c *CustomTheme) CreatedAt() time.Time     { return c.createdAt }
func (c *CustomTheme) UpdatedAt() time.Time     { return c.updatedAt }

func (c *CustomTheme) SetID(id uint) {
	c.id = id
}

func (c *CustomTheme) SetDirectories(dirs Directories) {
	c.directories = dirs
	c.updatedAt = time.Now()
}

func (c *CustomTheme) SetThumbnail(meta *FileMeta) {
	c.thumbnail = meta
	c.updatedAt = time.Now()
}

func (c *CustomTheme) Rename(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("theme name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("theme name exceeds maximum length of 200 characters")
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}

func (c *CustomTheme) IsOwnedBy(userID uint) bool {
	return c.creatorID == userID
}
