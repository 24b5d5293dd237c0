package theme

import (
	"fmt"
	"strings"
	"time"

	vo "vitrine/internal/domain/theme/value_objects"
	"vitrine/internal/shared/id"
)

// Directories records where the pieces of a catalog theme live on disk,
// relative to the storage root.
type Directories struct {
	Theme     string `json:"theme"`
	Code      string `json:"code"`
	Zipped    string `json:"zipped"`
	Thumbnail string `json:"thumbnail"`
}

// FileMeta describes an uploaded artifact (archive or thumbnail).
type FileMeta struct {
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	ContentType  string `json:"contentType"`
}

type Theme struct {
	id            uint
	sid           string
	name          string
	description   string
	category      vo.Category
	planTier      vo.PlanTier
	price         float64
	themePath     string
	directories   Directories
	zipFile       *FileMeta
	thumbnail     *FileMeta
	version       string
	tags          []string
	isActive      bool
	installCount  int64
	downloadCount int64
	ratingSum     int64
	ratingCount   int64
	uploaderID    uint
	createdAt     time.Time
	updatedAt     time.Time
}

func NewTheme(
	name string,
	description string,
	category vo.Category,
	planTier vo.PlanTier,
	price float64,
	themePath string,
	uploaderID uint,
) (*Theme, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("theme name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("theme name exceeds maximum length of 200 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !planTier.IsValid() {
		return nil, fmt.Errorf("invalid plan tier")
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixTheme, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate theme SID: %w", err)
	}

	// The SID doubles as the catalog directory name unless a path is given.
	if themePath == "" {
		themePath = sid
	}

	now := time.Now()
	return &Theme{
		sid:         sid,
		name:        name,
		description: description,
		category:    category,
		planTier:    planTier,
		price:       price,
		themePath:   themePath,
		version:     "1.0.0",
		tags:        []string{},
		isActive:    true,
		uploaderID:  uploaderID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTheme(
	id uint,
	sid string,
	name string,
	description string,
	category vo.Category,
	planTier vo.PlanTier,
	price float64,
	themePath string,
	directories Directories,
	zipFile *FileMeta,
	thumbnail *FileMeta,
	version string,
	tags []string,
	isActive bool,
	installCount int64,
	downloadCount int64,
	ratingSum int64,
	ratingCount int64,
	uploaderID uint,
	createdAt, updatedAt time.Time,
) (*Theme, error) {
	if id == 0 {
		return nil, fmt.Errorf("theme ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("theme SID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("theme name is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !planTier.IsValid() {
		return nil, fmt.Errorf("invalid plan tier")
	}

	if tags == nil {
		tags = []string{}
	}

	return &Theme{
		id:            id,
		sid:           sid,
		name:          name,
		description:   description,
		category:      category,
		planTier:      planTier,
		price:         price,
		themePath:     themePath,
		directories:   directories,
		zipFile:       zipFile,
		thumbnail:     thumbnail,
		version:       version,
		tags:          tags,
		isActive:      isActive,
		installCount:  installCount,
		downloadCount: downloadCount,
		ratingSum:     ratingSum,
		ratingCount:   ratingCount,
		uploaderID:    uploaderID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *Theme) ID() uint                 { return t.id }
func (t *Theme) SID() string              { return t.sid }
func (t *Theme) Name() string             { return t.name }
func (t *Theme) Description() string      { return t.description }
func (t *Theme) Category() vo.Category    { return t.category }
func (t *Theme) PlanTier() vo.PlanTier    { return t.planTier }
func (t *Theme) Price() float64           { return t.price }
func (t *Theme) ThemePath() string        { return t.themePath }
func (t *Theme) Directories() Directories { return t.directories }
func (t *Theme) ZipFile() *FileMeta       { return t.zipFile }
func (t *Theme) Thumbnail() *FileMeta     { return t.thumbnail }
func (t *Theme) Version() string          { return t.version }
func (t *Theme) Tags() []string           { return t.tags }
func (t *Theme) IsActive() bool           { return t.isActive }
func (t *Theme) InstallCount() int64      { return t.installCount }
func (t *Theme) DownloadCount() int64     { return t.downloadCount }
func (t *Theme) RatingSum() int64         { return t.ratingSum }
func (t *Theme) RatingCount() int64       { return t.ratingCount }
func (t *Theme) UploaderID() uint         { return t.uploaderID }
func (t *Theme) CreatedAt() time.Time     { return t.createdAt }
func (t *Theme) UpdatedAt() time.Time     { return t.updatedAt }

func (t *Theme) SetID(id uint) {
	t.id = id
}

func (t *Theme) SetDirectories(dirs Directories) {
	t.directories = dirs
	t.updatedAt = time.Now()
}

func (t *Theme) SetZipFile(meta *FileMeta) {
	t.zipFile = meta
	t.updatedAt = time.Now()
}

func (t *Theme) SetThumbnail(meta *FileMeta) {
	t.thumbnail = meta
	t.updatedAt = time.Now()
}

func (t *Theme) SetTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	t.tags = tags
	t.updatedAt = time.Now()
}

func (t *Theme) UpdateDetails(name, description string, price float64) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("theme name is required")
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	t.name = name
	t.description = description
	t.price = price
	t.updatedAt = time.Now()
	return nil
}

func (t *Theme) Activate() {
	t.isActive = true
	t.updatedAt = time.Now()
}

func (t *Theme) Deactivate() {
	t.isActive = false
	t.updatedAt = time.Now()
}

func (t *Theme) RecordInstall() {
	t.installCount++
	t.updatedAt = time.Now()
}

// RecordUninstall decrements the install counter, never below zero.
func (t *Theme) RecordUninstall() {
	if t.installCount > 0 {
		t.installCount--
	}
	t.updatedAt = time.Now()
}

func (t *Theme) RecordDownload() {
	t.downloadCount++
	t.updatedAt = time.Now()
}

func (t *Theme) AddRating(score int) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	t.ratingSum += int64(score)
	t.ratingCount++
	t.updatedAt = time.Now()
	return nil
}

func (t *Theme) AverageRating() float64 {
	if t.ratingCount == 0 {
		return 0
	}
	return float64(t.ratingSum) / float64(t.ratingCount)
}
