package installation

import (
	"context"
	"time"
)

// RecentInstallation is a bounded per-user log of custom theme installs,
// used to surface "recently installed" in the dashboard.
type RecentInstallation struct {
	ID          uint
	UserID      uint
	ThemeSID    string
	StoreSID    string
	InstalledAt time.Time
}

// RecentKeep is how many entries survive per user after pruning.
const RecentKeep = 3

type RecentRepository interface {
	Record(ctx context.Context, entry *RecentInstallation) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]*RecentInstallation, error)
	// PruneBeyond deletes all but the newest keep entries for the user.
	PruneBeyond(ctx context.Context, userID uint, keep int) error
}
