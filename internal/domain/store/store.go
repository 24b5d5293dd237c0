package store

import (
	"fmt"
	"time"

	"vitrine/internal/shared/id"
)

// Store is the minimal ownership record the theme subsystem needs; store
// provisioning itself lives elsewhere in the platform.
type Store struct {
	id        uint
	sid       string
	name      string
	ownerID   uint
	createdAt time.Time
	updatedAt time.Time
}

func NewStore(name string, ownerID uint) (*Store, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("store name is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixStore, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate store SID: %w", err)
	}

	now := time.Now()
	return &Store{
		sid:       sid,
		name:      name,
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStore(id uint, sid, name string, ownerID uint, createdAt, updatedAt time.Time) (*Store, error) {
	if id == 0 {
		return nil, fmt.Errorf("store ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("store SID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	return &Store{
		id:        id,
		sid:       sid,
		name:      name,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Store) ID() uint             { return s.id }
func (s *Store) SID() string          { return s.sid }
func (s *Store) Name() string         { return s.name }
func (s *Store) OwnerID() uint        { return s.ownerID }
func (s *Store) CreatedAt() time.Time { return s.createdAt }
func (s *Store) UpdatedAt() time.Time { return s.updatedAt }

func (s *Store) SetID(id uint) {
	s.id = id
}

func (s *Store) IsOwnedBy(userID uint) bool {
	return s.ownerID == userID
}
