package store

import "context"

type Repository interface {
	Save(ctx context.Context, store *Store) error
	GetBySID(ctx context.Context, sid string) (*Store, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*Store, error)
}
