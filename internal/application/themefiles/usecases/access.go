package usecases

import (
	"context"

	"vitrine/internal/domain/installation"
	"vitrine/internal/domain/store"
	"vitrine/internal/shared/errors"
)

// accessChecker resolves an installation by SID and verifies the caller owns
// the store it belongs to. Every file operation goes through it.
type accessChecker struct {
	storeRepo store.Repository
	instRepo  installation.Repository
}

func (a accessChecker) loadOwnedInstallation(ctx context.Context, sid string, actorID uint, isAdmin bool) (*installation.Installation, error) {
	inst, err := a.instRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, errors.NewNotFoundError("installation not found")
	}

	st, err := a.storeRepo.GetBySID(ctx, inst.StoreSID())
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, errors.NewNotFoundError("store not found")
	}
	if !st.IsOwnedBy(actorID) && !isAdmin {
		return nil, errors.NewForbiddenError("store does not belong to you")
	}
	return inst, nil
}
