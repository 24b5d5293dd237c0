package usecases

import (
	"context"

	"vitrine/internal/domain/installation"
	"vitrine/internal/domain/store"
	"vitrine/internal/infrastructure/themefs"
	"vitrine/internal/shared/logger"
)

type GetStructureQuery struct {
	InstallationSID string
	ActorID         uint
	IsAdmin         bool
}

type GetStructureResult struct {
	Structure []*themefs.Node
}

type GetStructureUseCase struct {
	access  accessChecker
	storage FileStorage
	logger  logger.Interface
}

func NewGetStructureUseCase(
	storeRepo store.Repository,
	instRepo installation.Repository,
	storage FileStorage,
	logger logger.Interface,
) *GetStructureUseCase {
	return &GetStructureUseCase{
		access:  accessChecker{storeRepo: storeRepo, instRepo: instRepo},
		storage: storage,
		logger:  logger,
	}
}

func (uc *GetStructureUseCase) Execute(ctx context.Context, query GetStructureQuery) (*GetStructureResult, error) {
	inst, err := uc.access.loadOwnedInstallation(ctx, query.InstallationSID, query.ActorID, query.IsAdmin)
	if err != nil {
		return nil, err
	}

	nodes, err := uc.storage.Tree(inst.InstallPath())
	if err != nil {
		uc.logger.Errorw("failed to read installation structure",
			"installation_id", inst.SID(), "error", err)
		return nil, err
	}

	return &GetStructureResult{Structure: nodes}, nil
}
