package usecases

import (
	"context"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/domain/installation"
	"vitrine/internal/shared/logger"
)

type ListRecentInstallationsQuery struct {
	ActorID uint
}

type ListRecentInstallationsResult struct {
	Installations []RecentInstallationView
}

type ListRecentInstallationsUseCase struct {
	repo       customtheme.Repository
	recentRepo installation.RecentRepository
	logger     logger.Interface
}

func NewListRecentInstallationsUseCase(
	repo customtheme.Repository,
	recentRepo installation.RecentRepository,
	logger logger.Interface,
) *ListRecentInstallationsUseCase {
	return &ListRecentInstallationsUseCase{repo: repo, recentRepo: recentRepo, logger: logger}
}

func (uc *ListRecentInstallationsUseCase) Execute(ctx context.Context, query ListRecentInstallationsQuery) (*ListRecentInstallationsResult, error) {
	entries, err := uc.recentRepo.ListByUser(ctx, query.ActorID, installation.RecentKeep)
	if err != nil {
		uc.logger.Errorw("failed to list recent installations", "user_id", query.ActorID, "error", err)
		return nil, err
	}

	views := make([]RecentInstallationView, 0, len(entries))
	for _, entry := range entries {
		name := ""
		if t, err := uc.repo.GetBySID(ctx, entry.ThemeSID); err == nil && t != nil {
			name = t.Name()
		}
		views = append(views, NewRecentInstallationView(entry, name))
	}

	return &ListRecentInstallationsResult{Installations: views}, nil
}
