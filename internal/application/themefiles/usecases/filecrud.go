package usecases

import (
	"context"

	"vitrine/internal/domain/installation"
	"vitrine/internal/domain/store"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type ReadFileQuery struct {
	InstallationSID string
	FilePath        string
	ActorID         uint
	IsAdmin         bool
}

type ReadFileResult struct {
	Content []byte
}

type ReadFileUseCase struct {
	access  accessChecker
	storage FileStorage
	logger  logger.Interface
}

func NewReadFileUseCase(
	storeRepo store.Repository,
	instRepo installation.Repository,
	storage FileStorage,
	logger logger.Interface,
) *ReadFileUseCase {
	return &ReadFileUseCase{
		access:  accessChecker{storeRepo: storeRepo, instRepo: instRepo},
		storage: storage,
		logger:  logger,
	}
}

func (uc *ReadFileUseCase) Execute(ctx context.Context, query ReadFileQuery) (*ReadFileResult, error) {
	inst, err := uc.access.loadOwnedInstallation(ctx, query.InstallationSID, query.ActorID, query.IsAdmin)
	if err != nil {
		return nil, err
	}

	content, err := uc.storage.ReadFile(inst.InstallPath(), query.FilePath)
	if err != nil {
		return nil, err
	}
	return &ReadFileResult{Content: content}, nil
}

type WriteFileCommand struct {
	InstallationSID string
	FilePath        string
	Content         []byte
	ActorID         uint
	IsAdmin         bool
}

type WriteFileUseCase struct {
	access  accessChecker
	storage FileStorage
	logger  logger.Interface
}

func NewWriteFileUseCase(
	storeRepo store.Repository,
	instRepo installation.Repository,
	storage FileStorage,
	logger logger.Interface,
) *WriteFileUseCase {
	return &WriteFileUseCase{
		access:  accessChecker{storeRepo: storeRepo, instRepo: instRepo},
		storage: storage,
		logger:  logger,
	}
}

func (uc *WriteFileUseCase) Execute(ctx context.Context, cmd WriteFileCommand) error {
	if cmd.FilePath == "" {
		return errors.NewValidationError("file path is required")
	}

	inst, err := uc.access.loadOwnedInstallation(ctx, cmd.InstallationSID, cmd.ActorID, cmd.IsAdmin)
	if err != nil {
		return err
	}

	if err := uc.storage.WriteFile(inst.InstallPath(), cmd.FilePath, cmd.Content); err != nil {
		return err
	}

	uc.logger.Infow("theme file written",
		"installation_id", inst.SID(), "path", cmd.FilePath, "size", len(cmd.Content))
	return nil
}

type CreateFileCommand struct {
	InstallationSID string
	FilePath        string
	Content         []byte
	ActorID         uint
	IsAdmin         bool
}

type CreateFileUseCase struct {
	access  accessChecker
	storage FileStorage
	logger  logger.Interface
}

func NewCreateFileUseCase(
	storeRepo store.Repository,
	instRepo installation.Repository,
	storage FileStorage,
	logger logger.Interface,
) *CreateFileUseCase {
	return &CreateFileUseCase{
		access:  accessChecker{storeRepo: storeRepo, instRepo: instRepo},
		storage: storage,
		logger:  logger,
	}
}

func (uc *CreateFileUseCase) Execute(ctx context.Context, cmd CreateFileCommand) error {
	if cmd.FilePath == "" {
		return errors.NewValidationError("file path is required")
	}

	inst, err := uc.access.loadOwnedInstallation(ctx, cmd.InstallationSID, cmd.ActorID, cmd.IsAdmin)
	if err != nil {
		return err
	}

	if err := uc.storage.CreateFile(inst.InstallPath(), cmd.FilePath, cmd.Content); err != nil {
		return err
	}

	uc.logger.Infow("theme file created",
		"installation_id", inst.SID(), "path", cmd.FilePath)
	return nil
}

type DeleteFileCommand struct {
	InstallationSID string
	FilePath        string
	ActorID         uint
	IsAdmin         bool
}

// DeleteFileUseCase removes one file from the sandbox and bumps the
// installation's updated_at so clients can detect the change.
type DeleteFileUseCase struct {
	access   accessChecker
	instRepo installation.Repository
	storage  FileStorage
	logger   logger.Interface
}

func NewDeleteFileUseCase(
	storeRepo store.Repository,
	instRepo installation.Repository,
	storage FileStorage,
	logger logger.Interface,
) *DeleteFileUseCase {
	return &DeleteFileUseCase{
		access:   accessChecker{storeRepo: storeRepo, instRepo: instRepo},
		instRepo: instRepo,
		storage:  storage,
		logger:   logger,
	}
}

func (uc *DeleteFileUseCase) Execute(ctx context.Context, cmd DeleteFileCommand) error {
	if cmd.FilePath == "" {
		return errors.NewValidationError("file path is required")
	}

	inst, err := uc.access.loadOwnedInstallation(ctx, cmd.InstallationSID, cmd.ActorID, cmd.IsAdmin)
	if err != nil {
		return err
	}

	if err := uc.storage.DeleteFile(inst.InstallPath(), cmd.FilePath); err != nil {
		return err
	}

	inst.Touch()
	if err := uc.instRepo.Update(ctx, inst); err != nil {
		uc.logger.Warnw("failed to bump installation after file delete",
			"installation_id", inst.SID(), "error", err)
	}

	uc.logger.Infow("theme file deleted",
		"installation_id", inst.SID(), "path", cmd.FilePath)
	return nil
}
