package usecases

import (
	"context"

	"vitrine/internal/infrastructure/themefs"
)

// FileStorage is the slice of themefs.FileStore the sandboxed file
// operations need.
type FileStorage interface {
	Tree(installPath string) ([]*themefs.Node, error)
	ReadFile(installPath, rel string) ([]byte, error)
	WriteFile(installPath, rel string, data []byte) error
	CreateFile(installPath, rel string, data []byte) error
	DeleteFile(installPath, rel string) error
}

type GetStructureExecutor interface {
	Execute(ctx context.Context, query GetStructureQuery) (*GetStructureResult, error)
}

type ReadFileExecutor interface {
	Execute(ctx context.Context, query ReadFileQuery) (*ReadFileResult, error)
}

type WriteFileExecutor interface {
	Execute(ctx context.Context, cmd WriteFileCommand) error
}

type CreateFileExecutor interface {
	Execute(ctx context.Context, cmd CreateFileCommand) error
}

type DeleteFileExecutor interface {
	Execute(ctx context.Context, cmd DeleteFileCommand) error
}
