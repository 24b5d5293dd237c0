package usecases

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/services/htmlrewrite"
)

// PreviewStorage resolves custom theme files for public serving.
type PreviewStorage interface {
	ResolveFile(dirName, rel string) (string, error)
	HasStylesheet(dirName string) bool
}

type PreviewFileQuery struct {
	ThemeSID string
	FilePath string
}

type PreviewFileResult struct {
	Content     []byte
	ContentType string
}

type PreviewFileExecutor interface {
	Execute(ctx context.Context, query PreviewFileQuery) (*PreviewFileResult, error)
}

// PreviewFileUseCase serves custom theme files for embedding. HTML pages get
// their relative URLs rebased back into this endpoint so the browser can
// resolve assets; everything else is served as-is with an extension-inferred
// content type.
type PreviewFileUseCase struct {
	repo    customtheme.Repository
	storage PreviewStorage
	baseURL string
	logger  logger.Interface
}

func NewPreviewFileUseCase(
	repo customtheme.Repository,
	storage PreviewStorage,
	baseURL string,
	logger logger.Interface,
) *PreviewFileUseCase {
	return &PreviewFileUseCase{
		repo:    repo,
		storage: storage,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (uc *PreviewFileUseCase) Execute(ctx context.Context, query PreviewFileQuery) (*PreviewFileResult, error) {
	entity, err := uc.repo.GetBySID(ctx, query.ThemeSID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("custom theme not found")
	}

	rel := query.FilePath
	if rel == "" {
		rel = "index.html"
	}

	abs, err := uc.storage.ResolveFile(entity.ThemePath(), rel)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("file not found", rel)
		}
		uc.logger.Errorw("failed to read preview file",
			"theme_id", entity.SID(), "path", rel, "error", err)
		return nil, errors.NewInternalError("failed to read file", err.Error())
	}

	if isHTMLPath(rel) {
		rewriter := htmlrewrite.NewRewriter(uc.baseURL, entity.SID(), uc.storage.HasStylesheet(entity.ThemePath()))
		rewritten, err := rewriter.Rewrite(content)
		if err != nil {
			uc.logger.Warnw("failed to rewrite preview page",
				"theme_id", entity.SID(), "path", rel, "error", err)
		} else {
			content = rewritten
		}
		return &PreviewFileResult{Content: content, ContentType: "text/html; charset=utf-8"}, nil
	}

	return &PreviewFileResult{Content: content, ContentType: contentTypeFor(rel)}, nil
}

func isHTMLPath(rel string) bool {
	ext := strings.ToLower(filepath.Ext(rel))
	return ext == ".html" || ext == ".htm"
}

func contentTypeFor(rel string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(rel))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
