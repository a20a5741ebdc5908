//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"flashcard_keep/internal/config"
	"flashcard_keep/internal/middleware"
	"flashcard_keep/internal/model"
)

// CardRepository はユーザー1人分のカードを丸ごと読み書きします。
type CardRepository interface {
	Load(ctx context.Context, identityKey string) (model.UserCollection, error)
	Write(ctx context.Context, identityKey string, cards model.UserCollection) error
	Path(identityKey string) string
}

// fileCardRepository は保存キーごとに1つの JSON ファイルを持ちます。
// 書き込みは上書きのみで、途中でプロセスが落ちるとファイルが壊れる可能性があります。
type fileCardRepository struct {
	dir     string
	pattern string
	logger  *slog.Logger
}

func NewFileCardRepository(cfg config.StorageConfig, logger *slog.Logger) CardRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &fileCardRepository{
		dir:     cfg.Dir,
		pattern: cfg.FilePattern,
		logger:  logger,
	}
}

// loggerFor はリクエストスコープのロガーがあればそれを、無ければ生成時のロガーを返します。
func (r *fileCardRepository) loggerFor(ctx context.Context) *slog.Logger {
	if logger, ok := middleware.LoggerFromContext(ctx); ok {
		return logger
	}
	return r.logger
}

func (r *fileCardRepository) Path(identityKey string) string {
	return filepath.Join(r.dir, fmt.Sprintf(r.pattern, identityKey))
}

// Load はファイルが存在しなければ空のコレクションを返します。
// 中身が JSON として読めない場合は model.ErrCorruptStore をラップして返し、ファイルには触りません。
func (r *fileCardRepository) Load(ctx context.Context, identityKey string) (model.UserCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := r.loggerFor(ctx)
	path := r.Path(identityKey)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.UserCollection{}, nil
		}
		logger.Error("Error reading card file", "error", err, "path", path)
		return nil, fmt.Errorf("fileCardRepository.Load: %w", err)
	}

	cards := model.UserCollection{}
	if len(data) == 0 {
		return cards, nil
	}
	if err := json.Unmarshal(data, &cards); err != nil {
		logger.Error("Card file is not valid JSON", "error", err, "path", path)
		return nil, fmt.Errorf("fileCardRepository.Load %s: %w: %v", path, model.ErrCorruptStore, err)
	}
	if cards == nil {
		// ファイルの中身が "null" の場合
		cards = model.UserCollection{}
	}
	return cards, nil
}

func (r *fileCardRepository) Write(ctx context.Context, identityKey string, cards model.UserCollection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := r.loggerFor(ctx)
	path := r.Path(identityKey)

	if cards == nil {
		cards = model.UserCollection{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("fileCardRepository.Write: %w", err)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		logger.Error("Error creating storage directory", "error", err, "dir", r.dir)
		return fmt.Errorf("fileCardRepository.Write: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error("Error writing card file", "error", err, "path", path)
		return fmt.Errorf("fileCardRepository.Write: %w", err)
	}

	logger.Debug("Card file written", "path", path, "count", len(cards))
	return nil
}
