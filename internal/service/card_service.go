//go:generate mockery --name CardService --output ./mocks --outpkg mocks --structname MockCardService --case=underscore

// internal/service/card_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flashcard_keep/internal/config"
	"flashcard_keep/internal/middleware"
	"flashcard_keep/internal/model"
	"flashcard_keep/internal/repository"

	"github.com/google/uuid"
)

// 乱数キーが既存キーと衝突した場合の再生成回数の上限
const maxKeyAttempts = 8

type CardService interface {
	Sample(ctx context.Context) model.SampleResponse
	SaveCard(ctx context.Context, identityKey string, card model.FlashCard) (string, error)
	LoadCards(ctx context.Context, identityKey string) (model.UserCollection, error)
	DeleteCard(ctx context.Context, identityKey, key string) error
}

type cardService struct {
	repo   repository.CardRepository
	logger *slog.Logger
	locks  *keyedMutex
	now    func() time.Time
	newKey func() string
}

// Option は cardService の依存を差し替えます (主にテスト用)。
type Option func(*cardService)

func WithClock(now func() time.Time) Option {
	return func(s *cardService) { s.now = now }
}

func WithKeyGenerator(gen func() string) Option {
	return func(s *cardService) { s.newKey = gen }
}

func NewCardService(repo repository.CardRepository, logger *slog.Logger, opts ...Option) CardService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &cardService{
		repo:   repo,
		logger: logger,
		locks:  newKeyedMutex(),
		now:    time.Now,
		newKey: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *cardService) Sample(ctx context.Context) model.SampleResponse {
	return model.SampleResponse{
		Word:     config.SampleWord,
		Sentence: config.SampleSentence,
	}
}

// SaveCard はカードを新しいキーで追加し、そのキーを返します。
// date/time が空なら呼び出し時刻で埋めます。
func (s *cardService) SaveCard(ctx context.Context, identityKey string, card model.FlashCard) (string, error) {
	if identityKey == "" {
		return "", model.ErrAuthenticationMissing
	}
	if !card.HasText() {
		return "", model.ErrInvalidInput
	}
	logger := s.loggerFor(ctx).With("identity_key", identityKey)

	now := s.now()
	if card.Date == "" {
		card.Date = now.Format(model.DateLayout)
	}
	if card.Time == "" {
		card.Time = now.Format(model.TimeLayout)
	}

	unlock := s.locks.Lock(identityKey)
	defer unlock()

	cards, err := s.repo.Load(ctx, identityKey)
	if err != nil {
		return "", fmt.Errorf("cardService.SaveCard: %w", err)
	}

	key, err := s.uniqueKey(cards)
	if err != nil {
		logger.Error("Could not generate a unique card key", "error", err, "count", len(cards))
		return "", err
	}
	cards[key] = card

	if err := s.repo.Write(ctx, identityKey, cards); err != nil {
		return "", fmt.Errorf("cardService.SaveCard: %w", err)
	}

	logger.Info("Card saved", "key", key, "count", len(cards))
	return key, nil
}

// loggerFor はリクエストスコープのロガーがあればそれを、無ければ注入されたロガーを返します。
func (s *cardService) loggerFor(ctx context.Context) *slog.Logger {
	if logger, ok := middleware.LoggerFromContext(ctx); ok {
		return logger
	}
	return s.logger
}

func (s *cardService) uniqueKey(cards model.UserCollection) (string, error) {
	for i := 0; i < maxKeyAttempts; i++ {
		key := s.newKey()
		if key == "" {
			continue
		}
		if _, exists := cards[key]; !exists {
			return key, nil
		}
	}
	return "", fmt.Errorf("cardService.uniqueKey: %d attempts collided: %w", maxKeyAttempts, model.ErrInternalServer)
}

func (s *cardService) LoadCards(ctx context.Context, identityKey string) (model.UserCollection, error) {
	if identityKey == "" {
		return model.UserCollection{}, nil
	}
	cards, err := s.repo.Load(ctx, identityKey)
	if err != nil {
		return nil, fmt.Errorf("cardService.LoadCards: %w", err)
	}
	return cards, nil
}

// DeleteCard は key のカードだけを削除します。ファイルが無い場合もキーが無い場合も model.ErrNotFound です。
func (s *cardService) DeleteCard(ctx context.Context, identityKey, key string) error {
	if identityKey == "" {
		return model.ErrAuthenticationMissing
	}
	logger := s.loggerFor(ctx).With("identity_key", identityKey, "key", key)

	unlock := s.locks.Lock(identityKey)
	defer unlock()

	cards, err := s.repo.Load(ctx, identityKey)
	if err != nil {
		return fmt.Errorf("cardService.DeleteCard: %w", err)
	}
	if _, ok := cards[key]; !ok {
		logger.Info("Card to delete not found")
		return model.ErrNotFound
	}
	delete(cards, key)

	if err := s.repo.Write(ctx, identityKey, cards); err != nil {
		return fmt.Errorf("cardService.DeleteCard: %w", err)
	}

	logger.Info("Card deleted", "count", len(cards))
	return nil
}
