package app

import (
	"context"
	"errors"

	"canopy-bot/internal/domain/entity"
	"canopy-bot/internal/domain/port"
)

type EnhancementService struct {
	users    *UserService
	enhancer port.CanopyEnhancer
}

// EnhancementOutput содержит итог конвейера и JPEG маскированного снимка.
type EnhancementOutput struct {
	Outcome    *entity.EnhanceOutcome
	MaskedJPEG []byte
}

// NewEnhancementService создаёт сервис, который управляет оценкой покрытия.
func NewEnhancementService(users *UserService, enhancer port.CanopyEnhancer) *EnhancementService {
	return &EnhancementService{
		users:    users,
		enhancer: enhancer,
	}
}

// AcceptFieldPhoto переводит пользователя в ожидание фото делянки.
func (s *EnhancementService) AcceptFieldPhoto(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.users.SetState(ctx, userID, chatID, entity.StateAwaitingFieldPhoto)
}

// ProcessFieldPhoto запускает конвейер и возвращает результат с маской.
// Отклонённый по качеству снимок — штатный исход: Outcome.Accepted=false.
func (s *EnhancementService) ProcessFieldPhoto(ctx context.Context, photo []byte) (*EnhancementOutput, error) {
	if s.enhancer == nil {
		return nil, errors.New("enhancer is not configured")
	}

	outcome, err := s.enhancer.Enhance(ctx, photo)
	if err != nil {
		return nil, err
	}

	var masked []byte
	if outcome.Accepted {
		masked, _ = s.enhancer.RenderMasked(outcome.Result)
	}

	return &EnhancementOutput{Outcome: outcome, MaskedJPEG: masked}, nil
}
