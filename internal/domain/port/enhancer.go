package port

import (
	"context"

	"canopy-bot/internal/domain/entity"
)

// CanopyEnhancer интерфейс конвейера оценки растительного покрытия
type CanopyEnhancer interface {
	// Enhance анализирует снимок и строит маску растительности
	Enhance(ctx context.Context, imageData []byte) (*entity.EnhanceOutcome, error)

	// RenderMasked кодирует изображение с вырезанным фоном в JPEG
	RenderMasked(result *entity.CoverResult) ([]byte, error)
}
