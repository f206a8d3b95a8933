package vision

import (
	"context"
	"errors"
	"fmt"

	"canopy-bot/internal/domain/entity"
	"canopy-bot/internal/domain/port"
)

// Enhancer — реализация порта CanopyEnhancer поверх конвейера.
// Декодирование и кодирование изображений делаются на границе,
// чистый конвейер работает только с готовыми буферами.
type Enhancer struct {
	Pipeline *Pipeline
}

// NewEnhancer создаёт Enhancer с порогами из конфигурации развёртывания.
func NewEnhancer(saturateThreshold, maxPixelVal, smallAreaThreshold int) *Enhancer {
	p := NewPipeline()
	p.SaturateThreshold = uint8(saturateThreshold)
	p.MaxPixelVal = uint8(maxPixelVal)
	p.SmallAreaThreshold = smallAreaThreshold
	return &Enhancer{Pipeline: p}
}

// Enhance декодирует снимок и прогоняет его через конвейер.
func (e *Enhancer) Enhance(ctx context.Context, imageData []byte) (*entity.EnhanceOutcome, error) {
	_ = ctx
	if len(imageData) == 0 {
		return nil, errors.New("empty image")
	}

	img, err := decodeImageBGR(imageData)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return e.Pipeline.Enhance(img), nil
}

// RenderMasked кодирует изображение с вырезанным фоном в JPEG.
func (e *Enhancer) RenderMasked(result *entity.CoverResult) ([]byte, error) {
	if result == nil || result.Masked == nil {
		return nil, errors.New("no masked image to render")
	}
	return encodeJPEG(result.Masked)
}

// Проверка реализации интерфейса
var _ port.CanopyEnhancer = (*Enhancer)(nil)
