package vision

import "canopy-bot/internal/domain/entity"

// Pipeline — конвейер построения маски растительности с отбраковкой
// снимков низкого качества. Все пороги — поля структуры, чтобы тесты
// могли менять их на отдельном экземпляре без общего состояния.
type Pipeline struct {
	KernelSize         int     // размер ядра сглаживания маски
	SaturateThreshold  uint8   // порог пересвеченного пикселя
	MaxPixelVal        uint8   // значение переднего плана маски
	SmallAreaThreshold int     // минимальная площадь объекта, обычный путь
	LowPixelThreshold  uint8   // порог почти чёрного пикселя
	MaxLowRate         float64 // допустимая доля почти чёрных пикселей
	MinBrightness      float64 // нижняя граница средней яркости
	MaxBrightness      float64 // верхняя граница средней яркости
	MinFocusScore      float64 // минимальная оценка резкости
	OverRateLimit      float64 // доля пересветки, включающая восстановление
	NormalHoleFill     int     // заливка дыр, обычный путь
	SaturatedObjectMin int     // минимальная площадь объекта, путь с пересветкой
	SaturatedHoleFill  int     // заливка дыр до восстановления пересветки
	FinalHoleFill      int     // заливка дыр после восстановления
	MaxRegionArea      int     // площадь, выше которой пересветка не растительность
	DilateRadius       int     // радиус дилатации области пересветки
}

// NewPipeline создаёт конвейер с порогами по умолчанию.
func NewPipeline() *Pipeline {
	return &Pipeline{
		KernelSize:         3,
		SaturateThreshold:  245,
		MaxPixelVal:        255,
		SmallAreaThreshold: 200,
		LowPixelThreshold:  20,
		MaxLowRate:         0.1,
		MinBrightness:      30,
		MaxBrightness:      195,
		MinFocusScore:      13,
		OverRateLimit:      0.15,
		NormalHoleFill:     3000,
		SaturatedObjectMin: 500,
		SaturatedHoleFill:  300,
		FinalHoleFill:      4000,
		MaxRegionArea:      100000,
		DilateRadius:       1,
	}
}

// Enhance прогоняет изображение через конвейер. Снимок, не прошедший
// пороги качества, отклоняется — это штатный исход, не ошибка.
func (p *Pipeline) Enhance(img *entity.Image) *entity.EnhanceOutcome {
	overRate, lowRate := CheckSaturation(img, p.SaturateThreshold, p.LowPixelThreshold)
	brightness := AverageBrightness(img)
	focus := FocusScore(img)

	scores := entity.ImageScores{
		OverRate:   overRate,
		LowRate:    lowRate,
		Brightness: brightness,
		Focus:      focus,
	}

	switch {
	case lowRate > p.MaxLowRate:
		return reject(scores, entity.ReasonLowPixels)
	case brightness < p.MinBrightness:
		return reject(scores, entity.ReasonTooDark)
	case brightness > p.MaxBrightness:
		return reject(scores, entity.ReasonTooBright)
	case focus < p.MinFocusScore:
		return reject(scores, entity.ReasonBlurry)
	}

	var mask *entity.BinaryMask
	if overRate > p.OverRateLimit {
		mask = p.saturatedMask(img)
	} else {
		mask = p.normalMask(img)
	}

	return &entity.EnhanceOutcome{
		Accepted: true,
		Scores:   scores,
		Result: &entity.CoverResult{
			Ratio:  mask.Ratio(),
			Mask:   mask,
			Masked: ApplyMask(img, mask),
		},
	}
}

// normalMask — обычный путь: маска растительности с очисткой от
// мелких объектов и заливкой дыр.
func (p *Pipeline) normalMask(img *entity.Image) *entity.BinaryMask {
	mask := GenPlantMask(img, p.KernelSize, p.MaxPixelVal)
	mask = RemoveSmallObjects(mask, p.SmallAreaThreshold, p.MaxPixelVal)
	mask = FillSmallHoles(mask, p.NormalHoleFill, p.MaxPixelVal)
	return mask
}

// saturatedMask — путь для пересвеченных снимков: более жёсткая
// предварительная очистка, затем возврат пересвеченных областей и
// финальная заливка дыр.
func (p *Pipeline) saturatedMask(img *entity.Image) *entity.BinaryMask {
	mask := GenPlantMask(img, p.KernelSize, p.MaxPixelVal)
	mask = RemoveSmallObjects(mask, p.SaturatedObjectMin, p.MaxPixelVal)
	mask = FillSmallHoles(mask, p.SaturatedHoleFill, p.MaxPixelVal)

	mask = RepairSaturation(img, mask, RepairParams{
		SaturateThreshold:  p.SaturateThreshold,
		SmallAreaThreshold: p.SmallAreaThreshold,
		MaxRegionArea:      p.MaxRegionArea,
		DilateRadius:       p.DilateRadius,
		MaxVal:             p.MaxPixelVal,
	})

	mask = FillSmallHoles(mask, p.FinalHoleFill, p.MaxPixelVal)
	return mask
}

func reject(scores entity.ImageScores, reason entity.RejectReason) *entity.EnhanceOutcome {
	return &entity.EnhanceOutcome{
		Accepted: false,
		Reason:   reason,
		Scores:   scores,
	}
}
