package vision

import "canopy-bot/internal/domain/entity"

// CheckSaturation возвращает доли пересвеченных (строго выше high) и
// почти чёрных (строго ниже low) пикселей в градациях серого.
func CheckSaturation(img *entity.Image, high, low uint8) (overRate, lowRate float64) {
	gray := grayPlane(img)
	over, dark := 0, 0
	for _, v := range gray {
		if v > high {
			over++
		}
		if v < low {
			dark++
		}
	}
	total := float64(len(gray))
	return float64(over) / total, float64(dark) / total
}

// AverageBrightness возвращает среднюю яркость изображения в
// градациях серого.
func AverageBrightness(img *entity.Image) float64 {
	gray := grayPlane(img)
	sum := 0.0
	for _, v := range gray {
		sum += float64(v)
	}
	return sum / float64(len(gray))
}
