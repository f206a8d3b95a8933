package vision

import (
	"math"

	"canopy-bot/internal/domain/entity"
)

// grayPlane переводит BGR-изображение в градации серого по весам
// 0.299R + 0.587G + 0.114B с округлением до ближайшего целого.
func grayPlane(img *entity.Image) []uint8 {
	gray := make([]uint8, img.Size())
	for i := 0; i < len(gray); i++ {
		b := float64(img.Pix[i*3])
		g := float64(img.Pix[i*3+1])
		r := float64(img.Pix[i*3+2])
		gray[i] = uint8(math.Round(0.299*r + 0.587*g + 0.114*b))
	}
	return gray
}

// lumaPlane — вариант перевода в серый для метрики резкости:
// 0.2989R + 0.5870G + 0.1140B, округлённый, но в float64.
func lumaPlane(img *entity.Image) []float64 {
	luma := make([]float64, img.Size())
	for i := 0; i < len(luma); i++ {
		b := float64(img.Pix[i*3])
		g := float64(img.Pix[i*3+1])
		r := float64(img.Pix[i*3+2])
		luma[i] = math.Round(0.2989*r + 0.5870*g + 0.1140*b)
	}
	return luma
}
