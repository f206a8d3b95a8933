package vision

import "canopy-bot/internal/domain/entity"

// Масштабы автокорреляции метрики резкости.
var focusScales = [3]int{2, 3, 5}

// FocusScore вычисляет оценку резкости по методу multiscale
// autocorrelation (MAC): для каждого масштаба s изображение умножается
// поэлементно на разность копий, сдвинутых вверх на 1 и на s строк.
// Строки, для которых сдвинутой строки не существует, сохраняют
// исходные значения. Чем выше оценка, тем резче снимок.
func FocusScore(img *entity.Image) float64 {
	luma := lumaPlane(img)
	return focusScoreGray(luma, img.Width, img.Height)
}

func focusScoreGray(luma []float64, w, h int) float64 {
	total := float64(w * h)
	sum := 0.0
	for _, s := range focusScales {
		acc := 0.0
		for y := 0; y < h; y++ {
			y1 := y
			if y+1 < h {
				y1 = y + 1
			}
			y2 := y
			if y+s < h {
				y2 = y + s
			}
			row := luma[y*w : (y+1)*w]
			row1 := luma[y1*w : (y1+1)*w]
			row2 := luma[y2*w : (y2+1)*w]
			for x := 0; x < w; x++ {
				acc += row[x] * (row1[x] - row2[x])
			}
		}
		sum += acc / total
	}
	return sum / float64(len(focusScales))
}
