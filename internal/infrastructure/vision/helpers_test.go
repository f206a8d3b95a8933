package vision

import (
	"testing"

	"canopy-bot/internal/domain/entity"
)

// uniformImage создаёт изображение w×h, залитое одним цветом BGR.
func uniformImage(t *testing.T, w, h int, b, g, r uint8) *entity.Image {
	t.Helper()
	pix := make([]uint8, w*h*3)
	for i := 0; i < w*h; i++ {
		pix[i*3] = b
		pix[i*3+1] = g
		pix[i*3+2] = r
	}
	img, err := entity.NewImageBGR(w, h, pix)
	if err != nil {
		t.Fatalf("uniformImage: %v", err)
	}
	return img
}

// fillRect закрашивает прямоугольник [x0,x1)×[y0,y1) цветом BGR.
func fillRect(img *entity.Image, x0, y0, x1, y1 int, b, g, r uint8) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := (y*img.Width + x) * 3
			img.Pix[i] = b
			img.Pix[i+1] = g
			img.Pix[i+2] = r
		}
	}
}

// maskFromRect создаёт маску с прямоугольным передним планом.
func maskFromRect(w, h, x0, y0, x1, y1 int) *entity.BinaryMask {
	mask := entity.NewBinaryMask(w, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			mask.Pix[y*w+x] = 255
		}
	}
	return mask
}
