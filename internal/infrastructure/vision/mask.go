package vision

import "canopy-bot/internal/domain/entity"

// GenPlantMask строит сырую маску растительности по признаку
// "зелёный канал больше красного", затем сглаживает её box-блюром
// kernelSize×kernelSize и повторно бинаризует по порогу 128.
func GenPlantMask(img *entity.Image, kernelSize int, maxVal uint8) *entity.BinaryMask {
	raw := entity.NewBinaryMask(img.Width, img.Height)
	for i := 0; i < img.Size(); i++ {
		g := int(img.Pix[i*3+1])
		r := int(img.Pix[i*3+2])
		if g-r > 0 {
			raw.Pix[i] = maxVal
		}
	}

	blurred := boxBlur(raw.Pix, img.Width, img.Height, kernelSize)

	mask := entity.NewBinaryMask(img.Width, img.Height)
	for i, v := range blurred {
		if v > 128 {
			mask.Pix[i] = maxVal
		}
	}
	return mask
}

// boxBlur — среднее по окну k×k с зеркальными границами (reflect-101,
// как в OpenCV) и округлением к ближайшему целому.
func boxBlur(pix []uint8, w, h, k int) []uint8 {
	if k <= 1 {
		out := make([]uint8, len(pix))
		copy(out, pix)
		return out
	}
	half := k / 2
	area := k * k
	out := make([]uint8, len(pix))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for dy := -half; dy <= half; dy++ {
				sy := reflect101(y+dy, h)
				for dx := -half; dx <= half; dx++ {
					sx := reflect101(x+dx, w)
					sum += int(pix[sy*w+sx])
				}
			}
			out[y*w+x] = uint8((sum + area/2) / area)
		}
	}
	return out
}

// reflect101 отражает индекс относительно границ без повторения
// крайнего элемента: -1 -> 1, n -> n-2.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}

// ApplyMask обнуляет фоновые пиксели исходного изображения, оставляя
// передний план без изменений.
func ApplyMask(img *entity.Image, mask *entity.BinaryMask) *entity.Image {
	pix := make([]uint8, len(img.Pix))
	for i := 0; i < img.Size(); i++ {
		if mask.Pix[i] > 0 {
			pix[i*3] = img.Pix[i*3]
			pix[i*3+1] = img.Pix[i*3+1]
			pix[i*3+2] = img.Pix[i*3+2]
		}
	}
	return &entity.Image{Width: img.Width, Height: img.Height, Pix: pix}
}
