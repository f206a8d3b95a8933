package vision

import "canopy-bot/internal/domain/entity"

// RemoveSmallObjects удаляет компоненты переднего плана площадью
// меньше minSize. Соседство — 8-связное.
func RemoveSmallObjects(mask *entity.BinaryMask, minSize int, maxVal uint8) *entity.BinaryMask {
	labels, num := LabelRegions(mask, Conn8)
	areas := regionAreas(labels, num)

	out := entity.NewBinaryMask(mask.Width, mask.Height)
	for i, l := range labels {
		if l != 0 && areas[l] >= minSize {
			out.Pix[i] = maxVal
		}
	}
	return out
}

// FillSmallHoles заливает фоновые дыры площадью меньше maxSize.
// Фон рассматривается 4-связно — дополнение 8-связного переднего плана.
func FillSmallHoles(mask *entity.BinaryMask, maxSize int, maxVal uint8) *entity.BinaryMask {
	bg := func(i int) bool { return mask.Pix[i] == 0 }
	labels, num := labelComponents(bg, mask.Width, mask.Height, Conn4)
	areas := regionAreas(labels, num)

	out := entity.NewBinaryMask(mask.Width, mask.Height)
	for i := range out.Pix {
		if mask.Pix[i] > 0 || areas[labels[i]] < maxSize {
			out.Pix[i] = maxVal
		}
	}
	return out
}

// DilateDiamond расширяет маску ромбовидным структурным элементом
// радиуса radius (манхэттенское расстояние).
func DilateDiamond(mask *entity.BinaryMask, radius int, maxVal uint8) *entity.BinaryMask {
	out := mask.Clone()
	if radius <= 0 {
		return out
	}
	w, h := mask.Width, mask.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.Pix[y*w+x] == 0 {
				continue
			}
			for dy := -radius; dy <= radius; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				span := radius - abs(dy)
				for dx := -span; dx <= span; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					out.Pix[ny*w+nx] = maxVal
				}
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
