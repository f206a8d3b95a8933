package vision

import "canopy-bot/internal/domain/entity"

// RepairParams — пороги восстановления пересвеченных областей.
type RepairParams struct {
	SaturateThreshold  uint8 // порог пересветки в градациях серого
	SmallAreaThreshold int   // минимальная площадь значимой области
	MaxRegionArea      int   // области крупнее не считаются растительностью
	DilateRadius       int   // радиус ромбовидной дилатации пересветки
	MaxVal             uint8
}

// RepairSaturation добавляет к базовой маске пересвеченные области,
// смежные с уже найденной растительностью. База сначала уточняется:
// из неё исключаются сами пересвеченные пиксели и мелкие остатки.
// Крупные области пересветки (небо, блики оборудования) и области без
// контакта с базой не добавляются. Области перебираются по меткам
// 1..count-1: компонента со старшей меткой в слияние не попадает.
func RepairSaturation(img *entity.Image, base *entity.BinaryMask, p RepairParams) *entity.BinaryMask {
	gray := grayPlane(img)

	over := entity.NewBinaryMask(img.Width, img.Height)
	refined := entity.NewBinaryMask(img.Width, img.Height)
	for i, v := range gray {
		if v > p.SaturateThreshold {
			over.Pix[i] = p.MaxVal
		}
		if base.Pix[i] > 0 && v < p.SaturateThreshold {
			refined.Pix[i] = p.MaxVal
		}
	}
	refined = RemoveSmallObjects(refined, p.SmallAreaThreshold, p.MaxVal)
	over = RemoveSmallObjects(over, p.SmallAreaThreshold, p.MaxVal)

	dilated := DilateDiamond(over, p.DilateRadius, p.MaxVal)
	labels, num := LabelRegions(dilated, Conn8)
	areas := regionAreas(labels, num)

	touches := make([]bool, num+1)
	for i, l := range labels {
		if l != 0 && refined.Pix[i] > 0 {
			touches[l] = true
		}
	}

	merge := make([]bool, num+1)
	for id := 1; id < num; id++ {
		if areas[id] > p.MaxRegionArea {
			continue
		}
		if !touches[id] {
			continue
		}
		merge[id] = true
	}

	result := refined.Clone()
	for i, l := range labels {
		if merge[l] {
			result.Pix[i] = p.MaxVal
		}
	}
	return result
}
