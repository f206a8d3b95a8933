package vision

import "canopy-bot/internal/domain/entity"

// Connectivity задаёт соседство пикселей при выделении компонент.
type Connectivity int

const (
	Conn4 Connectivity = 4 // только ортогональные соседи
	Conn8 Connectivity = 8 // включая диагональные
)

var (
	offsets4 = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	offsets8 = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// LabelRegions маркирует связные компоненты переднего плана маски.
// Метка 0 — фон; метки назначаются в порядке первого появления
// компоненты при построчном обходе. Возвращает метки и их число.
func LabelRegions(mask *entity.BinaryMask, conn Connectivity) ([]int32, int) {
	fg := func(i int) bool { return mask.Pix[i] > 0 }
	return labelComponents(fg, mask.Width, mask.Height, conn)
}

func labelComponents(fg func(int) bool, w, h int, conn Connectivity) ([]int32, int) {
	offsets := offsets8
	if conn == Conn4 {
		offsets = offsets4
	}

	labels := make([]int32, w*h)
	next := int32(0)
	var queue []int
	for start := 0; start < w*h; start++ {
		if !fg(start) || labels[start] != 0 {
			continue
		}
		next++
		labels[start] = next
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			i := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			x, y := i%w, i/w
			for _, off := range offsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				j := ny*w + nx
				if fg(j) && labels[j] == 0 {
					labels[j] = next
					queue = append(queue, j)
				}
			}
		}
	}
	return labels, int(next)
}

// regionAreas подсчитывает площадь каждой метки; индекс 0 — фон.
func regionAreas(labels []int32, num int) []int {
	areas := make([]int, num+1)
	for _, l := range labels {
		areas[l]++
	}
	return areas
}
