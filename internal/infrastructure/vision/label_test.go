package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"canopy-bot/internal/domain/entity"
)

func TestLabelRegions_RasterOrder(t *testing.T) {
	mask := entity.NewBinaryMask(5, 5)
	mask.Pix[0*5+4] = 255 // верхняя правая точка — встречается первой
	mask.Pix[3*5+0] = 255
	mask.Pix[3*5+1] = 255

	labels, num := LabelRegions(mask, Conn8)
	require.Equal(t, 2, num)
	require.Equal(t, int32(1), labels[0*5+4])
	require.Equal(t, int32(2), labels[3*5+0])
	require.Equal(t, int32(2), labels[3*5+1])
	require.Equal(t, int32(0), labels[0])
}

// Диагональные соседи — одна компонента при 8-связности и две при 4-связности.
func TestLabelRegions_Connectivity(t *testing.T) {
	mask := entity.NewBinaryMask(4, 4)
	mask.Pix[0*4+0] = 255
	mask.Pix[1*4+1] = 255

	_, num8 := LabelRegions(mask, Conn8)
	require.Equal(t, 1, num8)

	_, num4 := LabelRegions(mask, Conn4)
	require.Equal(t, 2, num4)
}

func TestLabelRegions_Empty(t *testing.T) {
	mask := entity.NewBinaryMask(3, 3)
	labels, num := LabelRegions(mask, Conn8)
	require.Equal(t, 0, num)
	for _, l := range labels {
		require.Equal(t, int32(0), l)
	}
}

func TestRegionAreas(t *testing.T) {
	mask := maskFromRect(6, 6, 1, 1, 4, 3) // 3×2
	labels, num := LabelRegions(mask, Conn8)
	areas := regionAreas(labels, num)
	require.Equal(t, []int{30, 6}, areas)
}
