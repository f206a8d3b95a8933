package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenPlantMask_SizeAndValues(t *testing.T) {
	img := uniformImage(t, 37, 23, 100, 100, 100)
	fillRect(img, 5, 5, 20, 15, 0, 255, 0)

	mask := GenPlantMask(img, 3, 255)
	require.Equal(t, img.Width, mask.Width)
	require.Equal(t, img.Height, mask.Height)
	for _, v := range mask.Pix {
		require.Contains(t, []uint8{0, 255}, v)
	}
}

// Признак растительности — строго g-r > 0: равные каналы не проходят.
func TestGenPlantMask_GreenMinusRed(t *testing.T) {
	img := uniformImage(t, 20, 20, 100, 100, 100)
	mask := GenPlantMask(img, 3, 255)
	require.Equal(t, 0, mask.CountForeground())

	fillRect(img, 0, 0, 20, 20, 0, 101, 100)
	mask = GenPlantMask(img, 3, 255)
	require.Equal(t, 400, mask.CountForeground())
}

// Сглаживание box-блюром срезает одиночные угловые пиксели
// прямоугольника: в окне 3×3 у угла только 4 пикселя переднего плана.
func TestGenPlantMask_BlurTrimsCorners(t *testing.T) {
	img := uniformImage(t, 100, 100, 100, 100, 100)
	fillRect(img, 30, 30, 70, 70, 0, 255, 0)

	mask := GenPlantMask(img, 3, 255)
	require.Equal(t, 40*40-4, mask.CountForeground())
	require.False(t, mask.Foreground(30*100+30))
	require.True(t, mask.Foreground(30*100+31))
}

func TestBoxBlur_KernelOneIsCopy(t *testing.T) {
	pix := []uint8{0, 255, 0, 255}
	out := boxBlur(pix, 2, 2, 1)
	require.Equal(t, pix, out)
}

func TestReflect101(t *testing.T) {
	require.Equal(t, 1, reflect101(-1, 5))
	require.Equal(t, 3, reflect101(5, 5))
	require.Equal(t, 0, reflect101(0, 5))
	require.Equal(t, 0, reflect101(-2, 1))
}

func TestApplyMask_ZeroesBackground(t *testing.T) {
	img := uniformImage(t, 4, 4, 10, 20, 30)
	mask := maskFromRect(4, 4, 0, 0, 2, 4)

	masked := ApplyMask(img, mask)

	b, g, r := masked.BGR(0, 0)
	require.Equal(t, []uint8{10, 20, 30}, []uint8{b, g, r})

	b, g, r = masked.BGR(3, 3)
	require.Equal(t, []uint8{0, 0, 0}, []uint8{b, g, r})

	// исходное изображение не изменилось
	b, _, _ = img.BGR(3, 3)
	require.Equal(t, uint8(10), b)
}
