package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckSaturation_UniformBright(t *testing.T) {
	img := uniformImage(t, 16, 16, 250, 250, 250)
	over, low := CheckSaturation(img, 245, 20)
	require.Equal(t, 1.0, over)
	require.Equal(t, 0.0, low)
}

func TestCheckSaturation_UniformDark(t *testing.T) {
	img := uniformImage(t, 16, 16, 10, 10, 10)
	over, low := CheckSaturation(img, 245, 20)
	require.Equal(t, 0.0, over)
	require.Equal(t, 1.0, low)
}

func TestCheckSaturation_UniformMid(t *testing.T) {
	img := uniformImage(t, 16, 16, 100, 100, 100)
	over, low := CheckSaturation(img, 245, 20)
	require.Equal(t, 0.0, over)
	require.Equal(t, 0.0, low)
}

// Пороги строгие: значения ровно на границе не считаются.
func TestCheckSaturation_ThresholdsExclusive(t *testing.T) {
	img := uniformImage(t, 8, 8, 245, 245, 245)
	over, _ := CheckSaturation(img, 245, 20)
	require.Equal(t, 0.0, over)

	img = uniformImage(t, 8, 8, 20, 20, 20)
	_, low := CheckSaturation(img, 245, 20)
	require.Equal(t, 0.0, low)
}

func TestCheckSaturation_MixedRates(t *testing.T) {
	img := uniformImage(t, 10, 10, 100, 100, 100)
	fillRect(img, 0, 0, 10, 2, 250, 250, 250) // 20 пересвеченных
	fillRect(img, 0, 8, 10, 10, 0, 0, 0)      // 20 тёмных

	over, low := CheckSaturation(img, 245, 20)
	require.Equal(t, 0.2, over)
	require.Equal(t, 0.2, low)
}

func TestAverageBrightness_Uniform(t *testing.T) {
	img := uniformImage(t, 16, 16, 100, 100, 100)
	require.Equal(t, 100.0, AverageBrightness(img))
}

func TestAverageBrightness_Mixed(t *testing.T) {
	img := uniformImage(t, 10, 10, 100, 100, 100)
	fillRect(img, 0, 0, 10, 5, 200, 200, 200)
	require.Equal(t, 150.0, AverageBrightness(img))
}

// Перевод в серый идёт по весам 0.299R+0.587G+0.114B.
func TestGrayPlane_LumaWeights(t *testing.T) {
	img := uniformImage(t, 1, 1, 0, 0, 255) // чистый красный
	gray := grayPlane(img)
	require.Equal(t, uint8(76), gray[0])
}
