package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SATURATE_THRESHOLD", "")
	t.Setenv("MAX_PIXEL_VAL", "")
	t.Setenv("SMALL_AREA_THRESHOLD", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 245, cfg.SaturateThreshold)
	require.Equal(t, 255, cfg.MaxPixelVal)
	require.Equal(t, 200, cfg.SmallAreaThreshold)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SATURATE_THRESHOLD", "240")
	t.Setenv("SMALL_AREA_THRESHOLD", "150")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 240, cfg.SaturateThreshold)
	require.Equal(t, 150, cfg.SmallAreaThreshold)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SATURATE_THRESHOLD", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
