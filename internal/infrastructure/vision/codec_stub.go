//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"canopy-bot/internal/domain/entity"
)

// decodeImageBGR возвращает ошибку, если сборка без тега gocv.
func decodeImageBGR(imageData []byte) (*entity.Image, error) {
	_ = imageData
	return nil, errors.New("gocv build tag is not enabled")
}

// encodeJPEG возвращает ошибку, если сборка без тега gocv.
func encodeJPEG(img *entity.Image) ([]byte, error) {
	_ = img
	return nil, errors.New("gocv build tag is not enabled")
}
