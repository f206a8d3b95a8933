//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"
	"image/jpeg"

	"gocv.io/x/gocv"

	"canopy-bot/internal/domain/entity"
)

// decodeImageBGR превращает байты изображения в entity.Image.
func decodeImageBGR(imageData []byte) (*entity.Image, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil || mat.Empty() {
		if !mat.Empty() {
			mat.Close()
		}
		return nil, errors.New("failed to decode image")
	}
	defer mat.Close()

	buf, err := mat.ToBytes()
	if err != nil {
		return nil, err
	}
	pix := make([]uint8, len(buf))
	copy(pix, buf)

	return entity.NewImageBGR(mat.Cols(), mat.Rows(), pix)
}

// encodeJPEG кодирует entity.Image в JPEG.
func encodeJPEG(img *entity.Image) ([]byte, error) {
	mat, err := gocv.NewMatFromBytes(img.Height, img.Width, gocv.MatTypeCV8UC3, img.Pix)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	decoded, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, decoded, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
