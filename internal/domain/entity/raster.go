package entity

import "fmt"

// Image — неизменяемое цветное изображение в порядке каналов BGR
// (канал 0 = синий, 1 = зелёный, 2 = красный), 8 бит на канал.
type Image struct {
	Width  int
	Height int
	Pix    []uint8 // построчно, 3 байта на пиксель
}

// NewImageBGR создаёт изображение из готового BGR-буфера.
func NewImageBGR(width, height int, pix []uint8) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pix) != width*height*3 {
		return nil, fmt.Errorf("pixel buffer length %d does not match %dx%dx3", len(pix), width, height)
	}
	return &Image{Width: width, Height: height, Pix: pix}, nil
}

// BGR возвращает каналы пикселя (x, y).
func (m *Image) BGR(x, y int) (b, g, r uint8) {
	i := (y*m.Width + x) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Size возвращает общее число пикселей.
func (m *Image) Size() int {
	return m.Width * m.Height
}

// BinaryMask — бинарная маска той же размерности, что и исходное
// изображение; значения строго {0, 255}, 255 = растительность.
type BinaryMask struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBinaryMask создаёт пустую маску (весь фон).
func NewBinaryMask(width, height int) *BinaryMask {
	return &BinaryMask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Foreground сообщает, отмечен ли пиксель как передний план.
func (m *BinaryMask) Foreground(i int) bool {
	return m.Pix[i] > 0
}

// CountForeground возвращает число пикселей переднего плана.
func (m *BinaryMask) CountForeground() int {
	n := 0
	for _, v := range m.Pix {
		if v > 0 {
			n++
		}
	}
	return n
}

// Ratio возвращает долю переднего плана от всей маски.
func (m *BinaryMask) Ratio() float64 {
	return float64(m.CountForeground()) / float64(len(m.Pix))
}

// Clone возвращает независимую копию маски.
func (m *BinaryMask) Clone() *BinaryMask {
	pix := make([]uint8, len(m.Pix))
	copy(pix, m.Pix)
	return &BinaryMask{Width: m.Width, Height: m.Height, Pix: pix}
}
