package entity

// RejectReason — причина отказа от обработки снимка.
type RejectReason string

const (
	ReasonLowPixels RejectReason = "low_pixels" // слишком много почти чёрных пикселей
	ReasonTooDark   RejectReason = "too_dark"   // средняя яркость ниже допустимой
	ReasonTooBright RejectReason = "too_bright" // средняя яркость выше допустимой
	ReasonBlurry    RejectReason = "blurry"     // низкая оценка резкости
)

// ImageScores — измеренные характеристики снимка до построения маски.
type ImageScores struct {
	OverRate   float64 // доля пересвеченных пикселей
	LowRate    float64 // доля почти чёрных пикселей
	Brightness float64 // средняя яркость в градациях серого
	Focus      float64 // оценка резкости (multiscale autocorrelation)
}

// CoverResult хранит итог построения маски растительности.
type CoverResult struct {
	Ratio  float64     // доля пикселей растительности в маске
	Mask   *BinaryMask // бинарная маска растительности
	Masked *Image      // исходное изображение с обнулённым фоном
}

// EnhanceOutcome — результат конвейера: либо снимок отклонён по
// качеству (Accepted=false, это не ошибка), либо построена маска.
type EnhanceOutcome struct {
	Accepted bool
	Reason   RejectReason // заполнена только при отказе
	Scores   ImageScores
	Result   *CoverResult // nil при отказе
}
