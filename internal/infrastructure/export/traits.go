// Package export пишет наблюдения средней температуры делянок в CSV
// двух принятых в TERRA-REF форматов: geostreams и BETYdb.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"time"
)

// Фиксированные значения трейтов.
const (
	accessLevel = "2"
	methodName  = "Mean temperature from infrared images"
	geoTrait    = "IR Surface Temperature"
)

var (
	geostreamFields = []string{"site", "trait", "lat", "lon", "dp_time", "source", "value", "timestamp"}
	betyFields      = []string{"local_datetime", "surface_temperature", "access_level", "site",
		"citation_author", "citation_year", "citation_title", "method"}
)

// PlotObservation — одно наблюдение: средняя температура делянки в
// кельвинах по снимку source на момент Timestamp.
type PlotObservation struct {
	PlotName   string
	Lat        float64
	Lon        float64
	Timestamp  time.Time
	Source     string
	MeanKelvin float64
}

// Celsius возвращает среднюю температуру в градусах Цельсия.
func (o PlotObservation) Celsius() float64 {
	return o.MeanKelvin - 273.15
}

// Valid сообщает, получилось ли по делянке осмысленное среднее
// (NaN появляется, если в делянку не попало ни одного пикселя).
func (o PlotObservation) Valid() bool {
	return !math.IsNaN(o.MeanKelvin)
}

// GeostreamWriter пишет CSV для geostreams-файла.
type GeostreamWriter struct {
	w *csv.Writer
}

func NewGeostreamWriter(w io.Writer) *GeostreamWriter {
	return &GeostreamWriter{w: csv.NewWriter(w)}
}

// WriteHeader пишет строку заголовка.
func (g *GeostreamWriter) WriteHeader() error {
	return g.w.Write(geostreamFields)
}

// WriteObservation пишет одну строку наблюдения; наблюдения без
// осмысленного среднего пропускаются.
func (g *GeostreamWriter) WriteObservation(o PlotObservation) error {
	if !o.Valid() {
		return nil
	}
	return g.w.Write([]string{
		o.PlotName,
		geoTrait,
		formatCoord(o.Lat),
		formatCoord(o.Lon),
		o.Timestamp.Format(time.RFC3339),
		o.Source,
		fmt.Sprintf("%v", o.Celsius()),
		o.Timestamp.Format("2006-01-02"),
	})
}

// Flush сбрасывает буфер записи.
func (g *GeostreamWriter) Flush() error {
	g.w.Flush()
	return g.w.Error()
}

// BetyWriter пишет CSV в формате загрузки трейтов BETYdb.
type BetyWriter struct {
	w *csv.Writer
}

func NewBetyWriter(w io.Writer) *BetyWriter {
	return &BetyWriter{w: csv.NewWriter(w)}
}

// Fields возвращает упорядоченный список полей BETYdb-файла.
func Fields() []string {
	out := make([]string, len(betyFields))
	copy(out, betyFields)
	return out
}

// WriteHeader пишет строку заголовка.
func (b *BetyWriter) WriteHeader() error {
	return b.w.Write(betyFields)
}

// WriteObservation пишет одну строку трейтов; наблюдения без
// осмысленного среднего пропускаются.
func (b *BetyWriter) WriteObservation(o PlotObservation) error {
	if !o.Valid() {
		return nil
	}
	return b.w.Write([]string{
		o.Timestamp.Format(time.RFC3339),
		fmt.Sprintf("%v", o.Celsius()),
		accessLevel,
		o.PlotName,
		"", // citation_author
		"", // citation_year
		"", // citation_title
		methodName,
	})
}

// Flush сбрасывает буфер записи.
func (b *BetyWriter) Flush() error {
	b.w.Flush()
	return b.w.Error()
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%v", v)
}
