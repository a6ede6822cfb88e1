// Package vehicle parses free-text vehicle listing titles into year, make and
// model, each with a confidence score, and merges the result into listings.
package vehicle

import (
	"encoding/json"
	"math"
	"strings"

	"listingparser/internal/models"
)

// NotAvailable is the wire value for a field the parser could not determine.
const NotAvailable = "N/A"

// Confidence levels assigned by the extractors.
const (
	ConfidenceExact      = 100
	ConfidenceAlias      = 95
	ConfidencePrefix     = 85
	ConfidenceFuzzy      = 80
	ConfidencePartial    = 60
	ConfidenceFutureYear = 50
	ConfidenceFreeText   = 40
)

// Field is one extracted value. The zero Field means "not found".
type Field struct {
	Value      string
	Confidence int
}

// Found reports whether the extractor produced a value.
func (f Field) Found() bool {
	return f.Value != ""
}

// String returns the value, or NotAvailable when nothing was found.
func (f Field) String() string {
	if !f.Found() {
		return NotAvailable
	}
	return f.Value
}

// Result is the outcome of parsing a single title.
type Result struct {
	Year          Field
	Make          Field
	Model         Field
	OriginalTitle string
}

// Confidence returns the per-field scores and their rounded mean.
func (r Result) Confidence() models.Confidence {
	sum := r.Year.Confidence + r.Make.Confidence + r.Model.Confidence
	return models.Confidence{
		Year:    r.Year.Confidence,
		Make:    r.Make.Confidence,
		Model:   r.Model.Confidence,
		Overall: int(math.Round(float64(sum) / 3)),
	}
}

type resultJSON struct {
	Year          string            `json:"year"`
	Make          string            `json:"make"`
	Model         string            `json:"model"`
	Confidence    models.Confidence `json:"confidence"`
	OriginalTitle string            `json:"originalTitle"`
}

// MarshalJSON encodes absent fields as "N/A".
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Year:          r.Year.String(),
		Make:          r.Make.String(),
		Model:         r.Model.String(),
		Confidence:    r.Confidence(),
		OriginalTitle: r.OriginalTitle,
	})
}

// ParseTitle extracts year, make and model from a listing title. Matching is
// case-insensitive; extracted values are canonical uppercase.
func ParseTitle(title string) Result {
	res := Result{OriginalTitle: title}

	clean := strings.ToUpper(strings.TrimSpace(title))
	if clean == "" {
		return res
	}

	res.Year = ExtractYear(clean)
	res.Make = ExtractMake(clean, res.Year)
	res.Model = ExtractModel(clean, res.Year, res.Make)
	return res
}
