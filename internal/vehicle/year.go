package vehicle

import (
	"regexp"
	"strconv"
	"time"
)

var yearRe = regexp.MustCompile(`\b(19[89]\d|20[0-4]\d)\b`)

// now is swapped out by tests
var now = time.Now

// ExtractYear returns the first whole-word model year between 1980 and 2049.
// Years more than one year in the future are kept at reduced confidence.
func ExtractYear(title string) Field {
	match := yearRe.FindString(title)
	if match == "" {
		return Field{}
	}

	year, err := strconv.Atoi(match)
	if err != nil {
		return Field{}
	}

	confidence := ConfidenceExact
	if year > now().Year()+1 {
		confidence = ConfidenceFutureYear
	}
	return Field{Value: match, Confidence: confidence}
}
