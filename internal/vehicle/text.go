package vehicle

import (
	"regexp"
	"strings"
)

// makeStopWords are condition, marketing and feature words that never name a make.
var makeStopWords = []string{
	"FOR", "SALE", "SOLD", "REDUCED", "PRICE", "OBO", "FIRM", "CERTIFIED",
	"ACCIDENT", "FREE", "CLEAN", "TITLE", "CARFAX", "AUTOCHECK", "MINT",
	"CONDITION", "EXCELLENT", "GOOD", "FAIR", "NEEDS", "WORK", "RUNS",
	"DRIVES", "WELL", "GREAT", "AMAZING", "BEAUTIFUL", "GORGEOUS", "STUNNING",
	"RARE", "CLASSIC", "VINTAGE", "COLLECTIBLE", "ORIGINAL", "RESTORED",
	"MODIFIED", "CUSTOM", "LOWERED", "LIFTED", "TURBO", "SUPERCHARGED",
	"MANUAL", "AUTOMATIC", "STICK", "SHIFT", "TRANSMISSION", "AWD", "4WD",
	"2WD", "FWD", "RWD", "LEATHER", "SUNROOF", "NAVIGATION", "GPS", "BACKUP",
	"CAMERA", "HEATED", "SEATS", "REMOTE", "START", "KEYLESS", "ENTRY",
}

// modelStopWords extends makeStopWords with mileage and inspection phrases.
var modelStopWords = append(append([]string{}, makeStopWords...),
	"KM", "KMS", "KILOMETERS", "MILES", "MILEAGE", "LOW", "HIGH", "HIGHWAY",
	"CITY", "DRIVEN", "ONLY", "JUST", "RECENTLY", "SERVICED", "MAINTAINED",
	"SAFETIED", "ETESTED", "EMISSIONS", "TESTED", "PASSED",
)

var (
	makeStopRe  = wordAlternation(makeStopWords)
	modelStopRe = wordAlternation(modelStopWords)

	punctuationRe = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// wordAlternation builds a single whole-word pattern matching any of words.
func wordAlternation(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// removeWord replaces every whole-word occurrence of word in s with repl.
func removeWord(s, word, repl string) string {
	if word == "" {
		return s
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	return re.ReplaceAllLiteralString(s, repl)
}

// collapseSpaces folds whitespace runs into single spaces and trims the ends.
func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllLiteralString(s, " "))
}
