package vehicle

import "strings"

// makeMatcher inspects the cleaned title tokens and reports a make if it finds one.
type makeMatcher func(tokens []string) (Field, bool)

// makeMatchers run in order; the first hit wins.
var makeMatchers = []makeMatcher{
	matchMakeExact,
	matchMakeFuzzyAlias,
	matchMakePartial,
}

// ExtractMake finds the vehicle make in an uppercased title. The year, when
// found, is removed first so it cannot take part in matching.
func ExtractMake(title string, year Field) Field {
	working := title
	if year.Found() {
		working = strings.TrimSpace(removeWord(working, year.Value, ""))
	}
	working = collapseSpaces(makeStopRe.ReplaceAllLiteralString(working, " "))

	tokens := strings.Fields(working)
	if len(tokens) == 0 {
		return Field{}
	}

	for _, match := range makeMatchers {
		if f, ok := match(tokens); ok {
			return f
		}
	}
	return Field{}
}

// lookupMake resolves a token or token pair as a canonical make, then as an alias.
func lookupMake(candidate string) (Field, bool) {
	if IsMake(candidate) {
		return Field{Value: candidate, Confidence: ConfidenceExact}, true
	}
	if mk, ok := makeAliasIndex[candidate]; ok {
		return Field{Value: mk, Confidence: ConfidenceAlias}, true
	}
	return Field{}, false
}

func matchMakeExact(tokens []string) (Field, bool) {
	for i, tok := range tokens {
		if f, ok := lookupMake(tok); ok {
			return f, true
		}
		// two-word makes such as LAND ROVER
		if i+1 < len(tokens) {
			if f, ok := lookupMake(tok + " " + tokens[i+1]); ok {
				return f, true
			}
		}
	}
	return Field{}, false
}

func matchMakeFuzzyAlias(tokens []string) (Field, bool) {
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		for _, a := range makeAliases {
			if strings.Contains(tok, a.Alias) || strings.Contains(a.Alias, tok) {
				return Field{Value: a.Make, Confidence: ConfidenceFuzzy}, true
			}
		}
	}
	return Field{}, false
}

func matchMakePartial(tokens []string) (Field, bool) {
	for _, tok := range tokens {
		if len(tok) < 4 {
			continue
		}
		for _, mk := range makeNames {
			stem := mk[:min(4, len(mk))]
			if strings.Contains(mk, tok) || strings.Contains(tok, stem) {
				return Field{Value: mk, Confidence: ConfidencePartial}, true
			}
		}
	}
	return Field{}, false
}

// ResolveMake maps a user-supplied make or alias to a canonical make. Only
// exact and alias matches count; fuzzy guesses are not good enough for
// lookups. When nothing resolves, the uppercased input is returned with false.
func ResolveMake(raw string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if upper == "" {
		return "", false
	}
	if IsMake(upper) {
		return upper, true
	}

	f := ExtractMake(upper, Field{})
	if f.Found() && f.Confidence >= ConfidenceAlias && IsMake(f.Value) {
		return f.Value, true
	}
	return upper, false
}
