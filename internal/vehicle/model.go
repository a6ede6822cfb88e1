package vehicle

import "strings"

// freeTextLimit caps how much leftover text is accepted as an unrecognised model.
const freeTextLimit = 50

// ExtractModel finds the model of an already detected make. Without a make
// there is nothing to anchor the search and no model is returned.
func ExtractModel(title string, year, mk Field) Field {
	if !mk.Found() {
		return Field{}
	}

	working := title
	if year.Found() {
		working = strings.TrimSpace(removeWord(working, year.Value, ""))
	}
	for _, word := range strings.Split(mk.Value, " ") {
		working = strings.TrimSpace(removeWord(working, word, ""))
	}
	working = modelStopRe.ReplaceAllLiteralString(working, " ")
	working = collapseSpaces(punctuationRe.ReplaceAllLiteralString(working, " "))
	if working == "" {
		return Field{}
	}

	tokens := strings.Fields(working)
	candidates := modelsOf(mk.Value)

	if f, ok := matchModelWindow(mk.Value, tokens); ok {
		return f
	}
	if f, ok := matchModelAlias(mk.Value, tokens); ok {
		return f
	}
	if f, ok := matchModelPartial(candidates, tokens); ok {
		return f
	}

	if len(working) < freeTextLimit {
		return Field{Value: working, Confidence: ConfidenceFreeText}
	}
	return Field{}
}

// matchModelWindow tries one, two and three token windows at each position.
func matchModelWindow(mk string, tokens []string) (Field, bool) {
	for i := range tokens {
		for width := 1; width <= 3 && i+width <= len(tokens); width++ {
			candidate := strings.Join(tokens[i:i+width], " ")
			if HasModel(mk, candidate) {
				return Field{Value: candidate, Confidence: ConfidenceExact}, true
			}
		}
	}
	return Field{}, false
}

func matchModelAlias(mk string, tokens []string) (Field, bool) {
	for _, tok := range tokens {
		model, ok := modelAliases[tok]
		if ok && HasModel(mk, model) {
			return Field{Value: model, Confidence: ConfidenceAlias}, true
		}
	}
	return Field{}, false
}

// matchModelPartial accepts the first model that contains or is contained by a
// token. Containment is checked before the prefix test for each model.
func matchModelPartial(candidates, tokens []string) (Field, bool) {
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		for _, model := range candidates {
			if strings.Contains(model, tok) || strings.Contains(tok, model) {
				return Field{Value: model, Confidence: ConfidenceFuzzy}, true
			}
			if strings.HasPrefix(tok, model) || strings.HasPrefix(model, tok) {
				return Field{Value: model, Confidence: ConfidencePrefix}, true
			}
		}
	}
	return Field{}, false
}
