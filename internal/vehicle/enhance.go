package vehicle

import "listingparser/internal/models"

// Overwrite thresholds: a parsed field replaces the listing's value only when
// its confidence is strictly above these.
const (
	yearThreshold  = 80
	makeThreshold  = 70
	modelThreshold = 60
)

// Enhance parses the listing title and returns a copy with confident fields
// applied and ParsingConfidence attached. A listing without a title is returned
// as is. Existing values are never cleared.
func Enhance(listing models.Listing) models.Listing {
	if !listing.HasTitle() {
		return listing
	}

	parsed := ParseTitle(listing.Title)
	out := listing

	if parsed.Year.Found() && parsed.Year.Confidence > yearThreshold {
		out.Year = parsed.Year.Value
	}
	if parsed.Make.Found() && parsed.Make.Confidence > makeThreshold {
		out.Make = parsed.Make.Value
	}
	if parsed.Model.Found() && parsed.Model.Confidence > modelThreshold {
		out.Model = parsed.Model.Value
	}

	conf := parsed.Confidence()
	out.ParsingConfidence = &conf
	return out
}
