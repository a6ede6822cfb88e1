package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// MaxTitleLength bounds listing titles accepted from clients.
const MaxTitleLength = 300

var makeFilterRe = regexp.MustCompile(`^[A-Za-z][A-Za-z -]*$`)

// ValidateListingID validates that a listing ID is a UUID
func ValidateListingID(id string) error {
	if id == "" {
		return fmt.Errorf("listing ID is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("listing ID must be a valid UUID")
	}
	return nil
}

// NormalizeTitle trims surrounding whitespace and checks the title length. The
// rest of the title is kept as sent ("Town & Country", "'08 Civic").
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)

	if len(title) < 1 || len(title) > MaxTitleLength {
		return "", fmt.Errorf("title must be between 1 and %d characters", MaxTitleLength)
	}

	return title, nil
}

// ValidateListingURL validates that a listing URL is an absolute http(s) URL
func ValidateListingURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("url is not valid")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must use http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("url must include a host")
	}

	return nil
}

// ValidateMakeFilter validates a make name used to filter listings
func ValidateMakeFilter(mk string) error {
	if len(mk) > 40 {
		return fmt.Errorf("make must be at most 40 characters")
	}
	if !makeFilterRe.MatchString(mk) {
		return fmt.Errorf("make can only contain letters, spaces and hyphens")
	}
	return nil
}
