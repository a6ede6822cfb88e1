package models

import (
	"fmt"
	"strings"
	"time"
)

// Listing represents a captured vehicle-for-sale listing
type Listing struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Price      string `json:"price,omitempty"`
	Location   string `json:"location,omitempty"`
	DatePosted string `json:"datePosted,omitempty"`
	SellerName string `json:"sellerName,omitempty"`
	Mileage    string `json:"mileage,omitempty"` // kept as scraped, e.g. "120,000 km"
	URL        string `json:"url,omitempty"`

	// Vehicle identity, filled in by the title parser
	Year  string `json:"year,omitempty"`
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`

	ParsingConfidence *Confidence `json:"parsingConfidence,omitempty"`
	DateSaved         time.Time   `json:"dateSaved"`
}

// Confidence holds per-field parser confidence scores (0-100)
type Confidence struct {
	Year    int `json:"year"`
	Make    int `json:"make"`
	Model   int `json:"model"`
	Overall int `json:"overall"`
}

// HasTitle reports whether the listing carries a non-blank title
func (l *Listing) HasTitle() bool {
	return strings.TrimSpace(l.Title) != ""
}

// Vehicle returns "YEAR MAKE MODEL" built from whatever identity fields are set
func (l *Listing) Vehicle() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Year, l.Make, l.Model} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Summary renders the one-line form used by listing overviews
func (l *Listing) Summary() string {
	vehicle := l.Vehicle()
	if vehicle == "" {
		vehicle = "Unknown vehicle"
	}
	price := l.Price
	if price == "" {
		price = "N/A"
	}
	summary := fmt.Sprintf("%s - %s", vehicle, price)
	if l.Mileage != "" {
		summary += " (" + l.Mileage + ")"
	}
	if l.Location != "" {
		summary += " @ " + l.Location
	}
	return summary
}
