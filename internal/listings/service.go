// Package listings captures vehicle listings: it runs titles through the
// parser, stores the result and keeps stored listings in step with the parser.
package listings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"listingparser/internal/models"
	"listingparser/internal/vehicle"
)

// ErrNoTitleSource is returned by Fetch when the service has no page loader.
var ErrNoTitleSource = errors.New("no title source configured")

// Store persists listings by id.
type Store interface {
	SaveListing(listing *models.Listing) error
	GetListing(id string) (*models.Listing, error)
	ListListings(mk string) ([]*models.Listing, error)
	CountListings() (int, error)
	DeleteListing(id string) error
	ClearListings() (int64, error)
	UpdateVehicleFields(id, year, mk, model string, conf models.Confidence) error
}

// TitleSource loads a listing page and reports what it could read from it.
type TitleSource interface {
	FetchListing(ctx context.Context, url string) (*models.Listing, error)
}

// Service coordinates parsing and storage of listings.
type Service struct {
	store  Store
	source TitleSource
}

// NewService creates a service. source may be nil when page fetching is not needed.
func NewService(store Store, source TitleSource) *Service {
	return &Service{store: store, source: source}
}

// Store returns the underlying listing store.
func (s *Service) Store() Store {
	return s.store
}

// Capture enhances the listing from its title and stores it.
func (s *Service) Capture(listing models.Listing) (*models.Listing, error) {
	enhanced := vehicle.Enhance(listing)
	if enhanced.DateSaved.IsZero() {
		enhanced.DateSaved = time.Now().UTC()
	}

	if err := s.store.SaveListing(&enhanced); err != nil {
		return nil, fmt.Errorf("failed to store listing: %w", err)
	}

	evt := log.Info().Str("listing_id", enhanced.ID).Str("vehicle", enhanced.Vehicle())
	if enhanced.ParsingConfidence != nil {
		evt = evt.Int("confidence", enhanced.ParsingConfidence.Overall)
	}
	evt.Msg("listing captured")

	return &enhanced, nil
}

// Fetch loads the page at url, then captures the listing read from it.
func (s *Service) Fetch(ctx context.Context, url string) (*models.Listing, error) {
	if s.source == nil {
		return nil, ErrNoTitleSource
	}

	listing, err := s.source.FetchListing(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	if listing.URL == "" {
		listing.URL = url
	}

	return s.Capture(*listing)
}

// ReparseSummary reports the outcome of a Reparse run.
type ReparseSummary struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// Reparse runs every stored listing through the parser again and writes back
// the listings whose vehicle fields or confidence changed.
func (s *Service) Reparse() (ReparseSummary, error) {
	var summary ReparseSummary

	stored, err := s.store.ListListings("")
	if err != nil {
		return summary, err
	}
	summary.Total = len(stored)

	for _, listing := range stored {
		if !listing.HasTitle() {
			summary.Skipped++
			continue
		}

		enhanced := vehicle.Enhance(*listing)
		if !vehicleChanged(listing, &enhanced) {
			continue
		}

		err := s.store.UpdateVehicleFields(enhanced.ID, enhanced.Year, enhanced.Make, enhanced.Model, *enhanced.ParsingConfidence)
		if err != nil {
			return summary, fmt.Errorf("failed to update listing %s: %w", listing.ID, err)
		}
		summary.Updated++
	}

	log.Info().
		Int("total", summary.Total).
		Int("updated", summary.Updated).
		Int("skipped", summary.Skipped).
		Msg("reparse complete")

	return summary, nil
}

func vehicleChanged(before, after *models.Listing) bool {
	if before.Year != after.Year || before.Make != after.Make || before.Model != after.Model {
		return true
	}
	if before.ParsingConfidence == nil || after.ParsingConfidence == nil {
		return before.ParsingConfidence != after.ParsingConfidence
	}
	return *before.ParsingConfidence != *after.ParsingConfidence
}
