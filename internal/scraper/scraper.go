// Package scraper loads listing pages in a headless browser and reads the
// listing title from them.
package scraper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/stealth"
	"github.com/rs/zerolog/log"

	"listingparser/internal/models"
)

// Options configures a Scraper.
type Options struct {
	Timeout   time.Duration // per page load
	ChromeBin string
}

// Scraper fetches listing pages with a lazily started, shared browser.
type Scraper struct {
	opts Options

	mu      sync.Mutex
	browser *rod.Browser
}

// New creates a scraper. No browser is started until the first fetch.
func New(opts Options) *Scraper {
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	return &Scraper{opts: opts}
}

func (s *Scraper) getBrowser() (*rod.Browser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser != nil {
		return s.browser, nil
	}

	browser, err := launchBrowser(s.opts.ChromeBin)
	if err != nil {
		return nil, err
	}
	s.browser = browser
	log.Info().Msg("browser initialized")
	return browser, nil
}

// FetchListing loads url and returns a listing carrying the page title and URL.
func (s *Scraper) FetchListing(ctx context.Context, url string) (*models.Listing, error) {
	browser, err := s.getBrowser()
	if err != nil {
		return nil, err
	}

	page, err := stealth.Page(browser)
	if err != nil {
		if s.detachBrowser(browser) {
			log.Warn().Err(err).Msg("browser could not open a page, discarding it")
			_ = browser.Close()
		}
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	p := page.Context(ctx).Timeout(s.opts.Timeout)
	if err := p.Navigate(url); err != nil {
		return nil, fmt.Errorf("navigation failed: %w", err)
	}
	if err := p.WaitLoad(); err != nil {
		return nil, fmt.Errorf("page load failed: %w", err)
	}

	html, err := p.HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}

	title, err := ExtractTitle(html)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("url", url).Str("title", title).Msg("listing page loaded")
	return &models.Listing{Title: title, URL: url}, nil
}

// detachBrowser forgets browser if it is still the cached one, so the next
// fetch launches a fresh one. It reports whether the caller now owns it.
func (s *Scraper) detachBrowser(browser *rod.Browser) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if browser == nil || s.browser != browser {
		return false
	}
	s.browser = nil
	return true
}

// Close shuts the browser down if it was started.
func (s *Scraper) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close browser")
		}
		s.browser = nil
	}
}
