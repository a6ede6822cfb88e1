package scraper

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoTitle is returned when a page carries no usable listing title.
var ErrNoTitle = errors.New("no listing title found on page")

// titleSelectors are tried in order; the first non-empty value wins.
var titleSelectors = []struct {
	selector string
	attr     string // empty means element text
}{
	{"meta[property='og:title']", "content"},
	{"h1", ""},
	{"title", ""},
}

// ExtractTitle reads the listing title from rendered page HTML.
func ExtractTitle(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	for _, ts := range titleSelectors {
		sel := doc.Find(ts.selector).First()
		if sel.Length() == 0 {
			continue
		}

		var value string
		if ts.attr != "" {
			value, _ = sel.Attr(ts.attr)
		} else {
			value = sel.Text()
		}

		if value = strings.Join(strings.Fields(value), " "); value != "" {
			return value, nil
		}
	}

	return "", ErrNoTitle
}
