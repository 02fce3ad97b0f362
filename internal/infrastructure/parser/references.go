package parser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"PatentScraper/internal/domain"
)

// FindReferencesLink returns the href inside the "References Cited" bold heading.
// Zero or several candidate links mean the page lists no usable references.
func FindReferencesLink(page *Page, m Matcher) (string, bool) {
	var links []string
	// nested centers each visit the same heading, so a nested link counts once per center
	page.Centers().Each(func(_ int, center *goquery.Selection) {
		center.Find("b").Each(func(_ int, bold *goquery.Selection) {
			if !anyMatch(strippedStrings(bold), m.IsReferencesLabel) {
				return
			}
			bold.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
				href, _ := a.Attr("href")
				links = append(links, href)
			})
		})
	})

	if len(links) != 1 {
		return "", false
	}
	return links[0], true
}

// Paginator walks the reference listing across its "next page" links.
type Paginator struct {
	fetcher  PageFetcher
	matcher  Matcher
	origin   string
	maxPages int
	logger   *slog.Logger
}

// NewPaginator wires the fetcher and rules; maxPages below 1 means a single page.
func NewPaginator(fetcher PageFetcher, m Matcher, origin string, maxPages int, logger *slog.Logger) *Paginator {
	if maxPages < 1 {
		maxPages = 1
	}
	return &Paginator{
		fetcher:  fetcher,
		matcher:  m,
		origin:   origin,
		maxPages: maxPages,
		logger:   logger,
	}
}

// Collect fetches the listing at link and every following page, returning the
// reference numbers in page order. Repeats are kept.
func (p *Paginator) Collect(ctx context.Context, link string) ([]domain.PatentNumber, error) {
	var (
		ids     []domain.PatentNumber
		visited = map[string]struct{}{}
		next    = link
	)

	for pages := 0; next != ""; pages++ {
		if pages >= p.maxPages {
			p.warn("reference page limit reached", "limit", p.maxPages, "collected", len(ids))
			break
		}

		pageURL, err := resolveLink(p.origin, next)
		if err != nil {
			return nil, &FetchError{URL: next, Err: err}
		}
		if _, seen := visited[pageURL]; seen {
			p.debug("next link already visited", "url", pageURL)
			break
		}
		visited[pageURL] = struct{}{}

		page, err := p.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("reference page %d: %w", pages+1, err)
		}

		found, nextLink := scanReferencePage(page, p.matcher)
		p.debug("reference page scanned", "page", pages+1, "found", len(found), "has_next", nextLink != "")
		ids = append(ids, found...)
		next = nextLink
	}

	return ids, nil
}

// scanReferencePage collects identifiers from every link of every table cell and
// the target of the last "next page" image link.
func scanReferencePage(page *Page, m Matcher) ([]domain.PatentNumber, string) {
	var (
		ids  []domain.PatentNumber
		next string
	)

	// every cell is scanned on its own, so a link inside nested cells is seen once per cell
	page.Document().Find("td").Each(func(_ int, cell *goquery.Selection) {
		cell.Find("a").Each(func(_ int, a *goquery.Selection) {
			a.Find("img").Each(func(_ int, img *goquery.Selection) {
				alt, ok := img.Attr("alt")
				if !ok || !m.IsNextPageMarker(alt) {
					return
				}
				if href, ok := a.Attr("href"); ok {
					next = href
				}
			})

			for _, text := range strippedStrings(a) {
				if m.IsReferenceNumber(text) {
					ids = append(ids, domain.PatentNumber(text))
				}
			}
		})
	})

	return ids, next
}

func (p *Paginator) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Paginator) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
