package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Page is an immutable parsed patent-office document.
type Page struct {
	URL string
	doc *goquery.Document
}

// NewPage decodes body as ASCII, silently dropping every non-ASCII byte, and parses it.
func NewPage(pageURL string, body io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(asciiOnly(body))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Page{URL: pageURL, doc: doc}, nil
}

// Document exposes the underlying goquery document.
func (p *Page) Document() *goquery.Document {
	return p.doc
}

// Rows returns every table row in document order, nested rows included.
func (p *Page) Rows() *goquery.Selection {
	return p.doc.Find("tr")
}

// Centers returns every center element; used only to find the references link.
func (p *Page) Centers() *goquery.Selection {
	return p.doc.Find("center")
}

func asciiOnly(r io.Reader) io.Reader {
	// invalid UTF-8 reaches the predicate as RuneError and is dropped too
	return transform.NewReader(r, runes.Remove(runes.Predicate(func(c rune) bool {
		return c > unicode.MaxASCII
	})))
}

// strippedStrings returns the whitespace-trimmed, non-empty text nodes below sel in document order.
func strippedStrings(sel *goquery.Selection) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				out = append(out, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}

func anyMatch(texts []string, match func(string) bool) bool {
	for _, text := range texts {
		if match(text) {
			return true
		}
	}
	return false
}
