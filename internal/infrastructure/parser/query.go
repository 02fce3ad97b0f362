package parser

import (
	"fmt"
	"net/url"
	"strings"

	"PatentScraper/internal/domain"
)

// queryTemplate is the legacy boolean search query; %[1]s is the escaped patent number.
const queryTemplate = "/netacgi/nph-Parser?Sect1=PTO2&Sect2=HITOFF&p=1&u=%%2Fnetahtml%%2FPTO%%2Fsearch-bool.html&r=1&f=G&l=50&co1=AND&d=PTXT&s1=%[1]s.PN.&OS=PN/%[1]s&RS=PN/%[1]s"

// QueryURL builds the search URL returning the full text of a single patent.
func QueryURL(origin string, number domain.PatentNumber) string {
	escaped := url.QueryEscape(string(number))
	return strings.TrimSuffix(origin, "/") + fmt.Sprintf(queryTemplate, escaped)
}

// resolveLink turns an href found on a page into an absolute URL on origin.
func resolveLink(origin, href string) (string, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("invalid origin %s: %w", origin, err)
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", fmt.Errorf("invalid link %s: %w", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}
