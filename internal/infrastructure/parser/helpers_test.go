package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testOrigin = "http://patft.test"

func pageFromHTML(t *testing.T, doc string) *Page {
	t.Helper()
	page, err := NewPage(testOrigin+"/fixture", strings.NewReader(doc))
	require.NoError(t, err)
	return page
}

// fakeFetcher serves fixtures keyed by absolute URL and records the request order.
type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, pageURL string) (*Page, error) {
	f.calls = append(f.calls, pageURL)
	doc, ok := f.pages[pageURL]
	if !ok {
		return nil, &FetchError{URL: pageURL, Status: "404 Not Found"}
	}
	return NewPage(pageURL, strings.NewReader(doc))
}

const patentFixture = `<html><body>
<table width="100%">
<tr><td align="left" width="50%"><b>United States Patent </b></td><td align="right" width="50%"><b>5,000,000</b></td></tr>
<tr><td align="left" width="50%"><b>Smith</b></td><td align="right" width="50%"><b>
March 19, 1991
</b></td></tr>
</table>
<table width="100%">
<tr><th scope="row" align="left">Inventors:</th><td align="left"><b>Smith; John</b> (Austin, TX)</td></tr>
<tr><th scope="row" align="left">Assignee:</th><td align="left"><b>Acme Corp</b>
(Austin, TX)</td></tr>
<tr><th scope="row" align="left">Filed:</th><td align="left"><b>Jan 5, 1990</b></td></tr>
</table>
<center><b>References Cited  <a href="/refs?page=1">[Referenced By]</a></b></center>
</body></html>`

const referencesPageOne = `<html><body>
<table>
<tr><td><a href="/netacgi/nph-Parser?s1=4123456.PN.">4,123,456</a></td><td>Jan 1978</td><td>Doe</td></tr>
<tr><td><a href="/netacgi/nph-Parser?s1=RE31234.PN.">RE31,234</a></td><td>Feb 1983</td><td>Roe</td></tr>
<tr><td><a href="/home">Home</a></td></tr>
<tr><td><a href="/refs?page=2"><img src="/netaicon/PTO/nextlist.gif" alt="[NEXT_LIST]"></a></td></tr>
</table>
<a href="/outside">9,999,999</a>
</body></html>`

const referencesPageTwo = `<html><body>
<table>
<tr><td><a href="/netacgi/nph-Parser?s1=4555666.PN.">4,555,666</a></td><td>Mar 1985</td><td>Poe</td></tr>
<tr><td><a href="/refs?page=1"><img src="/netaicon/PTO/prevlist.gif" alt="[PREV_LIST]"></a></td></tr>
</table>
</body></html>`
