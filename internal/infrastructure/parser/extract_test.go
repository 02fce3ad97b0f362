package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PatentScraper/internal/domain"
)

func rowsHTML(cells ...string) string {
	var b strings.Builder
	b.WriteString("<table>")
	for _, c := range cells {
		b.WriteString("<tr><td>" + c + "</td></tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

func TestExtractAssignees(t *testing.T) {
	t.Parallel()

	page := pageFromHTML(t, patentFixture)
	assert.Equal(t, []string{"Acme Corp", "(Austin, TX)"}, ExtractAssignees(page, DefaultRules()))
}

func TestExtractAssigneesNoRow(t *testing.T) {
	t.Parallel()

	page := pageFromHTML(t, `<table><tr><th>Inventors:</th><td>Smith; John</td></tr></table>
	<p>Assignee: not in a table</p>`)
	assert.Empty(t, ExtractAssignees(page, DefaultRules()))
}

func TestExtractAssigneesKeepsEveryCellInOrder(t *testing.T) {
	t.Parallel()

	page := pageFromHTML(t, `<table>
	<tr><td>Assignee</td><td>Acme Corp</td><td><b>Beta LLC</b> (Reno, NV)</td></tr>
	<tr><td>Filed:</td><td>Jan 5, 1990</td></tr>
	<tr><td>Assignee:</td><td>Acme Corp</td></tr>
	</table>`)

	got := ExtractAssignees(page, DefaultRules())
	assert.Equal(t, []string{"Assignee", "Acme Corp", "Beta LLC", "(Reno, NV)", "Assignee:", "Acme Corp"}, got)
}

func TestExtractAssigneesRowCountedOnce(t *testing.T) {
	t.Parallel()

	page := pageFromHTML(t, `<table><tr><th>Assignee:</th><td>Assignee Holdings</td></tr></table>`)
	assert.Equal(t, []string{"Assignee Holdings"}, ExtractAssignees(page, DefaultRules()))
}

func TestExtractIssueDateMostRecent(t *testing.T) {
	t.Parallel()

	page := pageFromHTML(t, rowsHTML("Jan 5, 1990", "Mar 3, 1995", "Feb 1, 1995"))
	got, err := ExtractIssueDate(page, DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, "Mar 3, 1995", got)
}

func TestExtractIssueDateVerbatim(t *testing.T) {
	t.Parallel()

	page := pageFromHTML(t, rowsHTML("December 1, 2001"))
	got, err := ExtractIssueDate(page, DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, "December 1, 2001", got)
}

func TestExtractIssueDateIgnoresDay(t *testing.T) {
	t.Parallel()

	page := pageFromHTML(t, rowsHTML("Mar 3, 1995", "Mar 30, 1995", "March 31, 1995"))
	got, err := ExtractIssueDate(page, DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, "Mar 3, 1995", got)
}

func TestExtractIssueDateFixture(t *testing.T) {
	t.Parallel()

	got, err := ExtractIssueDate(pageFromHTML(t, patentFixture), DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, "March 19, 1991", got)
}

func TestExtractIssueDateNone(t *testing.T) {
	t.Parallel()

	page := pageFromHTML(t, rowsHTML("Jan 1978", "no date here")+`<p>Jan 5, 1990</p>`)
	got, err := ExtractIssueDate(page, DefaultRules())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractIssueDateUnknownMonth(t *testing.T) {
	t.Parallel()

	page := pageFromHTML(t, rowsHTML("Jan 5, 1990", "Sept 5, 1991"))
	_, err := ExtractIssueDate(page, DefaultRules())
	require.Error(t, err)

	var dateErr *DateError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, "Sept 5, 1991", dateErr.Fragment)
	assert.True(t, errors.Is(err, domain.ErrParse))
}

func TestExtractIssueDateMalformedYear(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Jan 5- 1990, n/a": `"n/a"`,
		"Jan 5, 19x0":      `"19x0"`,
		"Jan 5. 1990":      "no year after a comma",
	}
	for fragment, reason := range cases {
		page := pageFromHTML(t, rowsHTML("Feb 1, 1980", fragment))
		got, err := ExtractIssueDate(page, DefaultRules())
		require.Error(t, err, fragment)
		assert.Empty(t, got, fragment)

		var dateErr *DateError
		require.True(t, errors.As(err, &dateErr), fragment)
		assert.Equal(t, fragment, dateErr.Fragment)
		assert.Contains(t, dateErr.Reason, reason)
		assert.True(t, errors.Is(err, domain.ErrParse), fragment)
	}
}
