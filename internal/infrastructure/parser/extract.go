package parser

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

var monthOrdinals = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
	"January": 1, "February": 2, "March": 3, "April": 4, "June": 6,
	"July": 7, "August": 8, "September": 9, "October": 10, "November": 11, "December": 12,
}

// ExtractAssignees returns the cell texts of every assignee row in document order.
// A page without such a row yields nil.
func ExtractAssignees(page *Page, m Matcher) []string {
	var result []string
	page.Rows().Each(func(_ int, row *goquery.Selection) {
		if !anyMatch(strippedStrings(row), m.IsAssigneeLabel) {
			return
		}
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			result = append(result, strippedStrings(cell)...)
		})
	})
	return result
}

// ExtractIssueDate returns the most recent date-like fragment found in any table row,
// verbatim. Recency compares year, then month; the day is ignored, so the first
// fragment of a given month wins. No date yields "".
func ExtractIssueDate(page *Page, m Matcher) (string, error) {
	var (
		issued    string
		bestYear  int
		bestMonth int
		err       error
	)

	page.Rows().EachWithBreak(func(_ int, row *goquery.Selection) bool {
		for _, text := range strippedStrings(row) {
			monthName, yearText, ok := m.DateFragment(text)
			if !ok {
				continue
			}

			if yearText == "" {
				err = &DateError{Fragment: text, Reason: "no year after a comma"}
				return false
			}
			year, convErr := strconv.Atoi(yearText)
			if convErr != nil || len(yearText) != 4 {
				err = &DateError{Fragment: text, Reason: "year " + strconv.Quote(yearText) + " is not a 4-digit number"}
				return false
			}
			month, known := monthOrdinals[monthName]
			if !known {
				err = &DateError{Fragment: text, Reason: "unknown month " + strconv.Quote(monthName)}
				return false
			}

			if year > bestYear || (year == bestYear && month > bestMonth) {
				issued, bestYear, bestMonth = text, year, month
			}
		}
		return true
	})

	if err != nil {
		return "", err
	}
	return issued, nil
}
