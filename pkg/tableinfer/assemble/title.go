package assemble

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tablekit/tableinfer-go/pkg/tableinfer/models"
)

const (
	minTitleLen = 3
	maxTitleLen = 100
)

var (
	bareYearRe  = regexp.MustCompile(`^(19|20)\d{2}$`)
	monthAbbrRe = regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\.?$`)
)

// detectTitle looks for a table title in the row just above the
// region or in its first row: exactly one populated cell, at the
// region's left edge, holding title-like text. Returns the title and
// the row it was found on, or "" when no title exists.
func detectTitle(g *models.Grid, region models.Region) (string, int) {
	for _, row := range []int{region.StartRow - 1, region.StartRow} {
		if row < g.Bounds().MinRow {
			continue
		}
		if title, ok := titleInRow(g, region, row); ok {
			return title, row
		}
	}
	return "", 0
}

// titleInRow checks one candidate row within the region's column
// span: a lone text cell at the starting column, nothing else
// populated in the span.
func titleInRow(g *models.Grid, region models.Region, row int) (string, bool) {
	populated := 0
	for _, col := range g.ColsInRow(row) {
		if col < region.StartCol || col > region.EndCol {
			continue
		}
		populated++
		if populated > 1 || col != region.StartCol {
			return "", false
		}
	}
	if populated != 1 {
		return "", false
	}
	v := g.ValueAt(row, region.StartCol)
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	if !titleLike(s) {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// titleLike applies the title heuristics: 3-100 chars, at least one
// letter, and no token that is a bare year or month abbreviation
// (those read as stray headers, not titles). Text is NFKC-normalized
// first so full-width digits and letters classify like ASCII.
func titleLike(s string) bool {
	s = norm.NFKC.String(strings.TrimSpace(s))
	if len(s) < minTitleLen || len(s) > maxTitleLen {
		return false
	}
	hasAlpha := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasAlpha = true
			break
		}
	}
	if !hasAlpha {
		return false
	}
	for _, token := range strings.Fields(s) {
		if bareYearRe.MatchString(token) || monthAbbrRe.MatchString(token) {
			return false
		}
	}
	return true
}
