package normalize

import (
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	lawlens "github.com/lawlens/lawlens"
)

// Scan windows for the heuristic builders. Titles live in the opening lines,
// jurisdiction markers in the preamble, sector vocabulary anywhere early.
const (
	titleLineScan    = 10
	minTitleLen      = 20
	maxTitleLen      = 100
	jurisdictionScan = 1000
	sectorScan       = 5000
)

var usMarkers = []string{
	"united states", "u.s.", "federal register", "congress",
	"us-federal", "securities and exchange commission",
}

var euMarkers = []string{
	"european union", "european commission", "european parliament",
	"official journal", "eu directive", "eu regulation",
}

// sectorKeywords is an ordered table: the first sector whose keyword set
// hits wins. Order reflects how distinctive each vocabulary is.
var sectorKeywords = []struct {
	sector   string
	keywords []string
}{
	{"Technology", []string{"software", "digital", "data protection", "platform", "artificial intelligence", "cyber"}},
	{"Finance", []string{"bank", "securities", "financial institution", "credit", "investment", "capital requirements"}},
	{"Healthcare", []string{"medical", "pharmaceutical", "health", "drug", "clinical", "patient"}},
	{"Energy", []string{"energy", "renewable", "emissions", "solar", "carbon", "electricity"}},
	{"Manufacturing", []string{"manufacturing", "industrial", "factory", "supply chain", "production facility"}},
}

// FromHeuristics builds a record from the document text alone, used when the
// inference endpoint is unreachable. The record is deliberately conservative:
// status "Pending Review", low confidence, mid-scale impact, no stock links —
// everything here needs a human pass.
func FromHeuristics(documentText, filename string) lawlens.LawRecord {
	return lawlens.LawRecord{
		LawID:          lawlens.DeriveLawID(filename),
		Title:          heuristicTitle(documentText, filename),
		Jurisdiction:   heuristicJurisdiction(documentText),
		Status:         lawlens.StatusPendingReview,
		Sector:         heuristicSector(documentText),
		Impact:         5,
		Confidence:     lawlens.ConfidenceLow,
		Published:      time.Now().Format("2006-01-02"),
		Affected:       0,
		StocksImpacted: []lawlens.StockImpact{},
		Summary:        "Automated analysis unavailable. Record built from document heuristics.",
		KeyProvisions:  []string{},
	}
}

// heuristicTitle takes the first of the opening lines that looks like a
// title (long enough to not be a header fragment), capped at maxTitleLen
// runes. When nothing qualifies the filename minus its extension serves.
func heuristicTitle(documentText, filename string) string {
	lines := strings.Split(documentText, "\n")
	if len(lines) > titleLineScan {
		lines = lines[:titleLineScan]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len([]rune(line)) > minTitleLen {
			runes := []rune(line)
			if len(runes) > maxTitleLen {
				runes = runes[:maxTitleLen]
			}
			return string(runes)
		}
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// heuristicJurisdiction scans the document preamble for jurisdiction
// markers. US markers are checked first; EU is the default for this corpus.
func heuristicJurisdiction(documentText string) string {
	head := scanWindow(documentText, jurisdictionScan)
	for _, marker := range usMarkers {
		if strings.Contains(head, marker) {
			return "US-Federal"
		}
	}
	for _, marker := range euMarkers {
		if strings.Contains(head, marker) {
			return "EU"
		}
	}
	return "EU"
}

// heuristicSector returns the first sector whose keyword set matches the
// opening of the document, or "General".
func heuristicSector(documentText string) string {
	head := scanWindow(documentText, sectorScan)
	for _, entry := range sectorKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(head, kw) {
				return entry.sector
			}
		}
	}
	return "General"
}

// scanWindow prepares the opening of the document for keyword matching:
// NFKC folds compatibility forms (fullwidth letters, ligatures) that PDFs
// in particular produce, so markers match regardless of glyph form.
func scanWindow(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		s = string(runes[:limit])
	}
	return strings.ToLower(norm.NFKC.String(s))
}
