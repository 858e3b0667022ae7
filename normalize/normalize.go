// Package normalize turns raw model output into a fully populated LawRecord.
//
// Model output is untrusted: it may wrap JSON in prose, omit fields, mistype
// them, or be garbage. Normalize never fails — unparseable output yields a
// degraded record flagged for human review instead of an error.
package normalize

import (
	"encoding/json"
	"strings"

	"github.com/araddon/dateparse"

	lawlens "github.com/lawlens/lawlens"
)

// maxRawNotes bounds how much raw model output a degraded record keeps for
// reviewer inspection.
const maxRawNotes = 1000

// defaultPublished is used when the model supplies no usable date.
const defaultPublished = "2024-01-01"

// Normalize parses raw model output and maps it onto a LawRecord. It never
// returns an error: output that cannot be parsed as JSON produces a degraded
// record with status "Pending Analysis" and the raw output preserved in
// Notes.
func Normalize(raw, filename string) lawlens.LawRecord {
	obj, ok := recoverJSON(raw)
	if !ok {
		return degraded(raw, filename)
	}
	return transform(obj, filename)
}

// recoverJSON extracts a JSON object from free-form model text. Models
// routinely wrap the object in explanatory prose, so the substring from the
// first '{' to the last '}' is tried; without a brace pair the whole text is
// parsed.
//
// Known limitation: when the output holds several objects, or a string value
// contains a brace, the bounded substring spans them all and the parse fails;
// such output goes down the degraded path rather than being half-recovered.
func recoverJSON(raw string) (map[string]any, bool) {
	candidate := raw
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start != -1 && end != -1 && end > start {
		candidate = raw[start : end+1]
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// transform maps the parsed object onto the output schema, substituting a
// named default for every absent, null, or mistyped field so the record is
// always fully populated.
func transform(obj map[string]any, filename string) lawlens.LawRecord {
	impact := clampImpact(intField(obj, "impactScore", 5))
	sector := stringField(obj, "sector", "General")
	stocks := enrichStocks(listField(obj, "affectedStocks"), impact, sector)

	return lawlens.LawRecord{
		LawID:          stringField(obj, "lawId", lawlens.DeriveLawID(filename)),
		Title:          stringField(obj, "title", "Untitled Directive"),
		Jurisdiction:   stringField(obj, "jurisdiction", "EU"),
		Status:         lawlens.StatusActive,
		Sector:         sector,
		Impact:         impact,
		Confidence:     confidenceFromCost(stringField(obj, "complianceCost", "Medium")),
		Published:      publishedDate(stringField(obj, "effectiveDate", ""), stringField(obj, "dateEnacted", "")),
		Affected:       len(stocks),
		StocksImpacted: stocks,
		Summary:        stringField(obj, "summary", "No summary available"),
		KeyProvisions:  stringListField(obj, "keyProvisions"),
	}
}

// enrichStocks builds a StockImpact per ticker string. Non-string entries in
// the model's list are skipped, not errors.
func enrichStocks(affected []any, impact int, sector string) []lawlens.StockImpact {
	stocks := make([]lawlens.StockImpact, 0, len(affected))
	for _, entry := range affected {
		ticker, ok := entry.(string)
		if !ok || ticker == "" {
			continue
		}
		c, known := companies[ticker]
		if !known {
			c = company{Name: ticker + " Corp.", Sector: sector}
		}
		stocks = append(stocks, lawlens.StockImpact{
			Ticker:                ticker,
			CompanyName:           c.Name,
			Sector:                c.Sector,
			ImpactScore:           impact,
			CorrelationConfidence: correlationConfidence(impact),
			Notes:                 stockImpactNote,
		})
	}
	return stocks
}

// publishedDate picks the first supplied date and coerces it to YYYY-MM-DD.
// Free-form dates go through a lenient parse; anything unusable falls back
// to the fixed default.
func publishedDate(effectiveDate, dateEnacted string) string {
	for _, candidate := range []string{effectiveDate, dateEnacted} {
		if candidate == "" {
			continue
		}
		t, err := dateparse.ParseAny(candidate)
		if err != nil {
			continue
		}
		return t.Format("2006-01-02")
	}
	return defaultPublished
}

func clampImpact(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

// degraded builds the parse-failure record. It is a first-class outcome:
// the caller gets a complete LawRecord flagged "Pending Analysis", with the
// raw model output preserved (truncated) so a reviewer can see what the
// model actually said.
func degraded(raw, filename string) lawlens.LawRecord {
	notes := raw
	if len([]rune(notes)) > maxRawNotes {
		notes = string([]rune(notes)[:maxRawNotes])
	}
	return lawlens.LawRecord{
		LawID:          lawlens.DeriveLawID(filename),
		Title:          filename,
		Jurisdiction:   "EU",
		Status:         lawlens.StatusPendingAnalysis,
		Sector:         "General",
		Impact:         5,
		Confidence:     lawlens.ConfidenceMedium,
		Published:      defaultPublished,
		Affected:       0,
		StocksImpacted: []lawlens.StockImpact{},
		Summary:        "Failed to parse directive. Raw model output preserved in notes.",
		KeyProvisions:  []string{},
		Notes:          notes,
	}
}

// stringField reads obj[key] as a string, substituting def when the key is
// absent, null, empty, or not a string.
func stringField(obj map[string]any, key, def string) string {
	if v, ok := obj[key].(string); ok && v != "" {
		return v
	}
	return def
}

// intField reads obj[key] as an integer. JSON numbers decode as float64;
// fractional scores are truncated toward zero.
func intField(obj map[string]any, key string, def int) int {
	if v, ok := obj[key].(float64); ok {
		return int(v)
	}
	return def
}

func listField(obj map[string]any, key string) []any {
	if v, ok := obj[key].([]any); ok {
		return v
	}
	return nil
}

// stringListField keeps only the string entries of a model-supplied list.
func stringListField(obj map[string]any, key string) []string {
	list := listField(obj, key)
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
