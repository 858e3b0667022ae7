package normalize

import lawlens "github.com/lawlens/lawlens"

// company is one row of the static ticker lookup.
type company struct {
	Name   string
	Sector string
}

// companies maps well-known tickers to their names and sectors. Tickers
// outside this table fall back to "<TICKER> Corp." with the record's sector.
var companies = map[string]company{
	"AAPL":  {"Apple Inc.", "Technology"},
	"GOOGL": {"Alphabet Inc.", "Technology"},
	"MSFT":  {"Microsoft Corporation", "Technology"},
	"META":  {"Meta Platforms Inc.", "Technology"},
	"AMZN":  {"Amazon.com Inc.", "Technology"},
	"NVDA":  {"NVIDIA Corporation", "Technology"},
	"TSLA":  {"Tesla Inc.", "Clean Energy"},
	"ENPH":  {"Enphase Energy Inc.", "Clean Energy"},
	"RUN":   {"Sunrun Inc.", "Clean Energy"},
	"NEE":   {"NextEra Energy Inc.", "Clean Energy"},
	"JNJ":   {"Johnson & Johnson", "Healthcare"},
	"PFE":   {"Pfizer Inc.", "Healthcare"},
	"UNH":   {"UnitedHealth Group", "Healthcare"},
	"JPM":   {"JPMorgan Chase & Co.", "Finance"},
	"GS":    {"Goldman Sachs Group", "Finance"},
	"BAC":   {"Bank of America Corporation", "Finance"},
	"XOM":   {"Exxon Mobil Corporation", "Energy"},
	"CVX":   {"Chevron Corporation", "Energy"},
	"GM":    {"General Motors Company", "Manufacturing"},
	"F":     {"Ford Motor Company", "Manufacturing"},
}

// stockImpactNote marks model-derived stock links so reviewers can tell them
// apart from manually curated relationships.
const stockImpactNote = "Identified by AI analysis of regulatory text"

// confidenceFromCost maps a compliance-cost category onto a confidence level.
// Unrecognized categories read as Medium.
func confidenceFromCost(cost string) lawlens.Confidence {
	switch cost {
	case "Low":
		return lawlens.ConfidenceLow
	case "Medium":
		return lawlens.ConfidenceMedium
	case "High", "Very High":
		return lawlens.ConfidenceHigh
	default:
		return lawlens.ConfidenceMedium
	}
}

// correlationConfidence is a pure function of the record's impact score.
func correlationConfidence(impactScore int) lawlens.Confidence {
	switch {
	case impactScore >= 8:
		return lawlens.ConfidenceHigh
	case impactScore >= 5:
		return lawlens.ConfidenceMedium
	default:
		return lawlens.ConfidenceLow
	}
}
