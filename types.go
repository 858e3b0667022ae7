package lawlens

// Status describes where a law record sits in the review pipeline.
//
// Records produced from a successfully parsed model response are Active.
// Records built by keyword heuristics (no model available) are Pending Review.
// Records whose model output could not be parsed are Pending Analysis.
type Status string

const (
	StatusActive          Status = "Active"
	StatusPendingReview   Status = "Pending Review"
	StatusPendingAnalysis Status = "Pending Analysis"
)

// Confidence buckets an estimate into three levels.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// ExtractedDocument is the plain-text form of an uploaded document, produced
// once per upload by the extract package. Length and WordCount are computed
// from the final extracted text, not the raw bytes.
type ExtractedDocument struct {
	Text             string `json:"text"`
	OriginalFilename string `json:"originalFilename"`
	ContentType      string `json:"contentType"`
	Length           int    `json:"length"`
	WordCount        int    `json:"wordCount"`
}

// StockImpact is a single equity's estimated exposure to a law.
type StockImpact struct {
	Ticker                string     `json:"ticker"`
	CompanyName           string     `json:"companyName"`
	Sector                string     `json:"sector"`
	ImpactScore           int        `json:"impactScore"`
	CorrelationConfidence Confidence `json:"correlationConfidence"`
	Notes                 string     `json:"notes"`
}

// LawRecord is the normalized structured description of a legal directive.
// Every field is populated after normalization; Affected always equals
// len(StocksImpacted) and is recomputed, never taken from model output.
type LawRecord struct {
	LawID          string        `json:"lawId"`
	Title          string        `json:"title"`
	Jurisdiction   string        `json:"jurisdiction"`
	Status         Status        `json:"status"`
	Sector         string        `json:"sector"`
	Impact         int           `json:"impact"`
	Confidence     Confidence    `json:"confidence"`
	Published      string        `json:"published"` // YYYY-MM-DD
	Affected       int           `json:"affected"`
	StocksImpacted []StockImpact `json:"stocksImpacted"`

	// Supplementary fields carried through from the model response.
	Summary       string   `json:"summary,omitempty"`
	KeyProvisions []string `json:"keyProvisions,omitempty"`

	// Notes holds a bounded copy of unparseable model output so a reviewer
	// can inspect what the model actually said. Empty on the happy path.
	Notes string `json:"notes,omitempty"`
}
