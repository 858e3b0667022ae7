// Package analyze runs the document analysis pipeline end to end:
// extraction, remote inference, and normalization, with a heuristic
// fallback when the inference endpoint is unavailable.
package analyze

import (
	"context"
	"errors"
	"log/slog"
	"time"

	lawlens "github.com/lawlens/lawlens"
	"github.com/lawlens/lawlens/extract"
	"github.com/lawlens/lawlens/inference"
	"github.com/lawlens/lawlens/normalize"
)

// maxTextPreview bounds the extracted-text excerpt included in results and
// logs.
const maxTextPreview = 1000

// Client is the remote inference call the Analyzer depends on. Satisfied by
// *inference.Client.
type Client interface {
	Analyze(ctx context.Context, documentText, filename string) (string, error)
}

var _ Client = (*inference.Client)(nil)

// Result pairs the normalized record with extraction metadata and a bounded
// excerpt of the text the analysis was based on.
type Result struct {
	Record      lawlens.LawRecord
	Document    lawlens.ExtractedDocument
	TextPreview string
}

// Analyzer is the pipeline orchestrator. Each Analyze call is an
// independent, stateless unit of work; the Analyzer itself only carries
// configuration.
type Analyzer struct {
	client  Client
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTimeout bounds the remote inference call (default 60s). Extraction and
// normalization are CPU-bound and run outside the timeout.
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) { a.timeout = d }
}

// WithLogger sets the logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// NewAnalyzer creates an Analyzer backed by the given inference client.
func NewAnalyzer(client Client, opts ...Option) *Analyzer {
	a := &Analyzer{
		client:  client,
		timeout: 60 * time.Second,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Analyze processes one uploaded document. Extraction errors propagate.
// Inference failures (transport, status, timeout) do not: the record is
// built from document heuristics instead and flagged "Pending Review".
func (a *Analyzer) Analyze(ctx context.Context, content []byte, contentType, filename string) (Result, error) {
	doc, err := extract.Document(content, contentType, filename)
	if err != nil {
		return Result{}, err
	}
	if doc.Text == "" {
		return Result{}, &lawlens.ErrNoExtractableText{Format: contentType}
	}

	a.logger.Info("document extracted",
		"filename", filename,
		"chars", doc.Length,
		"words", doc.WordCount)

	record := a.analyzeText(ctx, doc.Text, filename)
	record = finalize(record)

	a.logger.Info("analysis complete",
		"filename", filename,
		"law_id", record.LawID,
		"status", string(record.Status))
	a.logger.Debug("extracted text preview",
		"filename", filename,
		"preview", preview(doc.Text))

	return Result{
		Record:      record,
		Document:    doc,
		TextPreview: preview(doc.Text),
	}, nil
}

// analyzeText runs the remote call under the configured timeout and picks
// the normalization path. A dead endpoint and an endpoint that answers
// garbage are different outcomes: the first yields a heuristic record
// ("Pending Review"), the second a degraded one ("Pending Analysis").
func (a *Analyzer) analyzeText(ctx context.Context, text, filename string) lawlens.LawRecord {
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.client.Analyze(callCtx, text, filename)
	if err != nil {
		var infErr *lawlens.ErrInference
		if errors.As(err, &infErr) || errors.Is(err, context.DeadlineExceeded) {
			a.logger.Warn("inference unavailable, building record from heuristics",
				"filename", filename,
				"error", err)
			return normalize.FromHeuristics(text, filename)
		}
		a.logger.Warn("unexpected inference error, building record from heuristics",
			"filename", filename,
			"error", err)
		return normalize.FromHeuristics(text, filename)
	}
	return normalize.Normalize(raw, filename)
}

// finalize enforces cross-field invariants regardless of which path built
// the record.
func finalize(r lawlens.LawRecord) lawlens.LawRecord {
	if r.StocksImpacted == nil {
		r.StocksImpacted = []lawlens.StockImpact{}
	}
	r.Affected = len(r.StocksImpacted)
	if r.LawID == "" {
		r.LawID = lawlens.NewID()
	}
	return r
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= maxTextPreview {
		return text
	}
	return string(runes[:maxTextPreview]) + "..."
}
