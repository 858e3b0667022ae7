package observer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	lawlens "github.com/lawlens/lawlens"
	"github.com/lawlens/lawlens/analyze"
)

// DocumentAnalyzer is the pipeline surface the observer wraps. Satisfied by
// *analyze.Analyzer.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, content []byte, contentType, filename string) (analyze.Result, error)
}

var _ DocumentAnalyzer = (*analyze.Analyzer)(nil)

// ObservedAnalyzer wraps a DocumentAnalyzer with OTEL instrumentation.
type ObservedAnalyzer struct {
	inner DocumentAnalyzer
	inst  *Instruments
}

// WrapAnalyzer returns an instrumented analyzer that records a span and an
// outcome-labelled counter per document.
func WrapAnalyzer(inner DocumentAnalyzer, inst *Instruments) *ObservedAnalyzer {
	return &ObservedAnalyzer{inner: inner, inst: inst}
}

func (o *ObservedAnalyzer) Analyze(ctx context.Context, content []byte, contentType, filename string) (analyze.Result, error) {
	ctx, span := o.inst.Tracer.Start(ctx, "analysis.document", trace.WithAttributes(
		AttrFilename.String(filename),
		AttrContentType.String(contentType),
	))
	defer span.End()
	start := time.Now()

	res, err := o.inner.Analyze(ctx, content, contentType, filename)

	durationMs := float64(time.Since(start).Milliseconds())
	outcome := outcomeFor(res, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			AttrLawID.String(res.Record.LawID),
			AttrStatus.String(string(res.Record.Status)),
			AttrChars.Int(res.Document.Length),
			AttrWords.Int(res.Document.WordCount),
		)
		o.inst.ExtractedChars.Record(ctx, int64(res.Document.Length))
	}
	span.SetAttributes(AttrOutcome.String(outcome))

	o.inst.Analyses.Add(ctx, 1, metric.WithAttributes(
		AttrContentType.String(contentType),
		AttrOutcome.String(outcome),
	))
	o.inst.AnalysisDuration.Record(ctx, durationMs, metric.WithAttributes(
		AttrOutcome.String(outcome),
	))

	return res, err
}

// outcomeFor labels the analysis result for metrics. The record status
// distinguishes a clean model parse from the degraded and heuristic paths.
func outcomeFor(res analyze.Result, err error) string {
	if err != nil {
		return "failed"
	}
	switch res.Record.Status {
	case lawlens.StatusPendingAnalysis:
		return "degraded"
	case lawlens.StatusPendingReview:
		return "fallback"
	default:
		return "ok"
	}
}
