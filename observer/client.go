package observer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/lawlens/lawlens/analyze"
)

// ObservedClient wraps an inference client with OTEL instrumentation.
type ObservedClient struct {
	inner    analyze.Client
	inst     *Instruments
	endpoint string
}

// WrapClient returns an instrumented inference client that emits traces,
// metrics, and logs around every remote call. The endpoint string is only
// used as a metric/span attribute.
func WrapClient(inner analyze.Client, endpoint string, inst *Instruments) *ObservedClient {
	return &ObservedClient{inner: inner, inst: inst, endpoint: endpoint}
}

func (o *ObservedClient) Analyze(ctx context.Context, documentText, filename string) (string, error) {
	ctx, span := o.inst.Tracer.Start(ctx, "inference.analyze", trace.WithAttributes(
		AttrEndpoint.String(o.endpoint),
		AttrFilename.String(filename),
		AttrChars.Int(len(documentText)),
	))
	defer span.End()
	start := time.Now()

	generated, err := o.inner.Analyze(ctx, documentText, filename)

	durationMs := float64(time.Since(start).Milliseconds())
	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(AttrGeneratedChars.Int(len(generated)))
	}

	attrs := metric.WithAttributes(AttrEndpoint.String(o.endpoint))
	o.inst.InferenceRequests.Add(ctx, 1, metric.WithAttributes(
		AttrEndpoint.String(o.endpoint),
		attribute.String("status", status),
	))
	o.inst.InferenceDuration.Record(ctx, durationMs, attrs)

	var rec otellog.Record
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetBody(otellog.StringValue("inference call completed"))
	rec.AddAttributes(
		otellog.String("inference.endpoint", o.endpoint),
		otellog.String("document.filename", filename),
		otellog.Int("inference.generated_chars", len(generated)),
		otellog.Float64("inference.duration_ms", durationMs),
		otellog.String("status", status),
	)
	o.inst.Logger.Emit(ctx, rec)

	return generated, err
}

// Compile-time interface check.
var _ analyze.Client = (*ObservedClient)(nil)
