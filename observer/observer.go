// Package observer provides OTEL-based observability for document analysis.
//
// It wraps the inference client and the pipeline analyzer with instrumented
// versions that emit traces, metrics, and logs via OpenTelemetry. Export
// goes to any OTEL-compatible backend via the standard OTEL env vars.
package observer

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/lawlens/lawlens/observer"

// Instruments holds all OTEL instruments used by the observer wrappers.
type Instruments struct {
	Tracer trace.Tracer
	Meter  metric.Meter
	Logger otellog.Logger

	// Counters
	Analyses          metric.Int64Counter
	InferenceRequests metric.Int64Counter

	// Histograms
	AnalysisDuration  metric.Float64Histogram
	InferenceDuration metric.Float64Histogram
	ExtractedChars    metric.Int64Histogram
}

// Init sets up OTEL trace, metric, and log providers with OTLP HTTP exporters.
// Configuration comes from standard OTEL env vars (OTEL_EXPORTER_OTLP_ENDPOINT, etc.).
// Returns a shutdown function that must be called on application exit.
func Init(ctx context.Context) (*Instruments, func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName("lawlens")),
		resource.WithFromEnv(),
	)
	if err != nil {
		return nil, nil, err
	}

	traceExp, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	metricExp, err := otlpmetrichttp.New(ctx)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logExp, err := otlploghttp.New(ctx)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, nil, err
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExp)),
		sdklog.WithResource(res),
	)
	global.SetLoggerProvider(lp)

	inst, err := newInstruments()
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		_ = lp.Shutdown(ctx)
		return nil, nil, err
	}

	shutdown := func(ctx context.Context) error {
		return errors.Join(
			tp.Shutdown(ctx),
			mp.Shutdown(ctx),
			lp.Shutdown(ctx),
		)
	}

	return inst, shutdown, nil
}

func newInstruments() (*Instruments, error) {
	tracer := otel.Tracer(scopeName)
	meter := otel.Meter(scopeName)
	logger := global.GetLoggerProvider().Logger(scopeName)

	analyses, err := meter.Int64Counter("analysis.documents",
		metric.WithDescription("Documents analyzed, by outcome"),
		metric.WithUnit("{document}"))
	if err != nil {
		return nil, err
	}

	inferenceRequests, err := meter.Int64Counter("inference.requests",
		metric.WithDescription("Inference endpoint request count"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, err
	}

	analysisDuration, err := meter.Float64Histogram("analysis.duration",
		metric.WithDescription("End-to-end document analysis duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	inferenceDuration, err := meter.Float64Histogram("inference.duration",
		metric.WithDescription("Inference call duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	extractedChars, err := meter.Int64Histogram("extract.chars",
		metric.WithDescription("Characters of text extracted per document"),
		metric.WithUnit("{char}"))
	if err != nil {
		return nil, err
	}

	return &Instruments{
		Tracer:            tracer,
		Meter:             meter,
		Logger:            logger,
		Analyses:          analyses,
		InferenceRequests: inferenceRequests,
		AnalysisDuration:  analysisDuration,
		InferenceDuration: inferenceDuration,
		ExtractedChars:    extractedChars,
	}, nil
}
