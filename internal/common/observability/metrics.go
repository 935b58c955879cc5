package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability records invocation-level counters and durations through an
// otel meter bridged to the Prometheus registry. All methods are safe on a
// nil receiver so tests can skip the exporter entirely.
type Observability struct {
	meterProvider     *metric.MeterProvider
	meter             otelmetric.Meter
	retrievalCounter  otelmetric.Int64Counter
	retrievalDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	retrievalCounter, _ := meter.Int64Counter(
		"retrievals.processed",
		otelmetric.WithDescription("Number of retrieveDocs invocations processed"),
	)

	retrievalDuration, _ := meter.Float64Histogram(
		"retrievals.duration",
		otelmetric.WithDescription("retrieveDocs invocation duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:     provider,
		meter:             meter,
		retrievalCounter:  retrievalCounter,
		retrievalDuration: retrievalDuration,
	}
}

func (o *Observability) RecordRetrieval(ctx context.Context, status string) {
	if o == nil || o.retrievalCounter == nil {
		return
	}
	o.retrievalCounter.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("status", status),
	))
}

func (o *Observability) RecordRetrievalDuration(ctx context.Context, duration time.Duration, status string) {
	if o == nil || o.retrievalDuration == nil {
		return
	}
	o.retrievalDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
		attribute.String("status", status),
	))
}

func (o *Observability) Shutdown() {
	if o == nil || o.meterProvider == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = o.meterProvider.Shutdown(ctx)
}
