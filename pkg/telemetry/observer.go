// Package telemetry reports dispatch outcomes as OpenTelemetry metrics.
package telemetry

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/go-drift/bindingx/pkg/bindings"
)

const (
	meterName = "github.com/go-drift/bindingx/pkg/telemetry"

	// ApplyCounter is the name of the counter incremented once per Apply.
	ApplyCounter = "bindingx.apply"

	// AttrProperty and AttrOutcome label ApplyCounter data points.
	AttrProperty = "property"
	AttrOutcome  = "outcome"

	// unknownProperty replaces unregistered paths to bound cardinality.
	unknownProperty = "unknown"
)

// Observer is a bindings.Observer that counts outcomes per property.
type Observer struct {
	applies metric.Int64Counter
}

var _ bindings.Observer = (*Observer)(nil)

// NewObserver creates the counter on mp. A nil mp uses the global provider.
func NewObserver(mp metric.MeterProvider) (*Observer, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	counter, err := mp.Meter(meterName).Int64Counter(ApplyCounter,
		metric.WithDescription("Property updates applied by the binding dispatcher."),
		metric.WithUnit("{update}"),
	)
	if err != nil {
		return nil, err
	}
	return &Observer{applies: counter}, nil
}

// Observe increments the counter.
func (o *Observer) Observe(_ int, path string, outcome bindings.Outcome) {
	if outcome == bindings.OutcomeUnknownProperty {
		path = unknownProperty
	}
	o.applies.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String(AttrProperty, path),
		attribute.String(AttrOutcome, outcome.String()),
	))
}

// Count is one ApplyCounter data point.
type Count struct {
	Property string
	Outcome  string
	Value    int64
}

// Counts extracts ApplyCounter data points from collected metrics, sorted
// by property then outcome.
func Counts(rm metricdata.ResourceMetrics) []Count {
	var out []Count
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != meterName {
			continue
		}
		for _, m := range sm.Metrics {
			if m.Name != ApplyCounter {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				prop, _ := dp.Attributes.Value(AttrProperty)
				outcome, _ := dp.Attributes.Value(AttrOutcome)
				out = append(out, Count{
					Property: prop.AsString(),
					Outcome:  outcome.AsString(),
					Value:    dp.Value,
				})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Property != out[j].Property {
			return out[i].Property < out[j].Property
		}
		return out[i].Outcome < out[j].Outcome
	})
	return out
}
