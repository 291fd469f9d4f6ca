//go:build unit

package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestFactory(t *testing.T) (*MetricsFactory, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	factory, err := NewMetricsFactory(provider.Meter("test"), nil)
	require.NoError(t, err)

	return factory, reader
}

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Sum[int64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok)

				return sum
			}
		}
	}

	t.Fatalf("metric %q not collected", name)

	return metricdata.Sum[int64]{}
}

func TestNewMetricsFactory_NilMeter(t *testing.T) {
	t.Parallel()

	factory, err := NewMetricsFactory(nil, nil)
	require.ErrorIs(t, err, ErrNilMeter)
	assert.Nil(t, factory)
}

func TestCounter_RecordsWithLabels(t *testing.T) {
	t.Parallel()

	factory, reader := newTestFactory(t)

	counter, err := factory.Counter(Metric{Name: "failures_total", Unit: "1", Description: "failures"})
	require.NoError(t, err)

	require.NoError(t, counter.WithLabels(map[string]string{"component": "motor"}).AddOne(context.Background()))
	require.NoError(t, counter.WithLabels(map[string]string{"component": "motor"}).Add(context.Background(), 2))

	sum := collectSum(t, reader, "failures_total")
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)

	value, ok := sum.DataPoints[0].Attributes.Value(attribute.Key("component"))
	require.True(t, ok)
	assert.Equal(t, "motor", value.AsString())
}

func TestCounter_IsCachedByName(t *testing.T) {
	t.Parallel()

	factory, _ := newTestFactory(t)

	first, err := factory.Counter(Metric{Name: "cached_total"})
	require.NoError(t, err)

	second, err := factory.Counter(Metric{Name: "cached_total"})
	require.NoError(t, err)

	assert.Equal(t, first.counter, second.counter)
}

func TestCounterBuilder_WithAttributesDoesNotMutateParent(t *testing.T) {
	t.Parallel()

	factory := NewNopFactory()

	base, err := factory.Counter(Metric{Name: "nop_total"})
	require.NoError(t, err)

	child := base.WithAttributes(attribute.String("a", "b"))

	assert.Empty(t, base.attrs)
	assert.Len(t, child.attrs, 1)
	assert.NoError(t, child.AddOne(context.Background()))
}

func TestCounterBuilder_NilCounter(t *testing.T) {
	t.Parallel()

	var builder *CounterBuilder
	require.ErrorIs(t, builder.AddOne(context.Background()), ErrNilCounter)
	require.ErrorIs(t, (&CounterBuilder{}).Add(context.Background(), 1), ErrNilCounter)
}
