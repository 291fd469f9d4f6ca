package handler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/LerianStudio/lib-guard/guard/assert"
	constant "github.com/LerianStudio/lib-guard/guard/constants"
	"github.com/LerianStudio/lib-guard/guard/opentelemetry/metrics"
)

var assertionFailedMetric = metrics.Metric{
	Name:        constant.MetricAssertionFailedTotal,
	Unit:        "1",
	Description: "Total number of failed assertions",
}

// Metrics returns a handler that increments assertion_failed_total labelled
// with component, location (base name and line) and the expression.
// A nil factory yields a handler that does nothing.
func Metrics(factory *metrics.MetricsFactory, component string) assert.Handler {
	if factory == nil {
		return Discard()
	}

	return assert.HandlerFunc(func(file string, line uint32, expr string) {
		counter, err := factory.Counter(assertionFailedMetric)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create assertion metric counter: %v\n", err)
			return
		}

		err = counter.
			WithLabels(map[string]string{
				"component": constant.SanitizeMetricLabel(component),
				"location":  constant.SanitizeMetricLabel(filepath.Base(file) + ":" + strconv.FormatUint(uint64(line), 10)),
				"assertion": constant.SanitizeMetricLabel(expr),
			}).
			AddOne(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to record assertion metric: %v\n", err)
		}
	})
}
