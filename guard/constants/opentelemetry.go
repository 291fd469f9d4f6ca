package constant

// TelemetrySDKName identifies this library in OTEL instrumentation scopes.
const TelemetrySDKName = "lib-guard/opentelemetry"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
const MaxMetricLabelLength = 64

// AttrPrefixAssertion is the prefix for assertion event attributes.
const AttrPrefixAssertion = "assertion."

// Assertion attribute keys used on span events, log fields and report tags.
const (
	AttrAssertionFile      = AttrPrefixAssertion + "file"
	AttrAssertionLine      = AttrPrefixAssertion + "line"
	AttrAssertionExpr      = AttrPrefixAssertion + "expr"
	AttrAssertionComponent = AttrPrefixAssertion + "component"
	AttrAssertionID        = AttrPrefixAssertion + "id"
)

// MetricAssertionFailedTotal is the counter metric for failed assertions.
const MetricAssertionFailedTotal = "assertion_failed_total"

// Telemetry span and event names.
const (
	// SpanAssertionFailure is the name of the span opened for each reported failure.
	SpanAssertionFailure = "assert.Fail"
	// EventAssertionFailed is the span event name for assertion failures.
	EventAssertionFailed = "assertion.failed"
)

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
