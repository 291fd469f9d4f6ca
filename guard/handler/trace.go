package handler

import (
	"context"
	"fmt"

	"github.com/LerianStudio/lib-guard/guard/assert"
	constant "github.com/LerianStudio/lib-guard/guard/constants"
	"github.com/LerianStudio/lib-guard/guard/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Trace returns a handler that records each failure as a short span carrying
// an assertion.failed event and an error status. A nil tracer uses the
// global tracer provider.
func Trace(tracer trace.Tracer, component string) assert.Handler {
	if tracer == nil {
		tracer = otel.Tracer(constant.TelemetrySDKName)
	}

	return assert.HandlerFunc(func(file string, line uint32, expr string) {
		_, span := tracer.Start(context.Background(), constant.SpanAssertionFailure)
		defer span.End()

		attrs := []attribute.KeyValue{
			attribute.String(constant.AttrAssertionFile, runtime.RedactPath(file)),
			attribute.Int64(constant.AttrAssertionLine, int64(line)),
			attribute.String(constant.AttrAssertionExpr, expr),
		}

		if component != "" {
			attrs = append(attrs, attribute.String(constant.AttrAssertionComponent, component))
		}

		span.AddEvent(constant.EventAssertionFailed, trace.WithAttributes(attrs...))
		span.RecordError(fmt.Errorf("%w: %s", assert.ErrAssertionFailed, expr))
		span.SetStatus(codes.Error, statusMessage(component))
	})
}

func statusMessage(component string) string {
	if component == "" {
		return "assertion failed"
	}

	return "assertion failed in " + component
}
