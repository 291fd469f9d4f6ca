package handler

import (
	"context"
	"strconv"

	"github.com/LerianStudio/lib-guard/guard/assert"
	constant "github.com/LerianStudio/lib-guard/guard/constants"
	"github.com/LerianStudio/lib-guard/guard/internal/nilcheck"
	"github.com/LerianStudio/lib-guard/guard/runtime"
)

// Report returns a handler that forwards each failure to an ErrorReporter.
// A nil reporter resolves runtime.GetErrorReporter at failure time; when
// none is configured the failure is dropped.
func Report(reporter runtime.ErrorReporter, component string) assert.Handler {
	return assert.HandlerFunc(func(file string, line uint32, expr string) {
		r := reporter
		if nilcheck.Interface(r) {
			r = runtime.GetErrorReporter()
		}

		if nilcheck.Interface(r) {
			return
		}

		failure := newFailure(runtime.RedactPath(file), line, expr)

		tags := map[string]string{
			constant.AttrAssertionID:   failure.ID,
			constant.AttrAssertionFile: failure.File,
			constant.AttrAssertionLine: strconv.FormatUint(uint64(line), 10),
			constant.AttrAssertionExpr: expr,
		}

		if component != "" {
			tags[constant.AttrAssertionComponent] = component
		}

		r.CaptureException(context.Background(), failure, tags)
	})
}
