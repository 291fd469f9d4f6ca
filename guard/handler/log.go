package handler

import (
	"context"
	"fmt"
	"os"

	"github.com/LerianStudio/lib-guard/guard/assert"
	constant "github.com/LerianStudio/lib-guard/guard/constants"
	"github.com/LerianStudio/lib-guard/guard/log"
	"github.com/LerianStudio/lib-guard/guard/runtime"
)

// Log returns a handler that logs each failure at error level and returns.
// A nil logger writes a single line to stderr instead.
func Log(logger log.Logger) assert.Handler {
	return assert.HandlerFunc(func(file string, line uint32, expr string) {
		file = runtime.RedactPath(file)

		if logger == nil {
			fmt.Fprintf(os.Stderr, "ASSERTION FAILED: %s at %s:%d\n", expr, file, line)
			return
		}

		logger.Log(context.Background(), log.LevelError, "ASSERTION FAILED: "+expr,
			log.String(constant.AttrAssertionFile, file),
			log.Uint32(constant.AttrAssertionLine, line),
			log.String(constant.AttrAssertionExpr, expr),
		)
	})
}
