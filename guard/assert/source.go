//go:build !noassert

package assert

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"
	"sync"
)

// unknownExpr is reported when the expression cannot be recovered from source.
const unknownExpr = "<unknown>"

const maxExprLength = 200

var exprCache sync.Map // "file:line" -> string

// sourceExpr renders the condition passed to the Check or That call found at
// file:line. A lazy condition of the form func() bool { return X } renders
// as X. Results, including misses, are cached per location.
func sourceExpr(file string, line uint32) string {
	if file == "" || line == 0 {
		return unknownExpr
	}

	key := file + ":" + strconv.FormatUint(uint64(line), 10)

	if cached, ok := exprCache.Load(key); ok {
		if s, ok := cached.(string); ok {
			return s
		}
	}

	expr := renderExpr(file, int(line))
	exprCache.Store(key, expr)

	return expr
}

func renderExpr(file string, line int) string {
	src, err := os.ReadFile(file)
	if err != nil {
		return unknownExpr
	}

	fset := token.NewFileSet()

	parsed, err := parser.ParseFile(fset, file, src, parser.SkipObjectResolution)
	if err != nil {
		return unknownExpr
	}

	call := findCheckCall(fset, parsed, line)
	if call == nil {
		return unknownExpr
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, conditionOf(call.Args[0])); err != nil {
		return unknownExpr
	}

	return truncateExpr(strings.Join(strings.Fields(buf.String()), " "))
}

// findCheckCall returns the innermost Check or That call spanning line.
func findCheckCall(fset *token.FileSet, file *ast.File, line int) *ast.CallExpr {
	var (
		found *ast.CallExpr
		span  int
	)

	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 || !isCheckFunc(call.Fun) {
			return true
		}

		start := fset.Position(call.Pos()).Line
		end := fset.Position(call.End()).Line

		if line < start || line > end {
			return true
		}

		if found == nil || end-start < span {
			found, span = call, end-start
		}

		return true
	})

	return found
}

func isCheckFunc(fun ast.Expr) bool {
	var name string

	switch f := fun.(type) {
	case *ast.Ident:
		name = f.Name
	case *ast.SelectorExpr:
		name = f.Sel.Name
	default:
		return false
	}

	return name == "Check" || name == "That"
}

// conditionOf unwraps func() bool { return X } to X.
func conditionOf(arg ast.Expr) ast.Node {
	lit, ok := arg.(*ast.FuncLit)
	if !ok || lit.Body == nil || len(lit.Body.List) != 1 {
		return arg
	}

	ret, ok := lit.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return arg
	}

	return ret.Results[0]
}

func truncateExpr(s string) string {
	if len(s) <= maxExprLength {
		return s
	}

	return s[:maxExprLength] + "..."
}
