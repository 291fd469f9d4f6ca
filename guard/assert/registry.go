package assert

import (
	"errors"
	"math"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/LerianStudio/lib-guard/guard/internal/nilcheck"
)

// Handler receives assertion failures.
type Handler interface {
	HandleFailure(file string, line uint32, expr string)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(file string, line uint32, expr string)

// HandleFailure calls f(file, line, expr).
func (f HandlerFunc) HandleFailure(file string, line uint32, expr string) {
	f(file, line, expr)
}

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// Failure describes a failed assertion. Handlers that need to surface a
// failure as an error (or panic value) use it; the registry itself never
// allocates one.
type Failure struct {
	ID   string
	File string
	Line uint32
	Expr string
}

// Error returns the formatted assertion failure message.
func (f *Failure) Error() string {
	if f == nil {
		return ErrAssertionFailed.Error()
	}

	msg := "assertion failed: " + f.Expr

	if f.File != "" {
		msg += " at " + filepath.Base(f.File) + ":" + strconv.FormatUint(uint64(f.Line), 10)
	}

	return msg
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (f *Failure) Unwrap() error {
	return ErrAssertionFailed
}

// haltInterval is how long each iteration of the Halt loop sleeps.
const haltInterval = time.Second

// Halt never returns. It is the fallback used when no handler is registered.
func Halt(_ string, _ uint32, _ string) {
	for {
		time.Sleep(haltInterval)
	}
}

// Option configures a Registry.
type Option func(*Registry)

// WithFallback replaces Halt as the handler used while the slot is empty.
// A nil handler is ignored.
func WithFallback(h Handler) Option {
	return func(r *Registry) {
		if !nilcheck.Interface(h) {
			r.fallback = h
		}
	}
}

// Registry holds the handler slot. The zero value is not usable; create one
// with NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	handler  Handler
	fallback Handler
}

// NewRegistry creates a Registry with an empty handler slot.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{fallback: HandlerFunc(Halt)}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var std = NewRegistry()

// Default returns the process-wide registry used by the package-level functions.
func Default() *Registry {
	return std
}

func (r *Registry) self() *Registry {
	if r == nil {
		return std
	}

	return r
}

func toLine(line int) uint32 {
	if line < 0 {
		return 0
	}

	if uint64(line) > math.MaxUint32 {
		return math.MaxUint32
	}

	return uint32(line)
}
