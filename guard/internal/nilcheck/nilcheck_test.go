//go:build unit

package nilcheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type failureHandler interface {
	HandleFailure(file string, line uint32, expr string)
}

type handlerFunc func(file string, line uint32, expr string)

func (f handlerFunc) HandleFailure(file string, line uint32, expr string) { f(file, line, expr) }

type pointerHandler struct{}

func (*pointerHandler) HandleFailure(string, uint32, string) {}

func TestInterface(t *testing.T) {
	t.Parallel()

	var nilFunc handlerFunc
	var nilPointer *pointerHandler
	var nilIface failureHandler

	var typedNilFunc failureHandler = nilFunc
	var typedNilPointer failureHandler = nilPointer

	require.True(t, Interface(nil))
	require.True(t, Interface(nilIface))
	require.True(t, Interface(typedNilFunc))
	require.True(t, Interface(typedNilPointer))
	require.True(t, Interface([]string(nil)))
	require.True(t, Interface(map[string]int(nil)))

	require.False(t, Interface(handlerFunc(func(string, uint32, string) {})))
	require.False(t, Interface(&pointerHandler{}))
	require.False(t, Interface(0))
	require.False(t, Interface(""))
	require.False(t, Interface(pointerHandler{}))
}
