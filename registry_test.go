package conv

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCelsius float64

func TestRegistry_CustomEdge(t *testing.T) {
	registry := NewRegistry()
	celsiusKey := KeyOf[testCelsius]()
	registry.Register(celsiusKey, String, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return fmt.Sprintf("%.1f°C", float64(from.(testCelsius))), nil
	})
	c := NewWith(registry, DefaultOptions())

	text, err := c.Convert(testCelsius(21.5), String)
	require.NoError(t, err)
	assert.Equal(t, "21.5°C", text)

	// The default registry is unaffected.
	_, err = New(DefaultOptions()).Convert(testCelsius(21.5), String)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	registry := NewRegistry()
	registry.Register(String, Int8, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return int8(len(from.(string))), nil
	})
	c := NewWith(registry, DefaultOptions())

	n, err := c.Convert("abc", Int8)
	require.NoError(t, err)
	assert.Equal(t, int8(3), n)
}

func TestRegistry_AncestorResolution(t *testing.T) {
	registry := NewRegistry()
	celsiusKey := KeyOf[testCelsius]()
	registry.RegisterAncestors(celsiusKey, Number)
	c := NewWith(registry, DefaultOptions())

	// No direct edge exists, so the Number fallback narrows the value.
	n, err := c.Convert(testCelsius(300.9), Int8)
	require.NoError(t, err)
	assert.Equal(t, int8(44), n)

	// The resolution is memoized as a direct edge.
	fn, ok := registry.Lookup(celsiusKey, Int8)
	assert.True(t, ok)
	assert.NotNil(t, fn)
}

func TestRegistry_DirectEdgeBeatsAncestor(t *testing.T) {
	registry := NewRegistry()
	celsiusKey := KeyOf[testCelsius]()
	registry.RegisterAncestors(celsiusKey, Number)
	registry.Register(celsiusKey, Int8, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return int8(-1), nil
	})
	c := NewWith(registry, DefaultOptions())

	n, err := c.Convert(testCelsius(300.9), Int8)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), n)
}

func TestRegistry_Supported(t *testing.T) {
	registry := NewRegistry()
	supported := registry.Supported()

	require.NotEmpty(t, supported[String])
	targets := supported[String]
	for i := 1; i < len(targets); i++ {
		assert.LessOrEqual(t, strings.Compare(targets[i-1].String(), targets[i].String()), 0)
	}
	assert.Contains(t, supported[Int64], Int8)
	assert.Contains(t, supported[Structured], MonthDay)
	assert.NotContains(t, supported[Int8], KeyOf[testCelsius]())
}

func TestRegistry_IsolatedInstances(t *testing.T) {
	first := NewRegistry()
	second := NewRegistry()
	first.Register(String, Int8, func(from interface{}, _ *Converter, _ Options) (interface{}, error) {
		return int8(0), nil
	})

	n, err := NewWith(second, DefaultOptions()).Convert("5", Int8)
	require.NoError(t, err)
	assert.Equal(t, int8(5), n)
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, Int32, KeyOf[int32]())
	assert.Equal(t, Int32, KeyOf[rune]())
	assert.Equal(t, Bytes, KeyOf[[]byte]())
	assert.Equal(t, String, KeyOf[string]())
	custom := KeyOf[testCelsius]()
	assert.Equal(t, "conv.testCelsius", custom.String())
}
