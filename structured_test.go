package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_InsertionOrder(t *testing.T) {
	s := NewObject()
	s.Put("b", 1).Put("a", 2).Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, s.Keys())
	value, ok := s.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, value)
	assert.Equal(t, 2, s.Len())
}

func TestObjectOf(t *testing.T) {
	s := ObjectOf("month", 12, "day", 25)
	assert.Equal(t, []string{"month", "day"}, s.Keys())
	assert.True(t, s.Has("month", "day"))
	assert.False(t, s.Has("month", "year"))

	assert.Panics(t, func() { ObjectOf("odd") })
}

func TestFromMap(t *testing.T) {
	s, err := FromMap(map[string]interface{}{"b": 1, "a": 2})
	require.NoError(t, err)
	// Map sources have no inherent order; keys come out sorted.
	assert.Equal(t, []string{"a", "b"}, s.Keys())

	typed, err := FromMap(map[string]int{"n": 7})
	require.NoError(t, err)
	value, ok := typed.Get("n")
	assert.True(t, ok)
	assert.Equal(t, 7, value)

	intKeys, err := FromMap(map[int]string{2: "two", 1: "one"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, intKeys.Keys())

	_, err = FromMap("not a map")
	assert.Error(t, err)
}

func TestFromStruct(t *testing.T) {
	type payload struct {
		UserName string
		Count    int    `json:"total"`
		Ignored  string `json:"-"`
		hidden   int
	}
	s, err := FromStruct(payload{UserName: "ana", Count: 3, hidden: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"userName", "total"}, s.Keys())

	name, ok := s.Get("userName")
	assert.True(t, ok)
	assert.Equal(t, "ana", name)

	ptr, err := FromStruct(&payload{UserName: "bo"})
	require.NoError(t, err)
	name, _ = ptr.Get("userName")
	assert.Equal(t, "bo", name)
}

func TestObject_JSON(t *testing.T) {
	s := ObjectOf("name", "ana", "count", 3.0, "active", true)
	data, err := s.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ana","count":3,"active":true}`, string(data))

	parsed, err := FromJSON([]byte(`{"name":"ana","count":3}`))
	require.NoError(t, err)
	name, ok := parsed.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "ana", name)
	count, _ := parsed.Get("count")
	assert.Equal(t, float64(3), count)

	_, err = FromJSON([]byte(`[1,2]`))
	assert.Error(t, err)
}
