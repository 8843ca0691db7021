package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceID(t *testing.T) {
	t.Run("nested object shape", func(t *testing.T) {
		assert.Equal(t, "3", ReferenceID(map[string]any{"Id": float64(3), "Name": "North Field"}))
		assert.Equal(t, "9", ReferenceID(map[string]any{"Id": 9}))
	})

	t.Run("raw scalar shape", func(t *testing.T) {
		assert.Equal(t, "5", ReferenceID(float64(5)))
		assert.Equal(t, "5", ReferenceID(5))
		assert.Equal(t, "5", ReferenceID("5"))
	})

	t.Run("empty forms", func(t *testing.T) {
		assert.Equal(t, "", ReferenceID(nil))
		assert.Equal(t, "", ReferenceID(map[string]any{"Name": "no id"}))
	})
}

func TestReferenceName(t *testing.T) {
	assert.Equal(t, "North Field", ReferenceName(map[string]any{"Id": 3, "Name": "North Field"}))
	assert.Equal(t, "", ReferenceName(float64(3)))
	assert.Equal(t, "", ReferenceName(nil))
}

func TestFirstFailure(t *testing.T) {
	t.Run("all succeeded", func(t *testing.T) {
		r := &Response{Success: true, Results: []Result{{Success: true}, {Success: true}}}
		_, failed := r.FirstFailure()
		assert.False(t, failed)
	})

	t.Run("first failed message wins", func(t *testing.T) {
		r := &Response{Success: true, Results: []Result{
			{Success: true},
			{Success: false, Message: "duplicate name"},
			{Success: false, Message: "later failure"},
		}}
		msg, failed := r.FirstFailure()
		assert.True(t, failed)
		assert.Equal(t, "duplicate name", msg)
	})

	t.Run("failure without message", func(t *testing.T) {
		r := &Response{Results: []Result{{Success: false}}}
		msg, failed := r.FirstFailure()
		assert.True(t, failed)
		assert.Equal(t, "", msg)
	})
}

func TestFieldReaders(t *testing.T) {
	rec := Record{"s": "hi", "n": 2.5, "b": true, "i": float64(4)}
	assert.Equal(t, "hi", Str(rec, "s"))
	assert.Equal(t, "", Str(rec, "missing"))
	assert.Equal(t, 2.5, Num(rec, "n"))
	assert.Equal(t, 0.0, Num(rec, "s"))
	assert.Equal(t, 4, Int(rec, "i"))
	assert.True(t, Bool(rec, "b"))
	assert.False(t, Bool(rec, "missing"))
}
