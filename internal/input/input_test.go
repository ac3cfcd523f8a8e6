package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	k, err := ParseKey("C")
	require.NoError(t, err)
	assert.Equal(t, KeyC, k)

	k, err = ParseKey(" v ")
	require.NoError(t, err)
	assert.Equal(t, KeyV, k)

	k, err = ParseKey("7")
	require.NoError(t, err)
	assert.Equal(t, Key(55), k)

	for _, bad := range []string{"", "F1", "@", "cc"} {
		_, err := ParseKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "C", KeyC.String())
	assert.Equal(t, "key(256)", Key(256).String())
}

func TestHandleRunsBoundAction(t *testing.T) {
	h := NewHandler()
	toggles, cycles := 0, 0
	require.NoError(t, h.Bind(KeyC, ToggleCamera, func() { toggles++ }))
	require.NoError(t, h.Bind(KeyV, CycleColor, func() { cycles++ }))

	assert.True(t, h.Handle(KeyC))
	assert.True(t, h.Handle(KeyV))
	assert.True(t, h.Handle(KeyV))
	assert.False(t, h.Handle(Key('X')))

	assert.Equal(t, 1, toggles)
	assert.Equal(t, 2, cycles)
	assert.Equal(t, []Key{KeyC, KeyV}, h.Keys())

	k, ok := h.KeyFor(CycleColor)
	assert.True(t, ok)
	assert.Equal(t, KeyV, k)
	_, ok = h.KeyFor("jump")
	assert.False(t, ok)

	a, ok := h.ActionFor(KeyC)
	assert.True(t, ok)
	assert.Equal(t, ToggleCamera, a)
	_, ok = h.ActionFor(Key('X'))
	assert.False(t, ok)
}

func TestBindRejectsConflicts(t *testing.T) {
	h := NewHandler()
	require.NoError(t, h.Bind(KeyC, ToggleCamera, nil))
	assert.Error(t, h.Bind(KeyC, CycleColor, nil))
	assert.Error(t, h.Bind(KeyV, ToggleCamera, nil))
	assert.True(t, h.Handle(KeyC), "nil callbacks are allowed")
}
