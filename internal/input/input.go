package input

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a raylib key code (KEY_A = 65 … KEY_Z = 90, KEY_ZERO = 48 … KEY_NINE = 57).
type Key int32

const (
	KeyC Key = 67
	KeyV Key = 86
)

// Action names a discrete state transition.
type Action string

const (
	ToggleCamera Action = "toggle-camera"
	CycleColor   Action = "cycle-color"
)

// ParseKey converts a config key name ("C", "v", "7") to a key code.
func ParseKey(name string) (Key, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if len(s) != 1 {
		return 0, fmt.Errorf("input: unsupported key %q (want a single letter or digit)", name)
	}
	c := s[0]
	if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return Key(c), nil
	}
	return 0, fmt.Errorf("input: unsupported key %q (want a single letter or digit)", name)
}

// String returns the key as its letter or digit.
func (k Key) String() string {
	if (k >= 'A' && k <= 'Z') || (k >= '0' && k <= '9') {
		return string(rune(k))
	}
	return fmt.Sprintf("key(%d)", int32(k))
}

type binding struct {
	action Action
	run    func()
}

// Handler maps keys to actions. Keys not bound are ignored.
type Handler struct {
	bindings map[Key]binding
}

// NewHandler returns a handler with no bindings.
func NewHandler() *Handler {
	return &Handler{bindings: make(map[Key]binding)}
}

// Bind maps key to action, running run when the key is pressed. A key can carry only one
// action, and an action only one key.
func (h *Handler) Bind(key Key, action Action, run func()) error {
	if b, ok := h.bindings[key]; ok {
		return fmt.Errorf("input: key %s already bound to %s", key, b.action)
	}
	for k, b := range h.bindings {
		if b.action == action {
			return fmt.Errorf("input: %s already bound to key %s", action, k)
		}
	}
	h.bindings[key] = binding{action: action, run: run}
	return nil
}

// Handle runs the action bound to key. It reports whether key was bound.
func (h *Handler) Handle(key Key) bool {
	b, ok := h.bindings[key]
	if !ok {
		return false
	}
	if b.run != nil {
		b.run()
	}
	return true
}

// Keys returns the bound keys in ascending order (the frame loop polls these).
func (h *Handler) Keys() []Key {
	keys := make([]Key, 0, len(h.bindings))
	for k := range h.bindings {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// KeyFor returns the key bound to action.
func (h *Handler) KeyFor(action Action) (Key, bool) {
	for k, b := range h.bindings {
		if b.action == action {
			return k, true
		}
	}
	return 0, false
}

// ActionFor returns the action bound to key.
func (h *Handler) ActionFor(key Key) (Action, bool) {
	b, ok := h.bindings[key]
	return b.action, ok
}
