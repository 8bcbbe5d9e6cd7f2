package input

import (
	"strings"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical engine action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveForward:  "forward",
	ActionMoveBackward: "backward",
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionMoveUp:       "up",
	ActionMoveDown:     "down",
	ActionQuit:         "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves config names such as "forward" or "quit".
func ActionByName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// Manager tracks held state per logical action. Only tracked actions ever
// report as held, mirroring the set of keys the engine polls each frame.
type Manager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	tracked      [ActionCount]bool
	currentState [ActionCount]bool
}

// NewManager creates a Manager with WASD + Q/E movement and Escape to quit,
// every action tracked.
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeyQ, ActionMoveUp)
	m.BindKey(glfw.KeyE, ActionMoveDown)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	for a := Action(0); a < ActionCount; a++ {
		m.tracked[a] = true
	}
	return m
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.keyToActions[key] {
		if existing == action {
			return
		}
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.keyToActions, key)
}

// UnbindAction removes every key binding that targets action.
func (m *Manager) UnbindAction(action Action) {
	if action < 0 || action >= ActionCount {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, actions := range m.keyToActions {
		kept := actions[:0]
		for _, a := range actions {
			if a != action {
				kept = append(kept, a)
			}
		}
		if len(kept) == 0 {
			delete(m.keyToActions, key)
		} else {
			m.keyToActions[key] = kept
		}
	}
	m.currentState[action] = false
}

// Bound reports whether key triggers action.
func (m *Manager) Bound(key glfw.Key, action Action) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.keyToActions[key] {
		if a == action {
			return true
		}
	}
	return false
}

// Track restricts held-state reporting to the given actions.
func (m *Manager) Track(actions ...Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tracked = [ActionCount]bool{}
	for _, a := range actions {
		if a >= 0 && a < ActionCount {
			m.tracked[a] = true
		}
	}
}

// Tracked returns the tracked actions in declaration order.
func (m *Manager) Tracked() []Action {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Action, 0, ActionCount)
	for a := Action(0); a < ActionCount; a++ {
		if m.tracked[a] {
			out = append(out, a)
		}
	}
	return out
}

// HandleKeyEvent processes a key event and updates internal state
// This can be called from a custom key callback
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, exists := m.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		m.currentState[act] = isPressed
	}
}

// IsActive returns true if the action is tracked and currently held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tracked[action] && m.currentState[action]
}
