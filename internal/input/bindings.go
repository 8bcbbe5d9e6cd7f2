package input

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
	ErrKeyConflict   = errors.New("key bound to more than one action")
)

// ApplyBindings replaces the keys of every action named in bindings, e.g.
// {"forward": {"w", "up"}}. Actions not named keep their current keys. A
// key named here may end up driving only one action, so moving Q to quit
// also requires moving up off Q. Nothing changes when an error is returned.
func (m *Manager) ApplyBindings(bindings map[string][]string) error {
	rebound := make(map[Action][]glfw.Key, len(bindings))
	for name, keys := range bindings {
		action, ok := ActionByName(name)
		if !ok {
			return fmt.Errorf("binding %q: %w", name, ErrUnknownAction)
		}
		for _, k := range keys {
			key, ok := KeyByName(k)
			if !ok {
				return fmt.Errorf("binding %q key %q: %w", name, k, ErrUnknownKey)
			}
			rebound[action] = append(rebound[action], key)
		}
		if _, ok := rebound[action]; !ok {
			rebound[action] = nil
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := make(map[glfw.Key][]Action, len(m.keyToActions))
	for key, actions := range m.keyToActions {
		for _, a := range actions {
			if _, replaced := rebound[a]; !replaced {
				next[key] = append(next[key], a)
			}
		}
	}
	touched := make(map[glfw.Key]bool)
	for action, keys := range rebound {
		for _, key := range keys {
			touched[key] = true
			if !containsAction(next[key], action) {
				next[key] = append(next[key], action)
			}
		}
	}

	conflicts := make([]string, 0)
	for key := range touched {
		if actions := next[key]; len(actions) > 1 {
			conflicts = append(conflicts, fmt.Sprintf("%s: %v", KeyName(key), actions))
		}
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return fmt.Errorf("%v: %w", conflicts, ErrKeyConflict)
	}

	for key, actions := range next {
		if len(actions) == 0 {
			delete(next, key)
		}
	}
	m.keyToActions = next
	for action := range rebound {
		m.currentState[action] = false
	}
	return nil
}

func containsAction(actions []Action, a Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

// TrackNames restricts held-state reporting to the named actions, the way
// Track does. An empty list leaves tracking unchanged.
func (m *Manager) TrackNames(names []string) error {
	if len(names) == 0 {
		return nil
	}
	actions := make([]Action, 0, len(names))
	for _, name := range names {
		a, ok := ActionByName(name)
		if !ok {
			return fmt.Errorf("tracked action %q: %w", name, ErrUnknownAction)
		}
		actions = append(actions, a)
	}
	m.Track(actions...)
	return nil
}
