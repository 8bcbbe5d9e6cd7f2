package input

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var namedKeys = map[string]glfw.Key{
	"space":        glfw.KeySpace,
	"escape":       glfw.KeyEscape,
	"enter":        glfw.KeyEnter,
	"tab":          glfw.KeyTab,
	"up":           glfw.KeyUp,
	"down":         glfw.KeyDown,
	"left":         glfw.KeyLeft,
	"right":        glfw.KeyRight,
	"leftshift":    glfw.KeyLeftShift,
	"rightshift":   glfw.KeyRightShift,
	"leftcontrol":  glfw.KeyLeftControl,
	"rightcontrol": glfw.KeyRightControl,
	"leftalt":      glfw.KeyLeftAlt,
	"rightalt":     glfw.KeyRightAlt,
	"pageup":       glfw.KeyPageUp,
	"pagedown":     glfw.KeyPageDown,
}

// KeyByName maps config key names to GLFW keys: single letters and digits,
// plus the names in namedKeys (case-insensitive).
func KeyByName(name string) (glfw.Key, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return glfw.KeyA + glfw.Key(c-'a'), true
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), true
		}
	}
	key, ok := namedKeys[n]
	return key, ok
}

// KeyName is the inverse of KeyByName. Keys without a config name are
// printed as their GLFW code.
func KeyName(key glfw.Key) string {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return string(rune('a' + int(key-glfw.KeyA)))
	case key >= glfw.Key0 && key <= glfw.Key9:
		return string(rune('0' + int(key-glfw.Key0)))
	}
	for name, k := range namedKeys {
		if k == key {
			return name
		}
	}
	return fmt.Sprintf("key(%d)", int(key))
}
