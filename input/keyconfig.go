package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ErrInvalidKeymap wraps all keymap override failures
var ErrInvalidKeymap = errors.New("invalid keymap")

// Rune aliases for keys that read poorly as bare characters
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeyNames lists the named non-rune keys accepted in keymaps
var specialKeyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+r": tcell.KeyCtrlR,
}

// LoadKeyConfig converts action-name → key-names bindings into a sparse override table
// Returns error on unknown action names, invalid key names, or a key bound to two actions
func LoadKeyConfig(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	for name, keys := range bindings {
		action, ok := actionRegistry[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidKeymap, name)
		}
		for _, key := range keys {
			if err := kt.bind(key, action); err != nil {
				return nil, fmt.Errorf("%w: action %q: %v", ErrInvalidKeymap, name, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(key string, action Action) error {
	if k, ok := specialKeyNames[strings.ToLower(key)]; ok {
		if prev, bound := kt.SpecialKeys[k]; bound && prev != action {
			return fmt.Errorf("key %q already bound to %s", key, prev)
		}
		kt.SpecialKeys[k] = action
		return nil
	}
	r, ok := runeAliases[strings.ToLower(key)]
	if !ok {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("unknown key %q", key)
		}
		r, _ = utf8.DecodeRuneInString(key)
	}
	if prev, bound := kt.Runes[r]; bound && prev != action {
		return fmt.Errorf("key %q already bound to %s", key, prev)
	}
	kt.Runes[r] = action
	return nil
}
