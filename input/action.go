package input

// Action is the semantic meaning of a key press
type Action uint8

const (
	ActionNone Action = iota

	// Crosshair movement, latched until the next tick
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown

	// Trigger, latched until the next tick
	ActionFire

	// Launcher commands, returned to the caller immediately
	ActionPause
	ActionReset
	ActionToggleMute
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:       "none",
	ActionMoveLeft:   "move_left",
	ActionMoveRight:  "move_right",
	ActionMoveUp:     "move_up",
	ActionMoveDown:   "move_down",
	ActionFire:       "fire",
	ActionPause:      "pause",
	ActionReset:      "reset",
	ActionToggleMute: "toggle_mute",
	ActionQuit:       "quit",
}

// actionRegistry maps canonical action names to actions for keymap overrides
var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, actionCount)
	for a, name := range actionNames {
		actionRegistry[name] = Action(a)
	}
}

// IsCommand reports whether the action is handled by the launcher rather than the session
func (a Action) IsCommand() bool {
	return a >= ActionPause && a < actionCount
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}
