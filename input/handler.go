package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duck-hunt/engine"
)

// Handler turns key events into a per-tick intent and launcher commands
// Movement is last-key-wins per axis; fire stays latched until Take
type Handler struct {
	table   *KeyTable
	pending engine.Intent
}

// NewHandler creates a handler; nil table selects the default bindings
func NewHandler(table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table}
}

// Process latches movement and fire and returns the resolved action
// Callers act on command actions (pause, reset, mute, quit) themselves
func (h *Handler) Process(ev *tcell.EventKey) Action {
	action := h.table.Lookup(ev)
	switch action {
	case ActionMoveLeft:
		h.pending.MoveX = -1
	case ActionMoveRight:
		h.pending.MoveX = 1
	case ActionMoveUp:
		h.pending.MoveY = -1
	case ActionMoveDown:
		h.pending.MoveY = 1
	case ActionFire:
		h.pending.Fire = true
	}
	return action
}

// Pending returns the latched intent without consuming it
func (h *Handler) Pending() engine.Intent {
	return h.pending
}

// Take returns the latched intent and clears it
func (h *Handler) Take() engine.Intent {
	in := h.pending
	h.pending = engine.Idle
	return in
}

// Clear drops any latched input
func (h *Handler) Clear() {
	h.pending = engine.Idle
}
