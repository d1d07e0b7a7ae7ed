// Package dialog implements a small dialog engine: a registry of dialogs,
// a persisted dialog stack, and a per-turn dialog context. The stack is
// stored as an opaque blob in the conversation state and survives across
// turns.
package dialog

import (
	"encoding/json"
	"fmt"

	"github.com/m3rciful/cardsbot/activity"
	"github.com/m3rciful/cardsbot/state"
)

// TurnStatus describes the dialog stack after a turn.
type TurnStatus string

const (
	// StatusEmpty means no dialog was active for this turn.
	StatusEmpty TurnStatus = "empty"
	// StatusWaiting means a dialog is active and expects further input.
	StatusWaiting TurnStatus = "waiting"
	// StatusComplete means the active dialog finished and produced a value.
	StatusComplete TurnStatus = "complete"
	// StatusCancelled means the active dialog was cancelled by the user.
	StatusCancelled TurnStatus = "cancelled"
)

// TurnResult is the outcome of continuing the dialog stack for one turn.
// Value is set only when Status is StatusComplete.
type TurnResult struct {
	Status TurnStatus
	Value  any
}

// Instance is one stack frame of an in-progress dialog.
type Instance struct {
	ID    string          `json:"id"`
	State json.RawMessage `json:"state,omitempty"`
}

// State is the persisted dialog stack.
type State struct {
	Stack []Instance `json:"stack"`
}

// Dialog is a resumable multi-turn interaction unit.
type Dialog interface {
	// ID returns the identifier the dialog is registered under.
	ID() string
	// Begin starts the dialog and may push a stack frame.
	Begin(dc *Context, opts any) (TurnResult, error)
	// Continue resumes the dialog with the current turn's input.
	Continue(dc *Context) (TurnResult, error)
}

// Set is a registry of dialogs bound to a persisted state property.
type Set struct {
	dialogs  map[string]Dialog
	accessor *state.Accessor
}

// NewSet creates a dialog set whose stack is persisted via the accessor.
func NewSet(accessor *state.Accessor) *Set {
	return &Set{
		dialogs:  make(map[string]Dialog),
		accessor: accessor,
	}
}

// Add registers a dialog. Registering a duplicate ID panics: the set is
// assembled once at startup and a duplicate is a programming error.
func (s *Set) Add(d Dialog) *Set {
	if _, exists := s.dialogs[d.ID()]; exists {
		panic(fmt.Sprintf("dialog: duplicate dialog id %q", d.ID()))
	}
	s.dialogs[d.ID()] = d
	return s
}

// CreateContext binds the persisted dialog stack to the current turn.
func (s *Set) CreateContext(tc *activity.TurnContext) (*Context, error) {
	var st State
	if _, err := s.accessor.Get(tc, &st); err != nil {
		return nil, err
	}
	return &Context{
		Turn:  tc,
		set:   s,
		state: &st,
	}, nil
}

func (s *Set) lookup(id string) (Dialog, error) {
	d, ok := s.dialogs[id]
	if !ok {
		return nil, fmt.Errorf("dialog: unknown dialog id %q", id)
	}
	return d, nil
}
