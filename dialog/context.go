package dialog

import (
	"encoding/json"
	"fmt"

	"github.com/m3rciful/cardsbot/activity"
)

// Context drives the dialog stack for a single turn.
type Context struct {
	// Turn is the turn context the dialogs respond through.
	Turn *activity.TurnContext

	set   *Set
	state *State
}

// Continue resumes the dialog on top of the stack. With an empty stack it
// reports StatusEmpty and performs no sends.
func (dc *Context) Continue() (TurnResult, error) {
	top, ok := dc.top()
	if !ok {
		return TurnResult{Status: StatusEmpty}, nil
	}
	d, err := dc.set.lookup(top.ID)
	if err != nil {
		return TurnResult{}, err
	}
	return d.Continue(dc)
}

// Begin starts the dialog registered under id.
func (dc *Context) Begin(id string, opts any) (TurnResult, error) {
	d, err := dc.set.lookup(id)
	if err != nil {
		return TurnResult{}, err
	}
	return d.Begin(dc, opts)
}

// Prompt begins a prompt dialog with the given options.
func (dc *Context) Prompt(id string, opts PromptOptions) (TurnResult, error) {
	return dc.Begin(id, opts)
}

// End pops the active dialog and reports completion with value.
func (dc *Context) End(value any) (TurnResult, error) {
	if err := dc.pop(); err != nil {
		return TurnResult{}, err
	}
	return TurnResult{Status: StatusComplete, Value: value}, nil
}

// Cancel pops the active dialog and reports cancellation.
func (dc *Context) Cancel() (TurnResult, error) {
	if err := dc.pop(); err != nil {
		return TurnResult{}, err
	}
	return TurnResult{Status: StatusCancelled}, nil
}

// push adds a stack frame for the dialog id with its serialized state.
func (dc *Context) push(id string, st any) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("dialog: marshal state for %q: %w", id, err)
	}
	dc.state.Stack = append(dc.state.Stack, Instance{ID: id, State: raw})
	return dc.save()
}

func (dc *Context) pop() error {
	if len(dc.state.Stack) == 0 {
		return fmt.Errorf("dialog: pop on empty stack")
	}
	dc.state.Stack = dc.state.Stack[:len(dc.state.Stack)-1]
	return dc.save()
}

func (dc *Context) top() (Instance, bool) {
	if len(dc.state.Stack) == 0 {
		return Instance{}, false
	}
	return dc.state.Stack[len(dc.state.Stack)-1], true
}

// topState unmarshals the top frame's state into out.
func (dc *Context) topState(out any) error {
	top, ok := dc.top()
	if !ok {
		return fmt.Errorf("dialog: no active dialog")
	}
	if err := json.Unmarshal(top.State, out); err != nil {
		return fmt.Errorf("dialog: unmarshal state for %q: %w", top.ID, err)
	}
	return nil
}

// save writes the stack back into the turn's cached conversation state.
func (dc *Context) save() error {
	return dc.set.accessor.Set(dc.Turn, dc.state)
}
