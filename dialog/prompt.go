package dialog

import (
	"fmt"
	"strings"

	"github.com/m3rciful/cardsbot/activity"
)

// PromptOptions configures a choice prompt invocation.
type PromptOptions struct {
	Prompt      string   `json:"prompt"`
	RetryPrompt string   `json:"retryPrompt"`
	Choices     []Choice `json:"choices"`
}

// cancelWords end an in-progress prompt without completing it.
var cancelWords = map[string]struct{}{
	"cancel":  {},
	"/cancel": {},
}

// ChoicePrompt asks the user to pick one option from a closed set and
// re-prompts until the input matches or the user cancels.
type ChoicePrompt struct {
	id string
}

// NewChoicePrompt creates a choice prompt registered under id.
func NewChoicePrompt(id string) *ChoicePrompt {
	return &ChoicePrompt{id: id}
}

// ID returns the registered dialog identifier.
func (p *ChoicePrompt) ID() string {
	return p.id
}

// Begin pushes a prompt frame and sends the prompt with suggested actions.
func (p *ChoicePrompt) Begin(dc *Context, opts any) (TurnResult, error) {
	po, ok := opts.(PromptOptions)
	if !ok {
		return TurnResult{}, fmt.Errorf("dialog: choice prompt %q requires PromptOptions, got %T", p.id, opts)
	}
	if len(po.Choices) == 0 {
		return TurnResult{}, fmt.Errorf("dialog: choice prompt %q begun without choices", p.id)
	}

	if err := dc.push(p.id, po); err != nil {
		return TurnResult{}, err
	}

	prompt := activity.NewMessage(po.Prompt)
	prompt.SuggestedActions = Labels(po.Choices)
	if err := dc.Turn.SendActivity(prompt); err != nil {
		return TurnResult{}, err
	}
	return TurnResult{Status: StatusWaiting}, nil
}

// Continue recognizes the turn's input. A match completes the prompt with
// a FoundChoice, a cancel word cancels it, anything else re-prompts.
func (p *ChoicePrompt) Continue(dc *Context) (TurnResult, error) {
	var po PromptOptions
	if err := dc.topState(&po); err != nil {
		return TurnResult{}, err
	}

	input := dc.Turn.Activity().Text
	if _, cancelled := cancelWords[strings.ToLower(strings.TrimSpace(input))]; cancelled {
		if err := dc.Turn.SendText("Okay, cancelled."); err != nil {
			return TurnResult{}, err
		}
		return dc.Cancel()
	}

	if found, ok := RecognizeChoice(input, po.Choices); ok {
		return dc.End(found)
	}

	retry := po.RetryPrompt
	if retry == "" {
		retry = po.Prompt
	}
	retryActivity := activity.NewMessage(retry)
	retryActivity.SuggestedActions = Labels(po.Choices)
	if err := dc.Turn.SendActivity(retryActivity); err != nil {
		return TurnResult{}, err
	}
	return TurnResult{Status: StatusWaiting}, nil
}
