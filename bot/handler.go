// Package bot implements the turn handler that wires the dialog engine
// to the conversation state store and dispatches rich card responses.
package bot

import (
	"fmt"
	"log/slog"

	"github.com/m3rciful/cardsbot/activity"
	"github.com/m3rciful/cardsbot/cards"
	coreconfig "github.com/m3rciful/cardsbot/core/config"
	"github.com/m3rciful/cardsbot/core/logger"
	"github.com/m3rciful/cardsbot/dialog"
	"github.com/m3rciful/cardsbot/state"
)

// PromptID is the dialog id of the card choice prompt.
const PromptID = "cardPrompt"

// DialogStateProperty is the conversation state property holding the
// dialog engine's stack.
const DialogStateProperty = "dialogState"

const (
	promptText      = "Which card would you like to see? You can pick by name, synonym, or number."
	retryPromptText = "That is not a card I know. Pick one of the listed cards, or say \"cancel\"."
	invalidText     = "Sorry, no card matches that selection."
)

// CardsBot decides, per inbound message, whether to start the card
// prompt, resume it, or dispatch cards for a completed selection.
// Collaborators are injected at construction; the handler owns no I/O.
type CardsBot struct {
	conversation *state.ConversationState
	dialogs      *dialog.Set
	greeting     string
}

// New builds the turn handler. greeting selects the behaviour when no
// dialog is active: config.GreetingVideo sends the default video card,
// config.GreetingMenu starts the interactive choice prompt.
func New(conversation *state.ConversationState, dialogs *dialog.Set, greeting string) (*CardsBot, error) {
	if conversation == nil {
		return nil, fmt.Errorf("bot: nil conversation state")
	}
	if dialogs == nil {
		return nil, fmt.Errorf("bot: nil dialog set")
	}
	switch greeting {
	case coreconfig.GreetingVideo, coreconfig.GreetingMenu:
	case "":
		greeting = coreconfig.GreetingVideo
	default:
		return nil, fmt.Errorf("bot: unknown greeting mode %q", greeting)
	}
	return &CardsBot{
		conversation: conversation,
		dialogs:      dialogs,
		greeting:     greeting,
	}, nil
}

// OnTurn processes one inbound activity. Non-message activities are
// ignored without side effects. For message activities the dialog stack
// is continued, the result dispatched, and conversation state saved
// exactly once, after all sends. Collaborator failures propagate.
func (b *CardsBot) OnTurn(tc *activity.TurnContext) error {
	if tc.Activity().Type != activity.TypeMessage {
		return nil
	}

	dc, err := b.dialogs.CreateContext(tc)
	if err != nil {
		return err
	}

	result, err := dc.Continue()
	if err != nil {
		return err
	}

	switch {
	case result.Status == dialog.StatusEmpty && !tc.Responded():
		if err := b.greet(dc); err != nil {
			return err
		}
	case result.Status == dialog.StatusComplete:
		if err := b.dispatch(tc, result); err != nil {
			return err
		}
	default:
		// waiting or cancelled: the dialog already answered this turn.
	}

	return b.conversation.SaveChanges(tc)
}

// greet handles a message with no active dialog.
func (b *CardsBot) greet(dc *dialog.Context) error {
	if b.greeting == coreconfig.GreetingMenu {
		_, err := dc.Prompt(PromptID, dialog.PromptOptions{
			Prompt:      promptText,
			RetryPrompt: retryPromptText,
			Choices:     cards.Choices(),
		})
		return err
	}

	return dc.Turn.SendActivity(activity.NewAttachments(activity.LayoutList, cards.Video()))
}

// dispatch sends the cards selected by a completed prompt.
func (b *CardsBot) dispatch(tc *activity.TurnContext, result dialog.TurnResult) error {
	var label string
	switch v := result.Value.(type) {
	case dialog.FoundChoice:
		label = v.Value
	case string:
		label = v
	}

	attachments, layout, known := cards.Dispatch(label)
	if !known {
		logger.Warn(tc.Context(), "bot", "turn.choice.unknown",
			slog.String("value", logger.SanitizeLimit(label, 64)),
		)
		return tc.SendText(invalidText)
	}

	logger.Debug(tc.Context(), "bot", "turn.choice.dispatch",
		slog.String("value", label),
		slog.Int("attachments", len(attachments)),
	)
	return tc.SendActivity(activity.NewAttachments(layout, attachments...))
}
