// Package telegram adapts Telegram updates to the channel-agnostic
// activity model: inbound messages become activities, outbound activities
// are rendered to Telegram sends.
package telegram

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/m3rciful/cardsbot/activity"
	tghelpers "github.com/m3rciful/cardsbot/core/telegram/helpers"
	"github.com/m3rciful/cardsbot/state"

	tele "gopkg.in/telebot.v4"
)

// TurnHandler processes one activity per turn.
type TurnHandler interface {
	OnTurn(tc *activity.TurnContext) error
}

// Adapter bridges telebot handlers and the turn handler.
type Adapter struct {
	handler      TurnHandler
	conversation *state.ConversationState
}

// NewAdapter builds a Telegram adapter around the turn handler.
func NewAdapter(handler TurnHandler, conversation *state.ConversationState) *Adapter {
	return &Adapter{handler: handler, conversation: conversation}
}

// ConversationID derives the activity conversation id for a chat.
func ConversationID(chatID int64) string {
	return "telegram/" + strconv.FormatInt(chatID, 10)
}

// HandleText runs a turn for an inbound text message.
func (a *Adapter) HandleText(c tele.Context) error {
	return a.runTurn(c, a.inbound(c, activity.TypeMessage, c.Text()))
}

// HandleStart clears conversation state and runs a fresh greeting turn.
func (a *Adapter) HandleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	reset := a.inbound(c, activity.TypeMessage, "")
	tc := activity.NewTurnContext(ctx, reset, a.senderFor(c))
	if err := a.conversation.Clear(tc); err != nil {
		return err
	}
	return a.handler.OnTurn(tc)
}

// HandleReset clears conversation state and confirms.
func (a *Adapter) HandleReset(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	reset := a.inbound(c, activity.TypeEvent, "")
	tc := activity.NewTurnContext(ctx, reset, a.senderFor(c))
	if err := a.conversation.Clear(tc); err != nil {
		return err
	}
	return tghelpers.SendText(c, "Conversation state cleared.")
}

func (a *Adapter) runTurn(c tele.Context, act activity.Activity) error {
	ctx := tghelpers.BuildContext(c)
	tc := activity.NewTurnContext(ctx, act, a.senderFor(c))
	return a.handler.OnTurn(tc)
}

// inbound converts the current update into an activity.
func (a *Adapter) inbound(c tele.Context, kind activity.Type, text string) activity.Activity {
	act := activity.Activity{
		ID:   uuid.NewString(),
		Type: kind,
		Text: text,
	}
	if chat := c.Chat(); chat != nil {
		act.Conversation = activity.Conversation{ID: ConversationID(chat.ID)}
	}
	if user := c.Sender(); user != nil {
		act.From = activity.Account{
			ID:   strconv.FormatInt(user.ID, 10),
			Name: user.Username,
		}
	}
	return act
}

// senderFor renders outbound activities onto the current chat.
func (a *Adapter) senderFor(c tele.Context) activity.SenderFunc {
	return func(_ context.Context, out activity.Activity) error {
		return renderActivity(c, out)
	}
}
