package activity

import (
	"context"
	"fmt"
)

// SenderFunc delivers an outbound activity to the channel.
type SenderFunc func(ctx context.Context, a Activity) error

// TurnContext carries one inbound activity through a single turn.
// It records whether the turn produced any outbound sends and provides
// a per-turn value bag used by state caching.
type TurnContext struct {
	ctx       context.Context
	activity  Activity
	sender    SenderFunc
	responded bool
	values    map[string]any
}

// NewTurnContext binds an inbound activity to a sender for one turn.
func NewTurnContext(ctx context.Context, a Activity, sender SenderFunc) *TurnContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &TurnContext{
		ctx:      ctx,
		activity: a,
		sender:   sender,
		values:   make(map[string]any),
	}
}

// Context returns the request context of the turn.
func (tc *TurnContext) Context() context.Context {
	return tc.ctx
}

// Activity returns the inbound activity being handled.
func (tc *TurnContext) Activity() Activity {
	return tc.activity
}

// Responded reports whether any activity has been sent during this turn.
func (tc *TurnContext) Responded() bool {
	return tc.responded
}

// SendActivity delivers an outbound activity through the bound sender.
func (tc *TurnContext) SendActivity(a Activity) error {
	if tc.sender == nil {
		return fmt.Errorf("activity: turn context has no sender bound")
	}
	if err := tc.sender(tc.ctx, a); err != nil {
		return err
	}
	tc.responded = true
	return nil
}

// SendText delivers a plain text message.
func (tc *TurnContext) SendText(text string) error {
	return tc.SendActivity(NewMessage(text))
}

// Set stores a per-turn value under key.
func (tc *TurnContext) Set(key string, value any) {
	tc.values[key] = value
}

// Get returns a per-turn value stored under key.
func (tc *TurnContext) Get(key string) (any, bool) {
	v, ok := tc.values[key]
	return v, ok
}
