package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m3rciful/cardsbot/activity"
	"github.com/m3rciful/cardsbot/core/logger"
)

const cacheKey = "state_conversation"

// document is the per-conversation property bag cached on the turn context.
type document struct {
	props map[string]json.RawMessage
}

// ConversationState stores per-conversation properties in a Storage
// backend. Properties are cached on the turn context for the duration of
// a turn and written back once by SaveChanges.
type ConversationState struct {
	storage Storage
}

// NewConversationState builds a conversation state store over the given backend.
func NewConversationState(storage Storage) *ConversationState {
	return &ConversationState{storage: storage}
}

// Accessor reads and writes a single named property of the conversation state.
type Accessor struct {
	state *ConversationState
	name  string
}

// CreateProperty returns an accessor for the named property.
func (cs *ConversationState) CreateProperty(name string) *Accessor {
	return &Accessor{state: cs, name: name}
}

// StorageKey derives the storage key for a conversation.
func StorageKey(conversationID string) string {
	return "conversations/" + conversationID
}

func (cs *ConversationState) load(tc *activity.TurnContext) (*document, error) {
	if cached, ok := tc.Get(cacheKey); ok {
		if doc, ok := cached.(*document); ok {
			return doc, nil
		}
	}

	doc := &document{props: make(map[string]json.RawMessage)}
	key := StorageKey(tc.Activity().Conversation.ID)
	data, err := cs.storage.Read(tc.Context(), key)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &doc.props); err != nil {
			return nil, fmt.Errorf("state: corrupt conversation document %q: %w", key, err)
		}
	case errors.Is(err, ErrNotFound):
		// First turn of the conversation.
	default:
		return nil, err
	}

	tc.Set(cacheKey, doc)
	return doc, nil
}

// SaveChanges persists the conversation document. It must be called once
// per processed turn, after all sends, so dialog stack mutations are not
// lost. The write happens regardless of whether any property changed.
func (cs *ConversationState) SaveChanges(tc *activity.TurnContext) error {
	doc, err := cs.load(tc)
	if err != nil {
		return err
	}

	data, err := json.Marshal(doc.props)
	if err != nil {
		return fmt.Errorf("state: marshal conversation document: %w", err)
	}

	key := StorageKey(tc.Activity().Conversation.ID)
	if err := cs.storage.Write(tc.Context(), key, data); err != nil {
		return err
	}
	logger.Debug(tc.Context(), "state", "state.saved",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)
	return nil
}

// Clear removes all stored state for a conversation.
func (cs *ConversationState) Clear(tc *activity.TurnContext) error {
	key := StorageKey(tc.Activity().Conversation.ID)
	return cs.storage.Delete(tc.Context(), key)
}

// Get unmarshals the property into out. It reports whether the property
// was present.
func (a *Accessor) Get(tc *activity.TurnContext, out any) (bool, error) {
	doc, err := a.state.load(tc)
	if err != nil {
		return false, err
	}
	raw, ok := doc.props[a.name]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("state: unmarshal property %q: %w", a.name, err)
	}
	return true, nil
}

// Set stores the property value in the turn's cached document. The value
// reaches the backend on SaveChanges.
func (a *Accessor) Set(tc *activity.TurnContext, value any) error {
	doc, err := a.state.load(tc)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("state: marshal property %q: %w", a.name, err)
	}
	doc.props[a.name] = raw
	return nil
}

// Delete removes the property from the turn's cached document.
func (a *Accessor) Delete(tc *activity.TurnContext) error {
	doc, err := a.state.load(tc)
	if err != nil {
		return err
	}
	delete(doc.props, a.name)
	return nil
}
