package dialog

import (
	"context"
	"testing"

	"github.com/m3rciful/cardsbot/activity"
	"github.com/m3rciful/cardsbot/state"
)

// promptHarness persists dialog state across simulated turns the way the
// turn handler does: one SaveChanges after each turn.
type promptHarness struct {
	conversation *state.ConversationState
	set          *Set
	sent         []activity.Activity
}

func newPromptHarness() *promptHarness {
	h := &promptHarness{}
	h.conversation = state.NewConversationState(state.NewMemoryStorage())
	h.set = NewSet(h.conversation.CreateProperty("dialogState"))
	h.set.Add(NewChoicePrompt("cardPrompt"))
	return h
}

func (h *promptHarness) turn(t *testing.T, text string) (*Context, *activity.TurnContext) {
	t.Helper()
	inbound := activity.NewMessage(text)
	inbound.Conversation = activity.Conversation{ID: "test"}
	tc := activity.NewTurnContext(context.Background(), inbound, func(_ context.Context, a activity.Activity) error {
		h.sent = append(h.sent, a)
		return nil
	})
	dc, err := h.set.CreateContext(tc)
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}
	return dc, tc
}

func (h *promptHarness) finish(t *testing.T, tc *activity.TurnContext) {
	t.Helper()
	if err := h.conversation.SaveChanges(tc); err != nil {
		t.Fatalf("SaveChanges: %v", err)
	}
}

func promptOpts() PromptOptions {
	return PromptOptions{
		Prompt:      "Pick a card.",
		RetryPrompt: "Not a card, pick again.",
		Choices: []Choice{
			{Label: "Video Card", Synonyms: []string{"video"}},
			{Label: "All Cards", Synonyms: []string{"all"}},
		},
	}
}

func TestContinueWithEmptyStackReportsEmpty(t *testing.T) {
	h := newPromptHarness()
	dc, _ := h.turn(t, "hello")

	result, err := dc.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if result.Status != StatusEmpty {
		t.Fatalf("status = %q, want %q", result.Status, StatusEmpty)
	}
	if len(h.sent) != 0 {
		t.Fatalf("empty stack produced %d sends, want 0", len(h.sent))
	}
}

func TestPromptLifecycleCompletesWithFoundChoice(t *testing.T) {
	h := newPromptHarness()

	dc, tc := h.turn(t, "hello")
	result, err := dc.Prompt("cardPrompt", promptOpts())
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if result.Status != StatusWaiting {
		t.Fatalf("status after begin = %q, want %q", result.Status, StatusWaiting)
	}
	if len(h.sent) != 1 {
		t.Fatalf("begin produced %d sends, want 1", len(h.sent))
	}
	if h.sent[0].Text != "Pick a card." {
		t.Errorf("prompt text = %q", h.sent[0].Text)
	}
	if len(h.sent[0].SuggestedActions) != 2 {
		t.Errorf("prompt carries %d suggested actions, want 2", len(h.sent[0].SuggestedActions))
	}
	h.finish(t, tc)

	dc, tc = h.turn(t, "video")
	result, err = dc.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if result.Status != StatusComplete {
		t.Fatalf("status after match = %q, want %q", result.Status, StatusComplete)
	}
	found, ok := result.Value.(FoundChoice)
	if !ok {
		t.Fatalf("result value is %T, want FoundChoice", result.Value)
	}
	if found.Value != "Video Card" || found.Index != 0 {
		t.Fatalf("found = %+v, want {Video Card 0}", found)
	}
	h.finish(t, tc)

	// Stack is empty again after completion.
	dc, _ = h.turn(t, "anything")
	result, err = dc.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if result.Status != StatusEmpty {
		t.Fatalf("status after completion = %q, want %q", result.Status, StatusEmpty)
	}
}

func TestPromptRepromptsOnUnrecognizedInput(t *testing.T) {
	h := newPromptHarness()

	dc, tc := h.turn(t, "hello")
	if _, err := dc.Prompt("cardPrompt", promptOpts()); err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	h.finish(t, tc)

	dc, tc = h.turn(t, "pizza")
	result, err := dc.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if result.Status != StatusWaiting {
		t.Fatalf("status after bad input = %q, want %q", result.Status, StatusWaiting)
	}
	last := h.sent[len(h.sent)-1]
	if last.Text != "Not a card, pick again." {
		t.Errorf("retry text = %q", last.Text)
	}
	if len(last.SuggestedActions) != 2 {
		t.Errorf("retry carries %d suggested actions, want 2", len(last.SuggestedActions))
	}
	h.finish(t, tc)

	// Still waiting: a good answer now completes.
	dc, _ = h.turn(t, "2")
	result, err = dc.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if result.Status != StatusComplete {
		t.Fatalf("status = %q, want %q", result.Status, StatusComplete)
	}
	if found := result.Value.(FoundChoice); found.Value != "All Cards" {
		t.Fatalf("found = %+v, want All Cards", found)
	}
}

func TestPromptCancelPopsTheStack(t *testing.T) {
	h := newPromptHarness()

	dc, tc := h.turn(t, "hello")
	if _, err := dc.Prompt("cardPrompt", promptOpts()); err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	h.finish(t, tc)

	dc, tc = h.turn(t, "Cancel")
	result, err := dc.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if result.Status != StatusCancelled {
		t.Fatalf("status = %q, want %q", result.Status, StatusCancelled)
	}
	last := h.sent[len(h.sent)-1]
	if last.Text != "Okay, cancelled." {
		t.Errorf("cancel text = %q", last.Text)
	}
	h.finish(t, tc)

	dc, _ = h.turn(t, "hello")
	result, err = dc.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if result.Status != StatusEmpty {
		t.Fatalf("status after cancel = %q, want %q", result.Status, StatusEmpty)
	}
}

func TestBeginRejectsWrongOptions(t *testing.T) {
	h := newPromptHarness()
	dc, _ := h.turn(t, "hello")

	if _, err := dc.Begin("cardPrompt", "not options"); err == nil {
		t.Fatal("Begin accepted non-PromptOptions")
	}
	if _, err := dc.Begin("cardPrompt", PromptOptions{Prompt: "pick"}); err == nil {
		t.Fatal("Begin accepted empty choice list")
	}
}

func TestAddPanicsOnDuplicateID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Add did not panic on duplicate dialog id")
		}
	}()
	set := NewSet(nil)
	set.Add(NewChoicePrompt("p")).Add(NewChoicePrompt("p"))
}
