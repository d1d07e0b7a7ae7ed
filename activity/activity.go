// Package activity defines the channel-agnostic conversation event model
// shared by the turn handler, the dialog engine, and channel adapters.
package activity

// Type discriminates inbound and outbound conversation events.
type Type string

const (
	// TypeMessage is a user-visible message event. Only this type
	// triggers turn handling.
	TypeMessage Type = "message"
	// TypeConversationUpdate signals membership or lifecycle changes.
	TypeConversationUpdate Type = "conversation-update"
	// TypeEvent is an opaque channel-specific event.
	TypeEvent Type = "event"
)

// Layout controls how multiple attachments are presented.
type Layout string

const (
	// LayoutList renders attachments one after another.
	LayoutList Layout = "list"
	// LayoutCarousel renders attachments as a horizontally scrollable set.
	LayoutCarousel Layout = "carousel"
)

// Attachment is a structured, renderable message payload such as a card.
type Attachment struct {
	ContentType string `json:"contentType"`
	Content     any    `json:"content"`
}

// Account identifies a conversation participant.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Conversation identifies the conversation an activity belongs to.
type Conversation struct {
	ID string `json:"id"`
}

// Activity is a single conversation event flowing in either direction.
type Activity struct {
	ID               string       `json:"id,omitempty"`
	Type             Type         `json:"type"`
	Text             string       `json:"text,omitempty"`
	From             Account      `json:"from,omitempty"`
	Conversation     Conversation `json:"conversation"`
	Attachments      []Attachment `json:"attachments,omitempty"`
	AttachmentLayout Layout       `json:"attachmentLayout,omitempty"`
	// SuggestedActions lists quick-reply labels offered to the user.
	SuggestedActions []string `json:"suggestedActions,omitempty"`
}

// NewMessage builds an outbound text message.
func NewMessage(text string) Activity {
	return Activity{Type: TypeMessage, Text: text}
}

// NewAttachments builds an outbound message carrying attachments.
func NewAttachments(layout Layout, attachments ...Attachment) Activity {
	return Activity{
		Type:             TypeMessage,
		Attachments:      attachments,
		AttachmentLayout: layout,
	}
}
