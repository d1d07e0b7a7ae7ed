package telegram

import (
	"strings"
	"testing"

	"github.com/m3rciful/cardsbot/activity"
	"github.com/m3rciful/cardsbot/cards"

	tele "gopkg.in/telebot.v4"
)

func TestConversationID(t *testing.T) {
	if got := ConversationID(42); got != "telegram/42" {
		t.Fatalf("ConversationID(42) = %q", got)
	}
	if got := ConversationID(-100123); got != "telegram/-100123" {
		t.Fatalf("ConversationID(-100123) = %q", got)
	}
}

func TestBuildAlbumAcceptsOnlyPhotoAndVideo(t *testing.T) {
	album, ok := buildAlbum([]activity.Attachment{cards.Video(), cards.Hero(), cards.Thumbnail()})
	if !ok {
		t.Fatal("homogeneous media attachments rejected")
	}
	if len(album) != 3 {
		t.Fatalf("album has %d entries, want 3", len(album))
	}
	if _, isVideo := album[0].(*tele.Video); !isVideo {
		t.Errorf("album[0] is %T, want *tele.Video", album[0])
	}
	if _, isPhoto := album[1].(*tele.Photo); !isPhoto {
		t.Errorf("album[1] is %T, want *tele.Photo", album[1])
	}
}

func TestBuildAlbumRejectsMixedKinds(t *testing.T) {
	if _, ok := buildAlbum(cards.All()); ok {
		t.Fatal("buildAlbum accepted a set containing receipt and sign-in cards")
	}
	if _, ok := buildAlbum(nil); ok {
		t.Fatal("buildAlbum accepted an empty set")
	}
}

func TestCardCaptionSkipsEmptyParts(t *testing.T) {
	got := cardCaption("Title", "", "Body")
	if got != "Title\nBody" {
		t.Fatalf("cardCaption = %q", got)
	}
	if cardCaption("", "  ", "") != "" {
		t.Fatal("cardCaption of blanks should be empty")
	}
}

func TestMediaContentRequiresMediaURL(t *testing.T) {
	att := activity.Attachment{
		ContentType: cards.ContentTypeVideo,
		Content:     cards.MediaCard{Title: "broken"},
	}
	if _, err := mediaContent(att); err == nil {
		t.Fatal("mediaContent accepted a card without media URLs")
	}

	att.Content = "not a card"
	if _, err := mediaContent(att); err == nil {
		t.Fatal("mediaContent accepted non-card content")
	}
}

func TestButtonOptionsKeepsOnlyURLActions(t *testing.T) {
	opts := buttonOptions([]cards.CardAction{
		{Type: cards.ActionOpenURL, Title: "Open", Value: "https://example.com"},
		{Type: "postBack", Title: "Ignore", Value: "x"},
	})
	markup := opts.ReplyMarkup
	if markup == nil {
		t.Fatal("no reply markup attached")
	}
	if len(markup.InlineKeyboard) != 1 || len(markup.InlineKeyboard[0]) != 1 {
		t.Fatalf("keyboard shape = %v", markup.InlineKeyboard)
	}
	btn := markup.InlineKeyboard[0][0]
	if btn.Text != "Open" || btn.URL != "https://example.com" {
		t.Fatalf("button = %+v", btn)
	}
}

func TestFormatReceipt(t *testing.T) {
	card := cards.Receipt().Content.(cards.ReceiptCard)
	got := formatReceipt(card)

	for _, want := range []string{
		"*John Doe*",
		"Order Number: 1234",
		"Data Transfer  x368  $38.45",
		"App Service  x720  $45.00",
		"Tax: $7.50",
		"*Total: $90.95*",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("receipt output missing %q:\n%s", want, got)
		}
	}
}
