package telegram

import (
	"fmt"
	"strings"

	"github.com/m3rciful/cardsbot/activity"
	"github.com/m3rciful/cardsbot/cards"
	tghelpers "github.com/m3rciful/cardsbot/core/telegram/helpers"
	"github.com/m3rciful/cardsbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

const suggestedActionsPerRow = 2

// renderActivity translates one outbound activity into Telegram sends.
func renderActivity(c tele.Context, act activity.Activity) error {
	if len(act.Attachments) == 0 {
		return renderText(c, act)
	}

	if act.AttachmentLayout == activity.LayoutCarousel {
		if album, ok := buildAlbum(act.Attachments); ok {
			return tghelpers.SendAlbum(c, album)
		}
	}

	// Mixed attachment sets fall back to ordered sequential sends.
	for _, att := range act.Attachments {
		if err := renderAttachment(c, att); err != nil {
			return err
		}
	}
	return nil
}

func renderText(c tele.Context, act activity.Activity) error {
	if len(act.SuggestedActions) > 0 {
		markup := keyboard.ReplyButtonsNPerRow(act.SuggestedActions, suggestedActionsPerRow)
		return tghelpers.SendText(c, act.Text, &tele.SendOptions{ReplyMarkup: markup})
	}
	return tghelpers.SendText(c, act.Text, &tele.SendOptions{ReplyMarkup: keyboard.RemoveKeyboard()})
}

// renderAttachment maps one card attachment to its Telegram representation.
func renderAttachment(c tele.Context, att activity.Attachment) error {
	switch att.ContentType {
	case cards.ContentTypeVideo:
		card, err := mediaContent(att)
		if err != nil {
			return err
		}
		video := &tele.Video{File: tele.FromURL(card.Media[0].URL), Caption: mediaCaption(card)}
		return tghelpers.SendSendable(c, "send.video", "sendVideo", video, buttonOptions(card.Buttons))
	case cards.ContentTypeAnimation:
		card, err := mediaContent(att)
		if err != nil {
			return err
		}
		anim := &tele.Animation{File: tele.FromURL(card.Media[0].URL), Caption: mediaCaption(card)}
		return tghelpers.SendSendable(c, "send.animation", "sendAnimation", anim, buttonOptions(card.Buttons))
	case cards.ContentTypeAudio:
		card, err := mediaContent(att)
		if err != nil {
			return err
		}
		audio := &tele.Audio{File: tele.FromURL(card.Media[0].URL), Caption: mediaCaption(card), Title: card.Title}
		return tghelpers.SendSendable(c, "send.audio", "sendAudio", audio, buttonOptions(card.Buttons))
	case cards.ContentTypeHero:
		card, ok := att.Content.(cards.HeroCard)
		if !ok {
			return contentError(att)
		}
		if len(card.Images) > 0 {
			photo := &tele.Photo{File: tele.FromURL(card.Images[0].URL), Caption: cardCaption(card.Title, card.Subtitle, card.Text)}
			return tghelpers.SendSendable(c, "send.photo", "sendPhoto", photo, buttonOptions(card.Buttons))
		}
		return tghelpers.SendText(c, cardCaption(card.Title, card.Subtitle, card.Text), buttonOptions(card.Buttons))
	case cards.ContentTypeThumbnail:
		card, ok := att.Content.(cards.ThumbnailCard)
		if !ok {
			return contentError(att)
		}
		if len(card.Images) > 0 {
			photo := &tele.Photo{File: tele.FromURL(card.Images[0].URL), Caption: cardCaption(card.Title, card.Subtitle, card.Text)}
			return tghelpers.SendSendable(c, "send.photo", "sendPhoto", photo, buttonOptions(card.Buttons))
		}
		return tghelpers.SendText(c, cardCaption(card.Title, card.Subtitle, card.Text), buttonOptions(card.Buttons))
	case cards.ContentTypeReceipt:
		card, ok := att.Content.(cards.ReceiptCard)
		if !ok {
			return contentError(att)
		}
		return tghelpers.SendMD(c, formatReceipt(card))
	case cards.ContentTypeSignIn:
		card, ok := att.Content.(cards.SignInCard)
		if !ok {
			return contentError(att)
		}
		return tghelpers.SendText(c, card.Text, buttonOptions(card.Buttons))
	}
	return fmt.Errorf("telegram: unsupported attachment content type %q", att.ContentType)
}

// buildAlbum groups attachments into a single media group when every
// member is a photo or video; Telegram albums cannot mix other kinds.
func buildAlbum(attachments []activity.Attachment) (tele.Album, bool) {
	album := make(tele.Album, 0, len(attachments))
	for _, att := range attachments {
		switch att.ContentType {
		case cards.ContentTypeVideo:
			card, err := mediaContent(att)
			if err != nil {
				return nil, false
			}
			album = append(album, &tele.Video{File: tele.FromURL(card.Media[0].URL), Caption: mediaCaption(card)})
		case cards.ContentTypeHero, cards.ContentTypeThumbnail:
			url, caption, ok := photoContent(att)
			if !ok || url == "" {
				return nil, false
			}
			album = append(album, &tele.Photo{File: tele.FromURL(url), Caption: caption})
		default:
			return nil, false
		}
	}
	return album, len(album) > 0
}

func photoContent(att activity.Attachment) (url, caption string, ok bool) {
	switch card := att.Content.(type) {
	case cards.HeroCard:
		if len(card.Images) == 0 {
			return "", "", false
		}
		return card.Images[0].URL, cardCaption(card.Title, card.Subtitle, card.Text), true
	case cards.ThumbnailCard:
		if len(card.Images) == 0 {
			return "", "", false
		}
		return card.Images[0].URL, cardCaption(card.Title, card.Subtitle, card.Text), true
	}
	return "", "", false
}

func mediaContent(att activity.Attachment) (cards.MediaCard, error) {
	card, ok := att.Content.(cards.MediaCard)
	if !ok {
		return cards.MediaCard{}, contentError(att)
	}
	if len(card.Media) == 0 {
		return cards.MediaCard{}, fmt.Errorf("telegram: media card %q has no media URL", card.Title)
	}
	return card, nil
}

func contentError(att activity.Attachment) error {
	return fmt.Errorf("telegram: attachment %q carries unexpected content %T", att.ContentType, att.Content)
}

func mediaCaption(card cards.MediaCard) string {
	return cardCaption(card.Title, card.Subtitle, card.Text)
}

func cardCaption(parts ...string) string {
	var filled []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			filled = append(filled, p)
		}
	}
	return strings.Join(filled, "\n")
}

// buttonOptions converts card actions to an inline URL keyboard.
func buttonOptions(actions []cards.CardAction) *tele.SendOptions {
	if len(actions) == 0 {
		return &tele.SendOptions{}
	}
	buttons := make([]keyboard.URLBtn, 0, len(actions))
	for _, a := range actions {
		if a.Type != cards.ActionOpenURL {
			continue
		}
		buttons = append(buttons, keyboard.URLBtn{Text: a.Title, URL: a.Value})
	}
	return &tele.SendOptions{ReplyMarkup: keyboard.InlineURLButtons(buttons)}
}

// formatReceipt renders a receipt card as a Markdown message.
func formatReceipt(card cards.ReceiptCard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", card.Title)
	for _, fact := range card.Facts {
		fmt.Fprintf(&b, "%s: %s\n", fact.Key, fact.Value)
	}
	b.WriteString("\n")
	for _, item := range card.Items {
		fmt.Fprintf(&b, "%s  x%s  %s\n", item.Title, item.Quantity, item.Price)
	}
	if card.Tax != "" {
		fmt.Fprintf(&b, "\nTax: %s", card.Tax)
	}
	fmt.Fprintf(&b, "\n*Total: %s*", card.Total)
	return b.String()
}
