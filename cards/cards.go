// Package cards holds the static rich card catalogue: typed card content,
// argument-free builders, the choice registry that configures the prompt,
// and the dispatch table from a completed choice to attachments.
package cards

import (
	"github.com/m3rciful/cardsbot/activity"
	"github.com/m3rciful/cardsbot/dialog"
)

// Content types identifying each card kind on an attachment.
const (
	ContentTypeVideo     = "application/vnd.cardsbot.card.video"
	ContentTypeAnimation = "application/vnd.cardsbot.card.animation"
	ContentTypeAudio     = "application/vnd.cardsbot.card.audio"
	ContentTypeHero      = "application/vnd.cardsbot.card.hero"
	ContentTypeReceipt   = "application/vnd.cardsbot.card.receipt"
	ContentTypeSignIn    = "application/vnd.cardsbot.card.signin"
	ContentTypeThumbnail = "application/vnd.cardsbot.card.thumbnail"
)

// ActionOpenURL opens a link when the user taps the button.
const ActionOpenURL = "openUrl"

// CardAction is a tappable button on a card.
type CardAction struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Value string `json:"value"`
}

// CardImage is an image displayed on a card.
type CardImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// MediaURL points at a playable media source.
type MediaURL struct {
	URL string `json:"url"`
}

// MediaCard is the shared shape of video, animation and audio cards.
type MediaCard struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle,omitempty"`
	Text     string       `json:"text,omitempty"`
	Image    *CardImage   `json:"image,omitempty"`
	Media    []MediaURL   `json:"media"`
	Buttons  []CardAction `json:"buttons,omitempty"`
}

// HeroCard is a large-image card with buttons.
type HeroCard struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle,omitempty"`
	Text     string       `json:"text,omitempty"`
	Images   []CardImage  `json:"images,omitempty"`
	Buttons  []CardAction `json:"buttons,omitempty"`
}

// ThumbnailCard is a small-image card with buttons.
type ThumbnailCard struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle,omitempty"`
	Text     string       `json:"text,omitempty"`
	Images   []CardImage  `json:"images,omitempty"`
	Buttons  []CardAction `json:"buttons,omitempty"`
}

// Fact is a key/value line on a receipt card.
type Fact struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ReceiptItem is a purchased line item on a receipt card.
type ReceiptItem struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Price    string    `json:"price"`
	Quantity string    `json:"quantity"`
	Image    CardImage `json:"image,omitempty"`
}

// ReceiptCard itemizes a purchase.
type ReceiptCard struct {
	Title   string        `json:"title"`
	Facts   []Fact        `json:"facts,omitempty"`
	Items   []ReceiptItem `json:"items"`
	Tax     string        `json:"tax,omitempty"`
	Total   string        `json:"total"`
	Buttons []CardAction  `json:"buttons,omitempty"`
}

// SignInCard asks the user to authenticate via a link.
type SignInCard struct {
	Text    string       `json:"text"`
	Buttons []CardAction `json:"buttons"`
}

// Video builds the video card attachment.
func Video() activity.Attachment {
	return activity.Attachment{
		ContentType: ContentTypeVideo,
		Content: MediaCard{
			Title:    "Big Buck Bunny",
			Subtitle: "by the Blender Institute",
			Text:     "Big Buck Bunny is a short computer-animated comedy film by the Blender Institute, part of the Blender Foundation.",
			Image:    &CardImage{URL: "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c5/Big_buck_bunny_poster_big.jpg/220px-Big_buck_bunny_poster_big.jpg", Alt: "Big Buck Bunny poster"},
			Media: []MediaURL{
				{URL: "https://download.blender.org/peach/bigbuckbunny_movies/BigBuckBunny_320x180.mp4"},
			},
			Buttons: []CardAction{
				{Type: ActionOpenURL, Title: "Learn More", Value: "https://peach.blender.org/"},
			},
		},
	}
}

// Animation builds the animation card attachment.
func Animation() activity.Attachment {
	return activity.Attachment{
		ContentType: ContentTypeAnimation,
		Content: MediaCard{
			Title:    "Animation Card",
			Subtitle: "Looping animation",
			Media: []MediaURL{
				{URL: "https://media.giphy.com/media/Ki55RUbOV5njy/giphy.gif"},
			},
		},
	}
}

// Audio builds the audio card attachment.
func Audio() activity.Attachment {
	return activity.Attachment{
		ContentType: ContentTypeAudio,
		Content: MediaCard{
			Title:    "I am your father",
			Subtitle: "Star Wars: Episode V - The Empire Strikes Back",
			Text:     "The Empire Strikes Back is a 1980 American epic space opera film directed by Irvin Kershner.",
			Image:    &CardImage{URL: "https://upload.wikimedia.org/wikipedia/en/3/3f/The_Empire_Strikes_Back_%281980_film%29.jpg", Alt: "The Empire Strikes Back poster"},
			Media: []MediaURL{
				{URL: "https://wavlist.com/wav/father.wav"},
			},
			Buttons: []CardAction{
				{Type: ActionOpenURL, Title: "Read More", Value: "https://en.wikipedia.org/wiki/The_Empire_Strikes_Back"},
			},
		},
	}
}

// Hero builds the hero card attachment.
func Hero() activity.Attachment {
	return activity.Attachment{
		ContentType: ContentTypeHero,
		Content: HeroCard{
			Title:    "Cards Bot",
			Subtitle: "Rich cards for chat",
			Text:     "Build rich conversational experiences with structured card attachments instead of plain text walls.",
			Images: []CardImage{
				{URL: "https://upload.wikimedia.org/wikipedia/commons/b/b1/Loudspeaker_rtl.svg", Alt: "Cards bot"},
			},
			Buttons: []CardAction{
				{Type: ActionOpenURL, Title: "Get Started", Value: "https://github.com/m3rciful/cardsbot"},
			},
		},
	}
}

// Receipt builds the receipt card attachment.
func Receipt() activity.Attachment {
	return activity.Attachment{
		ContentType: ContentTypeReceipt,
		Content: ReceiptCard{
			Title: "John Doe",
			Facts: []Fact{
				{Key: "Order Number", Value: "1234"},
				{Key: "Payment Method", Value: "VISA 5555-****"},
			},
			Items: []ReceiptItem{
				{
					Title:    "Data Transfer",
					Price:    "$38.45",
					Quantity: "368",
					Image:    CardImage{URL: "https://github.com/amido/azure-vector-icons/raw/master/renders/traffic-manager.png"},
				},
				{
					Title:    "App Service",
					Price:    "$45.00",
					Quantity: "720",
					Image:    CardImage{URL: "https://github.com/amido/azure-vector-icons/raw/master/renders/cloud-service.png"},
				},
			},
			Tax:   "$7.50",
			Total: "$90.95",
			Buttons: []CardAction{
				{Type: ActionOpenURL, Title: "More information", Value: "https://azure.microsoft.com/en-us/pricing/"},
			},
		},
	}
}

// SignIn builds the sign-in card attachment.
func SignIn() activity.Attachment {
	return activity.Attachment{
		ContentType: ContentTypeSignIn,
		Content: SignInCard{
			Text: "Sign-in to your account",
			Buttons: []CardAction{
				{Type: ActionOpenURL, Title: "Sign-in", Value: "https://login.microsoftonline.com/"},
			},
		},
	}
}

// Thumbnail builds the thumbnail card attachment.
func Thumbnail() activity.Attachment {
	return activity.Attachment{
		ContentType: ContentTypeThumbnail,
		Content: ThumbnailCard{
			Title:    "Cards Bot",
			Subtitle: "Rich cards for chat",
			Text:     "A compact card with a small image, useful for list-like layouts.",
			Images: []CardImage{
				{URL: "https://upload.wikimedia.org/wikipedia/commons/b/b1/Loudspeaker_rtl.svg", Alt: "Cards bot"},
			},
			Buttons: []CardAction{
				{Type: ActionOpenURL, Title: "Get Started", Value: "https://github.com/m3rciful/cardsbot"},
			},
		},
	}
}

// All returns every card in the fixed carousel order. The video card
// opens and closes the set.
func All() []activity.Attachment {
	return []activity.Attachment{
		Video(),
		Animation(),
		Audio(),
		Hero(),
		Receipt(),
		SignIn(),
		Thumbnail(),
		Video(),
	}
}

// Choice labels understood by the dispatcher.
const (
	LabelVideo     = "Video Card"
	LabelAnimation = "Animation Card"
	LabelAudio     = "Audio Card"
	LabelHero      = "Hero Card"
	LabelReceipt   = "Receipt Card"
	LabelSignIn    = "Sign-In Card"
	LabelThumbnail = "Thumbnail Card"
	LabelAll       = "All Cards"
)

// Choices returns the immutable label+synonym registry used to configure
// the card choice prompt.
func Choices() []dialog.Choice {
	return []dialog.Choice{
		{Label: LabelAnimation, Synonyms: []string{"animation", "gif"}},
		{Label: LabelAudio, Synonyms: []string{"audio", "sound"}},
		{Label: LabelHero, Synonyms: []string{"hero"}},
		{Label: LabelReceipt, Synonyms: []string{"receipt", "invoice"}},
		{Label: LabelSignIn, Synonyms: []string{"sign-in", "signin", "login"}},
		{Label: LabelThumbnail, Synonyms: []string{"thumbnail", "thumb"}},
		{Label: LabelVideo, Synonyms: []string{"video", "movie"}},
		{Label: LabelAll, Synonyms: []string{"all", "everything"}},
	}
}

// Dispatch maps a completed choice label to the attachments and layout to
// send. It reports false for labels outside the known set.
func Dispatch(label string) ([]activity.Attachment, activity.Layout, bool) {
	switch label {
	case LabelVideo:
		return []activity.Attachment{Video()}, activity.LayoutList, true
	case LabelAnimation:
		return []activity.Attachment{Animation()}, activity.LayoutList, true
	case LabelAudio:
		return []activity.Attachment{Audio()}, activity.LayoutList, true
	case LabelHero:
		return []activity.Attachment{Hero()}, activity.LayoutList, true
	case LabelReceipt:
		return []activity.Attachment{Receipt()}, activity.LayoutList, true
	case LabelSignIn:
		return []activity.Attachment{SignIn()}, activity.LayoutList, true
	case LabelThumbnail:
		return []activity.Attachment{Thumbnail()}, activity.LayoutList, true
	case LabelAll:
		return All(), activity.LayoutCarousel, true
	}
	return nil, "", false
}
