package cards

import (
	"reflect"
	"testing"

	"github.com/m3rciful/cardsbot/activity"
)

func TestAllReturnsEightCardsInFixedOrder(t *testing.T) {
	all := All()
	if len(all) != 8 {
		t.Fatalf("All() returned %d attachments, want 8", len(all))
	}

	want := []string{
		ContentTypeVideo,
		ContentTypeAnimation,
		ContentTypeAudio,
		ContentTypeHero,
		ContentTypeReceipt,
		ContentTypeSignIn,
		ContentTypeThumbnail,
		ContentTypeVideo,
	}
	for i, att := range all {
		if att.ContentType != want[i] {
			t.Errorf("All()[%d].ContentType = %q, want %q", i, att.ContentType, want[i])
		}
	}
}

func TestBuildersAreIdempotent(t *testing.T) {
	builders := map[string]func() activity.Attachment{
		"video":     Video,
		"animation": Animation,
		"audio":     Audio,
		"hero":      Hero,
		"receipt":   Receipt,
		"signin":    SignIn,
		"thumbnail": Thumbnail,
	}
	for name, build := range builders {
		first, second := build(), build()
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s builder is not deterministic across calls", name)
		}
	}
}

func TestDispatchKnownLabels(t *testing.T) {
	for _, choice := range Choices() {
		attachments, layout, ok := Dispatch(choice.Label)
		if !ok {
			t.Fatalf("Dispatch(%q) reported unknown", choice.Label)
		}
		if choice.Label == LabelAll {
			if layout != activity.LayoutCarousel {
				t.Errorf("Dispatch(%q) layout = %q, want carousel", choice.Label, layout)
			}
			if len(attachments) != 8 {
				t.Errorf("Dispatch(%q) returned %d attachments, want 8", choice.Label, len(attachments))
			}
			continue
		}
		if layout != activity.LayoutList {
			t.Errorf("Dispatch(%q) layout = %q, want list", choice.Label, layout)
		}
		if len(attachments) != 1 {
			t.Errorf("Dispatch(%q) returned %d attachments, want 1", choice.Label, len(attachments))
		}
	}
}

func TestDispatchUnknownLabel(t *testing.T) {
	attachments, _, ok := Dispatch("Pizza Card")
	if ok {
		t.Fatal("Dispatch accepted an unknown label")
	}
	if attachments != nil {
		t.Fatalf("Dispatch returned attachments for an unknown label: %v", attachments)
	}
}

func TestChoicesCoverEveryDispatchableCard(t *testing.T) {
	choices := Choices()
	if len(choices) != 8 {
		t.Fatalf("Choices() returned %d entries, want 8", len(choices))
	}
	seen := make(map[string]bool, len(choices))
	for _, c := range choices {
		if seen[c.Label] {
			t.Errorf("duplicate choice label %q", c.Label)
		}
		seen[c.Label] = true
	}
}
