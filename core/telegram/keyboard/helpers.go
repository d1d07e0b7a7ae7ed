package keyboard

import tele "gopkg.in/telebot.v4"

// RemoveKeyboard returns a markup that hides the reply keyboard.
func RemoveKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}

// ReplyButtons builds a reply keyboard from rows of text.
func ReplyButtons(rows ...[]string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	var keyboard []tele.Row
	for _, row := range rows {
		var buttons []tele.Btn
		for _, label := range row {
			buttons = append(buttons, markup.Text(label))
		}
		keyboard = append(keyboard, markup.Row(buttons...))
	}
	markup.Reply(keyboard...)
	return markup
}

// ReplyButtonsNPerRow splits a flat list of labels into reply keyboard rows
// with up to n buttons per row. If n <= 1 each label gets its own row.
func ReplyButtonsNPerRow(labels []string, n int) *tele.ReplyMarkup {
	if n <= 1 {
		n = 1
	}
	var rows [][]string
	for i := 0; i < len(labels); i += n {
		end := i + n
		if end > len(labels) {
			end = len(labels)
		}
		rows = append(rows, labels[i:end])
	}
	return ReplyButtons(rows...)
}

// URLBtn describes an inline link button.
type URLBtn struct {
	Text string
	URL  string
}

// InlineURLButtons builds an inline keyboard from URL buttons, one per row.
func InlineURLButtons(buttons []URLBtn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	inline := make([][]tele.InlineButton, 0, len(buttons))
	for _, b := range buttons {
		inline = append(inline, []tele.InlineButton{{Text: b.Text, URL: b.URL}})
	}
	markup.InlineKeyboard = inline
	return markup
}
