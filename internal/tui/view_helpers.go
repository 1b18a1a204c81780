package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

type speaker int

const (
	speakerUser speaker = iota
	speakerBot
	speakerError
)

type transcriptEntry struct {
	from speaker
	text string
}

// renderTranscript lays the conversation out oldest first. Multi-line bot
// replies keep their line breaks and are indented under the prefix.
func renderTranscript(entries []transcriptEntry) string {
	var b strings.Builder

	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}

		switch e.from {
		case speakerUser:
			b.WriteString(userStyle.Render("you> " + e.text))
		case speakerBot:
			b.WriteString(botStyle.Render("bot> " + indentContinuation(e.text, "     ")))
		case speakerError:
			b.WriteString(errorStyle.Render("!! " + e.text))
		}
	}

	return b.String()
}

func indentContinuation(text, indent string) string {
	return strings.ReplaceAll(text, "\n", "\n"+indent)
}
