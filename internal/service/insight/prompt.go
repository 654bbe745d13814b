package insight

import (
	"fmt"
	"strings"
)

// Supported response languages. Anything unrecognized falls back to
// English rather than failing the request.
const (
	langEnglish = "en"
	langRussian = "ru"
)

func normalizeLanguage(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case langRussian, "russian", "ru-ru":
		return langRussian
	default:
		return langEnglish
	}
}

func languageName(lang string) string {
	if lang == langRussian {
		return "Russian"
	}
	return "English"
}

func interpretPrompt(text, lang string) string {
	return fmt.Sprintf(
		"You are a thoughtful dream interpreter. Interpret the following dream in exactly one paragraph. "+
			"Include one emoji that matches the mood of the dream. "+
			"Respond strictly in %s.\n\nDream:\n%s",
		languageName(lang), text,
	)
}

func titlePrompt(text, lang string) string {
	return fmt.Sprintf(
		"Come up with a short title for the following dream. "+
			"Use at most 5 words and end the title with a single fitting emoji. "+
			"Do not use quotation marks. Respond strictly in %s.\n\nDream:\n%s",
		languageName(lang), text,
	)
}

// weeklyPrompt wraps the serialized dream blocks in a fixed instruction.
// Greetings and disclaimers are forbidden and the answer is forced into
// three named sections so the client can render it predictably.
func weeklyPrompt(blocks, lang string) string {
	return fmt.Sprintf(
		"You are a reflective dream analyst. Below are a user's dream journal entries from this week. "+
			"Write a weekly summary strictly in %s. "+
			"Do not open with a greeting and do not add disclaimers. "+
			"Structure the answer into exactly three sections with these headings: "+
			"\"Recurring Themes\", \"Emotional Landscape\", \"Advice for the Week Ahead\".\n\n%s",
		languageName(lang), blocks,
	)
}
