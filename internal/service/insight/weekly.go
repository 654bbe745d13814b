package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/somnia-backend/internal/adapter/provider/llmapi"
	"github.com/heartmarshall/somnia-backend/internal/domain"
)

var emptyWeekMessage = map[string]string{
	langEnglish: "You have no dream entries this week yet. Record a dream and check back for your weekly summary!",
	langRussian: "На этой неделе у вас пока нет записей снов. Запишите сон и возвращайтесь за еженедельным обзором!",
}

var summaryFailedMessage = map[string]string{
	langEnglish: "The weekly summary is unavailable right now. Please try again later.",
	langRussian: "Еженедельный обзор сейчас недоступен. Пожалуйста, попробуйте позже.",
}

// WeeklySummary narrates the dreams recorded during the ISO week
// (Monday through Sunday) containing now. With no qualifying dreams it
// returns a canned message without touching the provider; a provider
// failure degrades to a canned failure string rather than an error.
func (s *Service) WeeklySummary(ctx context.Context, dreams []domain.Dream, language string) (string, error) {
	lang := normalizeLanguage(language)

	week := filterToISOWeek(dreams, s.now())
	if len(week) == 0 {
		return emptyWeekMessage[lang], nil
	}

	out, err := s.llm.CreateCompletion(ctx, []llmapi.Message{
		{Role: "user", Content: weeklyPrompt(serializeDreams(week), lang)},
	})
	if err != nil {
		s.log.WarnContext(ctx, "weekly summary generation failed",
			slog.Int("dream_count", len(week)),
			slog.String("error", err.Error()))
		return summaryFailedMessage[lang], nil
	}

	return strings.TrimSpace(out), nil
}

// filterToISOWeek keeps dreams whose timestamp falls inside the
// Monday-to-Sunday week containing now.
func filterToISOWeek(dreams []domain.Dream, now time.Time) []domain.Dream {
	start := startOfISOWeek(now)
	end := start.AddDate(0, 0, 7)

	var out []domain.Dream
	for _, d := range dreams {
		at := d.DreamedAt.UTC()
		if !at.Before(start) && at.Before(end) {
			out = append(out, d)
		}
	}
	return out
}

// startOfISOWeek returns Monday 00:00 UTC of the week containing t.
func startOfISOWeek(t time.Time) time.Time {
	u := t.UTC()
	weekday := int(u.Weekday())
	if weekday == 0 { // Sunday belongs to the week that started last Monday
		weekday = 7
	}
	y, m, d := u.AddDate(0, 0, -(weekday - 1)).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// serializeDreams renders each dream as a structured block for the
// summary prompt.
func serializeDreams(dreams []domain.Dream) string {
	var b strings.Builder
	for i, d := range dreams {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		fmt.Fprintf(&b, "Date: %s\n", d.DreamedAt.UTC().Format("2006-01-02"))
		if d.Title != nil && *d.Title != "" {
			fmt.Fprintf(&b, "Title: %s\n", *d.Title)
		}
		fmt.Fprintf(&b, "Dream: %s\n", d.Text)
		if d.Interpretation != nil && *d.Interpretation != "" {
			fmt.Fprintf(&b, "Interpretation: %s\n", *d.Interpretation)
		}
	}
	return b.String()
}
