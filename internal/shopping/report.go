package shopping

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// RecipeLine names one distinct cart recipe and its author.
type RecipeLine struct {
	Name   string
	Author string
}

// RenderReport produces the plain-text shopping list. An empty cart
// yields a valid report with empty sections.
func RenderReport(now time.Time, lines []Line, recipes []RecipeLine) string {
	parts := []string{
		fmt.Sprintf("Список покупок сгенерирован: %s", now.Format("2006-01-02 15:04")),
		"",
		"Ингредиенты:",
	}

	for idx, line := range lines {
		parts = append(parts, fmt.Sprintf(
			"%d. %s (%s) – %d",
			idx+1, capitalize(line.Name), line.MeasurementUnit, line.Total,
		))
	}

	parts = append(parts, "", "Рецепты с этими ингредиентами:")

	for _, recipe := range recipes {
		parts = append(parts, fmt.Sprintf("- %s, автор: %s", recipe.Name, recipe.Author))
	}

	return strings.Join(parts, "\n") + "\n"
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
