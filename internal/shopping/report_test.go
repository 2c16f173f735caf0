package shopping

import (
	"strings"
	"testing"
	"time"
)

var reportTime = time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)

func TestRenderReport(t *testing.T) {
	lines := []Line{
		{Name: "flour", MeasurementUnit: "g", Total: 500},
		{Name: "мука", MeasurementUnit: "г", Total: 200},
	}
	recipes := []RecipeLine{
		{Name: "Блины", Author: "Иван Иванов"},
		{Name: "Хлеб", Author: "baker"},
	}

	got := RenderReport(reportTime, lines, recipes)

	want := strings.Join([]string{
		"Список покупок сгенерирован: 2025-03-14 09:26",
		"",
		"Ингредиенты:",
		"1. Flour (g) – 500",
		"2. Мука (г) – 200",
		"",
		"Рецепты с этими ингредиентами:",
		"- Блины, автор: Иван Иванов",
		"- Хлеб, автор: baker",
		"",
	}, "\n")

	if got != want {
		t.Errorf("RenderReport() = %q, want %q", got, want)
	}
}

func TestRenderReportEmptyCart(t *testing.T) {
	got := RenderReport(reportTime, nil, nil)

	want := strings.Join([]string{
		"Список покупок сгенерирован: 2025-03-14 09:26",
		"",
		"Ингредиенты:",
		"",
		"Рецепты с этими ингредиентами:",
		"",
	}, "\n")

	if got != want {
		t.Errorf("RenderReport() = %q, want %q", got, want)
	}

	if !strings.HasSuffix(got, "\n") {
		t.Error("report must end with a trailing newline")
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"flour", "Flour"},
		{"FLOUR", "Flour"},
		{"мука", "Мука"},
		{"оливковое масло", "Оливковое масло"},
		{"x", "X"},
	}

	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
