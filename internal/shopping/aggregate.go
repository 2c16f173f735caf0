// Package shopping builds the downloadable shopping list: a grouped sum
// of ingredient amounts across every recipe in a user's cart.
package shopping

import (
	"sort"
	"strings"
)

// IngredientRow is one recipe-ingredient occurrence reachable through
// the user's cart.
type IngredientRow struct {
	Name            string
	MeasurementUnit string
	Amount          int
}

// Line is one aggregated report entry. Name is normalized to lower case;
// capitalization happens at render time only.
type Line struct {
	Name            string
	MeasurementUnit string
	Total           int
}

// Aggregate groups rows by (normalized name, measurement unit) and sums
// amounts. Catalog entries that differ only in name casing are merged.
// Output is sorted by name, then unit, regardless of input order.
func Aggregate(rows []IngredientRow) []Line {
	type key struct {
		name string
		unit string
	}

	totals := make(map[key]int)

	for _, row := range rows {
		k := key{
			name: strings.ToLower(strings.TrimSpace(row.Name)),
			unit: row.MeasurementUnit,
		}
		totals[k] += row.Amount
	}

	lines := make([]Line, 0, len(totals))

	for k, total := range totals {
		lines = append(lines, Line{
			Name:            k.name,
			MeasurementUnit: k.unit,
			Total:           total,
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Name != lines[j].Name {
			return lines[i].Name < lines[j].Name
		}
		return lines[i].MeasurementUnit < lines[j].MeasurementUnit
	})

	return lines
}
