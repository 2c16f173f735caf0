package shopping

import (
	"reflect"
	"testing"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name string
		rows []IngredientRow
		want []Line
	}{
		{
			name: "empty cart",
			rows: nil,
			want: []Line{},
		},
		{
			name: "sums amounts per ingredient",
			rows: []IngredientRow{
				{Name: "мука", MeasurementUnit: "г", Amount: 200},
				{Name: "мука", MeasurementUnit: "г", Amount: 300},
				{Name: "яйцо", MeasurementUnit: "шт", Amount: 2},
			},
			want: []Line{
				{Name: "мука", MeasurementUnit: "г", Total: 500},
				{Name: "яйцо", MeasurementUnit: "шт", Total: 2},
			},
		},
		{
			name: "merges catalog entries differing only in case",
			rows: []IngredientRow{
				{Name: "Flour", MeasurementUnit: "g", Amount: 200},
				{Name: "flour", MeasurementUnit: "g", Amount: 300},
			},
			want: []Line{
				{Name: "flour", MeasurementUnit: "g", Total: 500},
			},
		},
		{
			name: "same name with different units stays separate",
			rows: []IngredientRow{
				{Name: "сахар", MeasurementUnit: "г", Amount: 100},
				{Name: "сахар", MeasurementUnit: "ст. л.", Amount: 2},
			},
			want: []Line{
				{Name: "сахар", MeasurementUnit: "г", Total: 100},
				{Name: "сахар", MeasurementUnit: "ст. л.", Total: 2},
			},
		},
		{
			name: "output sorted by name regardless of input order",
			rows: []IngredientRow{
				{Name: "banana", MeasurementUnit: "pc", Amount: 1},
				{Name: "apple", MeasurementUnit: "pc", Amount: 2},
				{Name: "cherry", MeasurementUnit: "g", Amount: 50},
			},
			want: []Line{
				{Name: "apple", MeasurementUnit: "pc", Total: 2},
				{Name: "banana", MeasurementUnit: "pc", Total: 1},
				{Name: "cherry", MeasurementUnit: "g", Total: 50},
			},
		},
		{
			name: "trims surrounding whitespace before grouping",
			rows: []IngredientRow{
				{Name: " salt", MeasurementUnit: "g", Amount: 5},
				{Name: "salt ", MeasurementUnit: "g", Amount: 3},
			},
			want: []Line{
				{Name: "salt", MeasurementUnit: "g", Total: 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.rows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Aggregate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	rows := []IngredientRow{
		{Name: "мука", MeasurementUnit: "г", Amount: 200},
		{Name: "яйцо", MeasurementUnit: "шт", Amount: 2},
		{Name: "мука", MeasurementUnit: "г", Amount: 300},
	}

	reversed := make([]IngredientRow, len(rows))
	for i, row := range rows {
		reversed[len(rows)-1-i] = row
	}

	if got, want := Aggregate(rows), Aggregate(reversed); !reflect.DeepEqual(got, want) {
		t.Errorf("Aggregate() depends on input order: %v vs %v", got, want)
	}
}

func TestAggregateAddingRecipeIncreasesTotal(t *testing.T) {
	base := []IngredientRow{
		{Name: "мука", MeasurementUnit: "г", Amount: 200},
	}

	withExtra := append([]IngredientRow{}, base...)
	withExtra = append(withExtra, IngredientRow{Name: "мука", MeasurementUnit: "г", Amount: 150})

	before := Aggregate(base)[0].Total
	after := Aggregate(withExtra)[0].Total

	if after-before != 150 {
		t.Errorf("total increased by %d, want 150", after-before)
	}
}
