package handlers

import "testing"

func TestValidateRecipeWrite(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []IngredientAmount
		cookingTime int
		wantFields  []string
	}{
		{
			name: "valid payload",
			ingredients: []IngredientAmount{
				{ID: 1, Amount: 200},
				{ID: 2, Amount: 3},
			},
			cookingTime: 30,
		},
		{
			name:        "empty ingredient list",
			ingredients: nil,
			cookingTime: 30,
			wantFields:  []string{"ingredients"},
		},
		{
			name: "duplicate ingredient id",
			ingredients: []IngredientAmount{
				{ID: 1, Amount: 200},
				{ID: 1, Amount: 100},
			},
			cookingTime: 30,
			wantFields:  []string{"ingredients"},
		},
		{
			name: "zero amount",
			ingredients: []IngredientAmount{
				{ID: 1, Amount: 0},
			},
			cookingTime: 30,
			wantFields:  []string{"ingredients"},
		},
		{
			name: "negative amount",
			ingredients: []IngredientAmount{
				{ID: 1, Amount: -5},
			},
			cookingTime: 30,
			wantFields:  []string{"ingredients"},
		},
		{
			name: "zero cooking time",
			ingredients: []IngredientAmount{
				{ID: 1, Amount: 200},
			},
			cookingTime: 0,
			wantFields:  []string{"cooking_time"},
		},
		{
			name:        "multiple problems reported together",
			ingredients: nil,
			cookingTime: -1,
			wantFields:  []string{"ingredients", "cooking_time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := validateRecipeWrite(tt.ingredients, tt.cookingTime)

			if len(problems) != len(tt.wantFields) {
				t.Fatalf("validateRecipeWrite() = %v, want fields %v", problems, tt.wantFields)
			}

			for _, field := range tt.wantFields {
				if _, ok := problems[field]; !ok {
					t.Errorf("validateRecipeWrite() missing problem for %q: %v", field, problems)
				}
			}
		})
	}
}
