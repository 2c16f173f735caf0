package handlers

import (
	"fmt"

	"github.com/foodgram-dev/foodgram/internal/models"
	"gorm.io/gorm"
)

// IngredientAmount is one entry of a recipe write payload.
type IngredientAmount struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

// validateRecipeWrite checks the parts of a write payload that need no
// database access. Returns field-keyed problems, empty when valid.
func validateRecipeWrite(ingredients []IngredientAmount, cookingTime int) map[string]string {
	problems := make(map[string]string)

	if len(ingredients) == 0 {
		problems["ingredients"] = "ingredients list cannot be empty"
	} else {
		seen := make(map[uint]bool, len(ingredients))

		for _, item := range ingredients {
			if seen[item.ID] {
				problems["ingredients"] = "duplicate ingredients are not allowed"
				break
			}
			seen[item.ID] = true

			if item.Amount <= 0 {
				problems["ingredients"] = "amount must be greater than 0"
				break
			}
		}
	}

	if cookingTime <= 0 {
		problems["cooking_time"] = "cooking time must be greater than 0"
	}

	return problems
}

// resolveIngredients verifies every referenced catalog entry exists.
func resolveIngredients(db *gorm.DB, ingredients []IngredientAmount) error {
	ids := make([]uint, 0, len(ingredients))

	for _, item := range ingredients {
		ids = append(ids, item.ID)
	}

	var count int64

	if err := db.Model(&models.Ingredient{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}

	if count != int64(len(ids)) {
		return errUnknownIngredient
	}

	return nil
}

var errUnknownIngredient = fmt.Errorf("ingredient not found")

// replaceRecipeIngredients swaps the whole ingredient set: delete-all,
// insert-all. Callers run it inside a transaction.
func replaceRecipeIngredients(tx *gorm.DB, recipeID uint, ingredients []IngredientAmount) error {
	err := tx.Unscoped().
		Where("recipe_id = ?", recipeID).
		Delete(&models.RecipeIngredient{}).Error

	if err != nil {
		return err
	}

	for _, item := range ingredients {
		row := models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: item.ID,
			Amount:       item.Amount,
		}

		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}

	return nil
}
