package shopping

import (
	"time"

	"github.com/foodgram-dev/foodgram/internal/models"
	"gorm.io/gorm"
)

// BuildReport resolves the user's cart and renders the shopping list.
// Read-only; the ambient request transaction is not required.
func BuildReport(db *gorm.DB, userID uint, now time.Time) (string, error) {
	var rows []IngredientRow

	err := db.Model(&models.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, recipe_ingredients.amount AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ? AND shopping_carts.deleted_at IS NULL AND recipes.deleted_at IS NULL", userID).
		Scan(&rows).Error

	if err != nil {
		return "", err
	}

	var cartRecipes []models.Recipe

	err = db.Model(&models.Recipe{}).
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipes.id").
		Where("shopping_carts.user_id = ? AND shopping_carts.deleted_at IS NULL", userID).
		Order("recipes.created_at DESC").
		Preload("Author").
		Find(&cartRecipes).Error

	if err != nil {
		return "", err
	}

	recipeLines := make([]RecipeLine, 0, len(cartRecipes))

	for _, recipe := range cartRecipes {
		recipeLines = append(recipeLines, RecipeLine{
			Name:   recipe.Name,
			Author: recipe.Author.FullName(),
		})
	}

	return RenderReport(now, Aggregate(rows), recipeLines), nil
}
