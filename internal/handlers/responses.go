package handlers

import (
	"log"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/foodgram-dev/foodgram/internal/utils"
)

// isSubscribed reports whether viewer follows author. Anonymous viewers
// and self-views always read false.
func isSubscribed(viewerID, authorID uint) bool {
	if viewerID == 0 || viewerID == authorID {
		return false
	}

	var count int64

	err := db.DB.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND author_id = ?", viewerID, authorID).
		Count(&count).Error

	if err != nil {
		log.Printf("Failed to check subscription state: %v", err)
		return false
	}

	return count > 0
}

func buildUserResponse(user models.User, viewerID uint) types.UserResponse {
	return types.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed(viewerID, user.ID),
		Avatar:       utils.MediaURL(user.Avatar),
	}
}

func buildRecipeShort(recipe models.Recipe) types.RecipeShortResponse {
	return types.RecipeShortResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       utils.MediaURL(recipe.Image),
		CookingTime: recipe.CookingTime,
	}
}

// buildRecipeResponse expects Author and RecipeIngredients.Ingredient to
// be preloaded.
func buildRecipeResponse(recipe models.Recipe, viewerID uint) types.RecipeResponse {
	ingredients := make([]types.IngredientAmountResponse, 0, len(recipe.RecipeIngredients))

	for _, item := range recipe.RecipeIngredients {
		ingredients = append(ingredients, types.IngredientAmountResponse{
			ID:              item.IngredientID,
			Name:            item.Ingredient.Name,
			MeasurementUnit: item.Ingredient.MeasurementUnit,
			Amount:          item.Amount,
		})
	}

	return types.RecipeResponse{
		ID:               recipe.ID,
		Author:           buildUserResponse(recipe.Author, viewerID),
		Ingredients:      ingredients,
		IsFavorited:      hasRecipeRelation(&models.Favorite{}, viewerID, recipe.ID),
		IsInShoppingCart: hasRecipeRelation(&models.ShoppingCart{}, viewerID, recipe.ID),
		Name:             recipe.Name,
		Image:            utils.MediaURL(recipe.Image),
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}
}

func hasRecipeRelation(model interface{}, viewerID, recipeID uint) bool {
	if viewerID == 0 {
		return false
	}

	var count int64

	err := db.DB.Model(model).
		Where("user_id = ? AND recipe_id = ?", viewerID, recipeID).
		Count(&count).Error

	if err != nil {
		log.Printf("Failed to check recipe relation: %v", err)
		return false
	}

	return count > 0
}

// buildUserWithRecipes embeds up to recipesLimit recipe previews, newest
// first. A non-positive limit embeds all of them.
func buildUserWithRecipes(user models.User, viewerID uint, recipesLimit int) (types.UserWithRecipesResponse, error) {
	var count int64

	if err := db.DB.Model(&models.Recipe{}).Where("author_id = ?", user.ID).Count(&count).Error; err != nil {
		return types.UserWithRecipesResponse{}, err
	}

	query := db.DB.Where("author_id = ?", user.ID).Order("created_at DESC")

	if recipesLimit > 0 {
		query = query.Limit(recipesLimit)
	}

	var recipes []models.Recipe

	if err := query.Find(&recipes).Error; err != nil {
		return types.UserWithRecipesResponse{}, err
	}

	previews := make([]types.RecipeShortResponse, 0, len(recipes))

	for _, recipe := range recipes {
		previews = append(previews, buildRecipeShort(recipe))
	}

	return types.UserWithRecipesResponse{
		UserResponse: buildUserResponse(user, viewerID),
		Recipes:      previews,
		RecipesCount: count,
	}, nil
}
