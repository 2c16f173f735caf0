package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/foodgram-dev/foodgram/internal/relations"
	"github.com/foodgram-dev/foodgram/internal/shopping"
	"github.com/foodgram-dev/foodgram/internal/shortlink"
	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/foodgram-dev/foodgram/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRecipeRequest struct {
	Ingredients []IngredientAmount `json:"ingredients"`
	Name        string             `json:"name" binding:"required,max=256"`
	Image       string             `json:"image"`
	Text        string             `json:"text" binding:"required"`
	CookingTime int                `json:"cooking_time"`
}

type UpdateRecipeRequest struct {
	Ingredients []IngredientAmount `json:"ingredients"`
	Name        *string            `json:"name" binding:"omitempty,max=256"`
	Image       *string            `json:"image"`
	Text        *string            `json:"text"`
	CookingTime *int               `json:"cooking_time"`
}

func ListRecipes(ctx *gin.Context) {
	viewerID := utils.OptionalUserID(ctx)
	params := utils.GetPageParams(ctx)

	query := db.DB.Model(&models.Recipe{})

	if author := ctx.Query("author"); author != "" {
		query = query.Where("author_id = ?", author)
	}

	if search := ctx.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", search+"%")
	}

	// Relation filters only apply to authenticated viewers.
	if viewerID != 0 {
		if ctx.Query("is_favorited") == "1" {
			query = query.Where(
				"id IN (?)",
				db.DB.Model(&models.Favorite{}).Select("recipe_id").Where("user_id = ?", viewerID),
			)
		}

		if ctx.Query("is_in_shopping_cart") == "1" {
			query = query.Where(
				"id IN (?)",
				db.DB.Model(&models.ShoppingCart{}).Select("recipe_id").Where("user_id = ?", viewerID),
			)
		}
	}

	var count int64

	if err := query.Count(&count).Error; err != nil {
		log.Printf("Failed to count recipes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var recipes []models.Recipe

	err := query.Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Preload("Author").
		Preload("RecipeIngredients.Ingredient").
		Find(&recipes).Error

	if err != nil {
		log.Printf("Failed to retrieve recipes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	results := make([]types.RecipeResponse, 0, len(recipes))

	for _, recipe := range recipes {
		results = append(results, buildRecipeResponse(recipe, viewerID))
	}

	ctx.JSON(http.StatusOK, utils.Paginated(ctx, params, count, results))
}

func GetRecipe(ctx *gin.Context) {
	viewerID := utils.OptionalUserID(ctx)

	recipe, ok := fetchRecipe(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, buildRecipeResponse(recipe, viewerID))
}

func CreateRecipe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateRecipeRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	problems := validateRecipeWrite(body.Ingredients, body.CookingTime)

	if body.Image == "" {
		problems["image"] = "image is required"
	}

	if len(problems) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "detail": problems})
		return
	}

	if err := resolveIngredients(db.DB, body.Ingredients); err != nil {
		if errors.Is(err, errUnknownIngredient) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "detail": gin.H{"ingredients": "ingredient not found"}})
		} else {
			log.Printf("Failed to resolve ingredients: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	imagePath, err := utils.SaveBase64Image(body.Image, "recipes/images")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "detail": gin.H{"image": err.Error()}})
		return
	}

	recipe := models.Recipe{
		AuthorID:    currentUser.ID,
		Name:        body.Name,
		Text:        body.Text,
		Image:       imagePath,
		CookingTime: body.CookingTime,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		return replaceRecipeIngredients(tx, recipe.ID, body.Ingredients)
	})

	if err != nil {
		log.Printf("Failed to create recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	created, ok := loadRecipe(ctx, recipe.ID)

	if !ok {
		return
	}

	ctx.JSON(http.StatusCreated, buildRecipeResponse(created, currentUser.ID))
}

func UpdateRecipe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, ok := fetchRecipe(ctx)

	if !ok {
		return
	}

	if recipe.AuthorID != currentUser.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the author can modify this recipe"})
		return
	}

	var body UpdateRecipeRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Updates must restate the full ingredient set; the replace-all
	// semantics leave nothing to merge with.
	cookingTime := recipe.CookingTime

	if body.CookingTime != nil {
		cookingTime = *body.CookingTime
	}

	problems := validateRecipeWrite(body.Ingredients, cookingTime)

	if len(problems) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "detail": problems})
		return
	}

	if err := resolveIngredients(db.DB, body.Ingredients); err != nil {
		if errors.Is(err, errUnknownIngredient) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "detail": gin.H{"ingredients": "ingredient not found"}})
		} else {
			log.Printf("Failed to resolve ingredients: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if body.Name != nil {
		recipe.Name = *body.Name
	}

	if body.Text != nil {
		recipe.Text = *body.Text
	}

	recipe.CookingTime = cookingTime

	previousImage := ""

	if body.Image != nil && *body.Image != "" {
		imagePath, err := utils.SaveBase64Image(*body.Image, "recipes/images")

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "detail": gin.H{"image": err.Error()}})
			return
		}

		previousImage = recipe.Image
		recipe.Image = imagePath
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}
		return replaceRecipeIngredients(tx, recipe.ID, body.Ingredients)
	})

	if err != nil {
		log.Printf("Failed to update recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := utils.RemoveMediaFile(previousImage); err != nil {
		log.Printf("Failed to remove replaced recipe image: %v", err)
	}

	updated, ok := loadRecipe(ctx, recipe.ID)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, buildRecipeResponse(updated, currentUser.ID))
}

func DeleteRecipe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, ok := fetchRecipe(ctx)

	if !ok {
		return
	}

	if recipe.AuthorID != currentUser.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the author can delete this recipe"})
		return
	}

	if err := db.DB.Delete(&recipe).Error; err != nil {
		log.Printf("Failed to delete recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func ToggleFavorite(ctx *gin.Context) {
	toggleRecipeRelation(ctx, relations.NewFavoriteService(db.DB))
}

func ToggleShoppingCart(ctx *gin.Context) {
	toggleRecipeRelation(ctx, relations.NewShoppingCartService(db.DB))
}

func toggleRecipeRelation(ctx *gin.Context, service *relations.Service) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, ok := fetchRecipe(ctx)

	if !ok {
		return
	}

	if ctx.Request.Method == http.MethodDelete {
		err := service.Remove(currentUser.ID, recipe.ID)

		switch {
		case errors.Is(err, relations.ErrNotFound):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Recipe %d was not found", recipe.ID)})
		case err != nil:
			log.Printf("Failed to remove recipe relation: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		default:
			ctx.Status(http.StatusNoContent)
		}
		return
	}

	err = service.Add(currentUser.ID, recipe.ID)

	switch {
	case errors.Is(err, relations.ErrAlreadyExists):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Recipe %d is already added", recipe.ID)})
	case err != nil:
		log.Printf("Failed to create recipe relation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		ctx.JSON(http.StatusCreated, buildRecipeShort(recipe))
	}
}

func DownloadShoppingCart(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	report, err := shopping.BuildReport(db.DB, currentUser.ID, time.Now())

	if err != nil {
		log.Printf("Failed to build shopping list: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="shopping_cart.txt"`)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}

func GetRecipeLink(ctx *gin.Context) {
	recipe, ok := fetchRecipe(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"short-link": shortlink.Path(recipe.ID)})
}

func RedirectShortLink(ctx *gin.Context) {
	id, err := shortlink.Decode(ctx.Param("code"))

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var recipe models.Recipe

	if err := db.DB.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		} else {
			log.Printf("Failed to resolve short link: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/recipes/%d", recipe.ID))
}

// fetchRecipe loads the recipe named by the :id param with its author
// and ingredients, writing the error response itself on failure.
func fetchRecipe(ctx *gin.Context) (models.Recipe, bool) {
	var recipe models.Recipe

	err := db.DB.Preload("Author").
		Preload("RecipeIngredients.Ingredient").
		First(&recipe, "id = ?", ctx.Param("id")).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		} else {
			log.Printf("Failed to retrieve recipe: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return models.Recipe{}, false
	}

	return recipe, true
}

func loadRecipe(ctx *gin.Context, id uint) (models.Recipe, bool) {
	var recipe models.Recipe

	err := db.DB.Preload("Author").
		Preload("RecipeIngredients.Ingredient").
		First(&recipe, id).Error

	if err != nil {
		log.Printf("Failed to reload recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return models.Recipe{}, false
	}

	return recipe, true
}
