package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/foodgram-dev/foodgram/db"
	"github.com/foodgram-dev/foodgram/internal/models"
	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListIngredients serves the catalog, unpaginated, with an optional
// case-insensitive name prefix filter.
func ListIngredients(ctx *gin.Context) {
	query := db.DB.Model(&models.Ingredient{}).Order("name ASC")

	if name := strings.TrimSpace(ctx.Query("name")); name != "" {
		query = query.Where("name ILIKE ?", name+"%")
	}

	var ingredients []models.Ingredient

	if err := query.Find(&ingredients).Error; err != nil {
		log.Printf("Failed to retrieve ingredients: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	results := make([]types.IngredientResponse, 0, len(ingredients))

	for _, ingredient := range ingredients {
		results = append(results, types.IngredientResponse{
			ID:              ingredient.ID,
			Name:            ingredient.Name,
			MeasurementUnit: ingredient.MeasurementUnit,
		})
	}

	ctx.JSON(http.StatusOK, results)
}

func GetIngredient(ctx *gin.Context) {
	var ingredient models.Ingredient

	if err := db.DB.First(&ingredient, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		} else {
			log.Printf("Failed to retrieve ingredient: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	})
}
