package models

import "gorm.io/gorm"

// RecipeIngredient binds one ingredient with its amount to a recipe.
// At most one row may exist per (recipe, ingredient) pair.
type RecipeIngredient struct {
	gorm.Model

	RecipeID     uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	Amount       int  `gorm:"not null"` // always > 0

	// Relationships
	Recipe     Recipe     `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
