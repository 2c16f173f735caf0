package models

import "gorm.io/gorm"

type Recipe struct {
	gorm.Model

	AuthorID    uint   `gorm:"not null;index"`
	Name        string `gorm:"not null;size:256"`
	Text        string `gorm:"not null"`
	Image       string `gorm:"not null"` // path under the media root
	CookingTime int    `gorm:"not null"` // minutes, always > 0

	// Relationships
	Author            User               `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	RecipeIngredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Favorites         []Favorite         `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	CartEntries       []ShoppingCart     `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
