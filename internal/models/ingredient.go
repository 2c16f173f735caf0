package models

import "gorm.io/gorm"

// Ingredient is a shared catalog entry loaded once by the bulk loader.
// Rows are never mutated at runtime.
type Ingredient struct {
	gorm.Model

	Name            string `gorm:"not null;size:128;index"`
	MeasurementUnit string `gorm:"not null;size:64"`
}
