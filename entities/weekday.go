package entities

import "time"

// WeekDay links one calendar day to at most one recipe.
type WeekDay struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"uniqueIndex;size:10;not null" json:"date"` // YYYY-MM-DD
	RecipeID  *string   `gorm:"size:36;index" json:"recipe_id,omitempty"`
	Recipe    *Recipe   `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasRecipe reports whether a recipe is linked to the day.
func (d *WeekDay) HasRecipe() bool {
	return d.RecipeID != nil && *d.RecipeID != ""
}
