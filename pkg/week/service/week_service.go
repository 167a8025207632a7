package service

import (
	"context"
	"time"

	"mealweek/entities"
)

// WeekData is the display form of one day.
type WeekData struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	DishSelected bool   `json:"dishSelected"`
	ShoppingList bool   `json:"shoppingList"`
	RecipeID     string `json:"recipeId,omitempty"`
}

type DeleteResult struct {
	Affected int64 `json:"affected"`
}

type WeekService interface {
	// GetWeeks returns the current and the next Monday..Sunday week.
	GetWeeks(ctx context.Context) ([][]WeekData, error)
	AddRecipeToWeekDay(ctx context.Context, date time.Time, recipeID string) (*entities.WeekDay, error)
	RemoveRecipeFromWeekDay(ctx context.Context, date time.Time, recipeID string) (DeleteResult, error)
}
