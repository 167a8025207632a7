package service

import (
	"context"

	"mealweek/entities"
)

// RecipeService owns the recipe catalogue. GetRecipeByID fails with
// errs.ErrNotFound for unknown ids.
type RecipeService interface {
	CreateRecipe(ctx context.Context, title, description string) (*entities.Recipe, error)
	GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
	ListRecipes(ctx context.Context) ([]entities.Recipe, error)
}
