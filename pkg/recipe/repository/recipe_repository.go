package repository

import (
	"context"

	"mealweek/entities"
)

type RecipeRepository interface {
	Create(ctx context.Context, r *entities.Recipe) error
	FindByID(ctx context.Context, id string) (*entities.Recipe, error)
	List(ctx context.Context) ([]entities.Recipe, error)
}
