package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"mealweek/entities"
	"mealweek/pkg/errs"
	repo "mealweek/pkg/recipe/repository"
	"mealweek/pkg/recipe/service"
)

type recipeSvc struct{ r repo.RecipeRepository }

func NewRecipeService(r repo.RecipeRepository) service.RecipeService { return &recipeSvc{r} }

func (s *recipeSvc) CreateRecipe(ctx context.Context, title, description string) (*entities.Recipe, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrValidation)
	}
	rec := &entities.Recipe{Title: title, Description: strings.TrimSpace(description)}
	if err := s.r.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recipeSvc) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("recipe with empty id: %w", errs.ErrNotFound)
	}
	return s.r.FindByID(ctx, id)
}

func (s *recipeSvc) ListRecipes(ctx context.Context) ([]entities.Recipe, error) {
	return s.r.List(ctx)
}
