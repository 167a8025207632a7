package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mealweek/entities"
	"mealweek/pkg/errs"
	"mealweek/pkg/recipe/repository"
)

type recipeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecipeRepository { return &recipeRepo{db} }

func (r *recipeRepo) Create(ctx context.Context, rec *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recipeRepo) FindByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var rec entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe %s: %w", id, errs.ErrNotFound)
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recipeRepo) List(ctx context.Context) ([]entities.Recipe, error) {
	var out []entities.Recipe
	return out, r.db.WithContext(ctx).Order("title ASC").Find(&out).Error
}
