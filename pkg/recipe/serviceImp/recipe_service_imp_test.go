package serviceImp

import (
	"context"
	"errors"
	"testing"

	"mealweek/entities"
	"mealweek/pkg/errs"
)

type memRepo struct {
	byID map[string]entities.Recipe
}

func (m *memRepo) Create(ctx context.Context, r *entities.Recipe) error {
	if r.ID == "" {
		r.ID = "id-" + r.Title
	}
	m.byID[r.ID] = *r
	return nil
}

func (m *memRepo) FindByID(ctx context.Context, id string) (*entities.Recipe, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &r, nil
}

func (m *memRepo) List(ctx context.Context) ([]entities.Recipe, error) {
	out := make([]entities.Recipe, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, r)
	}
	return out, nil
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeService(&memRepo{byID: map[string]entities.Recipe{}})

	t.Run("trims input", func(t *testing.T) {
		rec, err := s.CreateRecipe(ctx, "  Rouladen ", " mit Rotkohl ")
		if err != nil {
			t.Fatalf("CreateRecipe: %v", err)
		}
		if rec.Title != "Rouladen" || rec.Description != "mit Rotkohl" {
			t.Errorf("got %+v", rec)
		}
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := s.CreateRecipe(ctx, "   ", "")
		if !errors.Is(err, errs.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestGetRecipeByID(t *testing.T) {
	ctx := context.Background()
	s := NewRecipeService(&memRepo{byID: map[string]entities.Recipe{"r1": {ID: "r1", Title: "Maultaschen"}}})

	rec, err := s.GetRecipeByID(ctx, "r1")
	if err != nil || rec.Title != "Maultaschen" {
		t.Fatalf("GetRecipeByID = %+v, %v", rec, err)
	}
	for _, id := range []string{"", "  ", "r2"} {
		if _, err := s.GetRecipeByID(ctx, id); !errors.Is(err, errs.ErrNotFound) {
			t.Errorf("GetRecipeByID(%q): expected ErrNotFound, got %v", id, err)
		}
	}
}
