package repositoryImp

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mealweek/database"
	"mealweek/entities"
)

func TestSaveNewRowForTakenDateUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "days.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	for _, r := range []*entities.Recipe{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}} {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("create recipe: %v", err)
		}
	}
	repo := New(db)
	d := time.Date(2024, 1, 4, 19, 0, 0, 0, time.UTC)

	first := repo.New(d)
	a := "a"
	first.RecipeID = &a
	s1, err := repo.Save(ctx, first)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	// a second writer that looked up the date before the first row existed
	second := repo.New(d)
	b := "b"
	second.RecipeID = &b
	s2, err := repo.Save(ctx, second)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	var n int64
	if err := db.Model(&entities.WeekDay{}).Where("date = ?", "2024-01-04").Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one row for the date, got %d", n)
	}
	if s1.ID != s2.ID {
		t.Errorf("expected the same row, got ids %d and %d", s1.ID, s2.ID)
	}
	if s2.RecipeID == nil || *s2.RecipeID != "b" {
		t.Errorf("recipe id = %v, want b", s2.RecipeID)
	}
	if s2.Recipe == nil || s2.Recipe.Title != "B" {
		t.Errorf("preloaded recipe = %+v, want B", s2.Recipe)
	}
}

func TestDeleteMatchesDateAndRecipe(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "days.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	repo := New(db)
	d := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	day := repo.New(d)
	id := "a"
	day.RecipeID = &id
	if _, err := repo.Save(ctx, day); err != nil {
		t.Fatalf("save: %v", err)
	}

	if n, err := repo.Delete(ctx, d, "b"); err != nil || n != 0 {
		t.Errorf("delete other recipe = (%d, %v), want (0, nil)", n, err)
	}
	if n, err := repo.Delete(ctx, d.Add(15*time.Hour), "a"); err != nil || n != 1 {
		t.Errorf("delete = (%d, %v), want (1, nil)", n, err)
	}
	if got, err := repo.FindByDate(ctx, d); err != nil || got != nil {
		t.Errorf("FindByDate after delete = (%+v, %v)", got, err)
	}
}
