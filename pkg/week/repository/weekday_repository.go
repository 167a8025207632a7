package repository

import (
	"context"
	"time"

	"mealweek/entities"
)

// WeekDayRepository stores one row per calendar day. Only the date part of
// the time arguments is used.
type WeekDayRepository interface {
	// FindByDate returns nil and no error when the day has no row.
	FindByDate(ctx context.Context, day time.Time) (*entities.WeekDay, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]entities.WeekDay, error)
	// New builds an unsaved row for day.
	New(day time.Time) *entities.WeekDay
	// Save persists d and returns the row as stored, recipe preloaded.
	Save(ctx context.Context, d *entities.WeekDay) (*entities.WeekDay, error)
	Delete(ctx context.Context, day time.Time, recipeID string) (int64, error)
}
