package serviceImp

import (
	"context"
	"fmt"
	"time"

	"mealweek/entities"
	"mealweek/pkg/clock"
	"mealweek/pkg/week/calendar"
	"mealweek/pkg/week/repository"
	"mealweek/pkg/week/service"
)

type recipeLookup interface {
	GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
}

type weekSvc struct {
	days    repository.WeekDayRepository
	recipes recipeLookup
	clock   clock.Clock
}

func NewWeekService(days repository.WeekDayRepository, recipes recipeLookup, c clock.Clock) service.WeekService {
	return &weekSvc{days: days, recipes: recipes, clock: c}
}

func (s *weekSvc) GetWeeks(ctx context.Context) ([][]service.WeekData, error) {
	today := s.clock.Now()
	mondays := []time.Time{calendar.Monday(today), calendar.NextMonday(today)}

	stored, err := s.days.ListBetween(ctx, mondays[0], mondays[1].AddDate(0, 0, calendar.DaysPerWeek-1))
	if err != nil {
		return nil, fmt.Errorf("list week days: %w", err)
	}
	byDate := make(map[string]entities.WeekDay, len(stored))
	for _, d := range stored {
		byDate[d.Date] = d
	}

	weeks := make([][]service.WeekData, 0, len(mondays))
	for _, monday := range mondays {
		days := make([]entities.WeekDay, 0, calendar.DaysPerWeek)
		for _, date := range calendar.WeekDates(monday) {
			d, ok := byDate[calendar.DayKey(date)]
			if !ok {
				// shown as empty, never persisted
				d = *s.days.New(date)
			}
			days = append(days, d)
		}
		weeks = append(weeks, ProjectToWeekView(days))
	}
	return weeks, nil
}

func (s *weekSvc) AddRecipeToWeekDay(ctx context.Context, date time.Time, recipeID string) (*entities.WeekDay, error) {
	rec, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	day, err := s.days.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("find week day: %w", err)
	}
	// an existing row is reused so a day never ends up with two entries
	if day == nil {
		day = s.days.New(calendar.Midnight(date))
	}
	day.RecipeID = &rec.ID
	day.Recipe = rec

	saved, err := s.days.Save(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("save week day: %w", err)
	}
	return saved, nil
}

func (s *weekSvc) RemoveRecipeFromWeekDay(ctx context.Context, date time.Time, recipeID string) (service.DeleteResult, error) {
	rec, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return service.DeleteResult{}, err
	}
	n, err := s.days.Delete(ctx, date, rec.ID)
	if err != nil {
		return service.DeleteResult{}, fmt.Errorf("delete week day: %w", err)
	}
	return service.DeleteResult{Affected: n}, nil
}

// ProjectToWeekView maps stored or transient days to their display form, in order.
func ProjectToWeekView(days []entities.WeekDay) []service.WeekData {
	out := make([]service.WeekData, 0, len(days))
	for i := range days {
		d := &days[i]
		wd := service.WeekData{Date: d.Date}
		if t, err := time.Parse(calendar.DayLayout, d.Date); err == nil {
			wd.Name = calendar.WeekdayName(t)
		}
		if d.HasRecipe() {
			wd.DishSelected = true
			wd.RecipeID = *d.RecipeID
		}
		out = append(out, wd)
	}
	return out
}
