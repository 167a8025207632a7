package repositoryImp

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mealweek/entities"
	"mealweek/pkg/week/calendar"
	"mealweek/pkg/week/repository"
)

type weekDayRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WeekDayRepository { return &weekDayRepo{db} }

func (r *weekDayRepo) FindByDate(ctx context.Context, day time.Time) (*entities.WeekDay, error) {
	return r.findByKey(ctx, calendar.DayKey(day))
}

func (r *weekDayRepo) findByKey(ctx context.Context, key string) (*entities.WeekDay, error) {
	var d entities.WeekDay
	err := r.db.WithContext(ctx).Preload("Recipe").Where("date = ?", key).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *weekDayRepo) ListBetween(ctx context.Context, from, to time.Time) ([]entities.WeekDay, error) {
	var out []entities.WeekDay
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", calendar.DayKey(from), calendar.DayKey(to)).
		Order("date ASC").
		Find(&out).Error
	return out, err
}

func (r *weekDayRepo) New(day time.Time) *entities.WeekDay {
	return &entities.WeekDay{Date: calendar.DayKey(day)}
}

func (r *weekDayRepo) Save(ctx context.Context, d *entities.WeekDay) (*entities.WeekDay, error) {
	tx := r.db.WithContext(ctx).Omit(clause.Associations)
	var err error
	if d.ID == 0 {
		// a concurrent first assignment for the same date updates the existing row
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"recipe_id", "updated_at"}),
		}).Create(d).Error
	} else {
		err = tx.Save(d).Error
	}
	if err != nil {
		return nil, err
	}

	saved, err := r.findByKey(ctx, d.Date)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return saved, nil
}

func (r *weekDayRepo) Delete(ctx context.Context, day time.Time, recipeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("date = ? AND recipe_id = ?", calendar.DayKey(day), recipeID).
		Delete(&entities.WeekDay{})
	return res.RowsAffected, res.Error
}
