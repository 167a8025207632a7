package controllerImp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"mealweek/entities"
	"mealweek/pkg/errs"
	"mealweek/pkg/validation"
	"mealweek/pkg/week/calendar"
	"mealweek/pkg/week/controller"
	"mealweek/pkg/week/export"
	"mealweek/pkg/week/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type recipeLookup interface {
	GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
}

type weekCtrl struct {
	s       service.WeekService
	recipes recipeLookup
	loc     *time.Location
}

// New builds the week controller; dates in URLs are read in loc.
func New(s service.WeekService, recipes recipeLookup, loc *time.Location) controller.WeekController {
	if loc == nil {
		loc = time.Local
	}
	return &weekCtrl{s: s, recipes: recipes, loc: loc}
}

type addRecipeReq struct {
	RecipeID string `json:"recipeId" validate:"required"`
}

// dayResp uses the same key style as the week view.
type dayResp struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	DishSelected bool   `json:"dishSelected"`
	RecipeID     string `json:"recipeId,omitempty"`
	RecipeTitle  string `json:"recipeTitle,omitempty"`
}

func toDayResp(d *entities.WeekDay) dayResp {
	out := dayResp{ID: d.ID, Date: d.Date, DishSelected: d.HasRecipe()}
	if out.DishSelected {
		out.RecipeID = *d.RecipeID
	}
	if d.Recipe != nil {
		out.RecipeTitle = d.Recipe.Title
	}
	return out
}

func (h *weekCtrl) List(c echo.Context) error {
	weeks, err := h.s.GetWeeks(c.Request().Context())
	if err != nil {
		return errs.FromError(err)
	}
	return c.JSON(http.StatusOK, weeks)
}

func (h *weekCtrl) AddRecipe(c echo.Context) error {
	date, err := h.parseDate(c)
	if err != nil {
		return err
	}
	var req addRecipeReq
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}
	day, err := h.s.AddRecipeToWeekDay(c.Request().Context(), date, req.RecipeID)
	if err != nil {
		return errs.FromError(err)
	}
	return c.JSON(http.StatusCreated, toDayResp(day))
}

func (h *weekCtrl) RemoveRecipe(c echo.Context) error {
	date, err := h.parseDate(c)
	if err != nil {
		return err
	}
	res, err := h.s.RemoveRecipeFromWeekDay(c.Request().Context(), date, c.Param("recipeId"))
	if err != nil {
		return errs.FromError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *weekCtrl) Export(c echo.Context) error {
	ctx := c.Request().Context()
	weeks, err := h.s.GetWeeks(ctx)
	if err != nil {
		return errs.FromError(err)
	}

	titles := map[string]string{}
	for _, week := range weeks {
		for _, d := range week {
			if !d.DishSelected {
				continue
			}
			if _, ok := titles[d.RecipeID]; ok {
				continue
			}
			rec, err := h.recipes.GetRecipeByID(ctx, d.RecipeID)
			if errors.Is(err, errs.ErrNotFound) {
				// recipe vanished from the catalogue, export shows the id
				continue
			}
			if err != nil {
				return errs.FromError(err)
			}
			titles[d.RecipeID] = rec.Title
		}
	}

	var buf bytes.Buffer
	if err := export.WriteWeeks(&buf, weeks, titles); err != nil {
		return errs.FromError(fmt.Errorf("write xlsx: %w", err))
	}
	name := fmt.Sprintf("wochenplan-%s.xlsx", weeks[0][0].Date)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *weekCtrl) parseDate(c echo.Context) (time.Time, error) {
	date, err := calendar.ParseDay(c.Param("date"), h.loc)
	if err != nil {
		return time.Time{}, errs.NewBadRequest("date must be YYYY-MM-DD")
	}
	return date, nil
}
