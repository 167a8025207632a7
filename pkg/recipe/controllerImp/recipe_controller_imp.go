package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealweek/pkg/errs"
	"mealweek/pkg/recipe/controller"
	"mealweek/pkg/recipe/service"
	"mealweek/pkg/validation"
)

type recipeCtrl struct{ s service.RecipeService }

func New(s service.RecipeService) controller.RecipeController { return &recipeCtrl{s} }

type createReq struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

func (h *recipeCtrl) Create(c echo.Context) error {
	var req createReq
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}
	rec, err := h.s.CreateRecipe(c.Request().Context(), req.Title, req.Description)
	if err != nil {
		return errs.FromError(err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *recipeCtrl) Get(c echo.Context) error {
	rec, err := h.s.GetRecipeByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errs.FromError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *recipeCtrl) List(c echo.Context) error {
	out, err := h.s.ListRecipes(c.Request().Context())
	if err != nil {
		return errs.FromError(err)
	}
	return c.JSON(http.StatusOK, out)
}
