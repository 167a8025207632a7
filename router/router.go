package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	weekCtrl interface {
		List(echo.Context) error
		AddRecipe(echo.Context) error
		RemoveRecipe(echo.Context) error
		Export(echo.Context) error
	},
	recipeCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	w := e.Group("/week")
	w.GET("", weekCtrl.List)
	w.GET("/export", weekCtrl.Export)
	w.POST("/:date", weekCtrl.AddRecipe)
	w.DELETE("/:date/:recipeId", weekCtrl.RemoveRecipe)

	r := e.Group("/recipes")
	r.GET("", recipeCtrl.List)
	r.POST("", recipeCtrl.Create)
	r.GET("/:id", recipeCtrl.Get)
	return e
}
