package controller

import "github.com/labstack/echo/v4"

type WeekController interface {
	List(c echo.Context) error
	AddRecipe(c echo.Context) error
	RemoveRecipe(c echo.Context) error
	Export(c echo.Context) error
}
