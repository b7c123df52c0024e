package controller

import "github.com/labstack/echo/v4"

type DraftController interface {
	Generate(c echo.Context) error
}
