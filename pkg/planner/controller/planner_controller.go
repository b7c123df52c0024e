package controller

import "github.com/labstack/echo/v4"

type PlannerController interface {
	GetPlan(c echo.Context) error
	GetMonth(c echo.Context) error
	CycleArticle(c echo.Context) error
	ToggleArticle(c echo.Context) error
	CreateAction(c echo.Context) error
	DeleteAction(c echo.Context) error
	CycleAction(c echo.Context) error
	ToggleAction(c echo.Context) error
	GetStats(c echo.Context) error
	Reset(c echo.Context) error
	Backup(c echo.Context) error
	Restore(c echo.Context) error
	ExportReport(c echo.Context) error
}
