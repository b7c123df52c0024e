package router

import (
	"github.com/labstack/echo/v4"

	"lmp/pkg/draft/controller"
	planctrl "lmp/pkg/planner/controller"
)

func New(
	e *echo.Echo,
	planCtrl planctrl.PlannerController,
	draftCtrl controller.DraftController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")

	api.GET("/plan", planCtrl.GetPlan)
	api.GET("/plan/months/:id", planCtrl.GetMonth)
	api.GET("/stats", planCtrl.GetStats)

	api.POST("/articles/:id/cycle", planCtrl.CycleArticle)
	api.PATCH("/articles/:id/completed", planCtrl.ToggleArticle)

	api.POST("/actions", planCtrl.CreateAction)
	api.DELETE("/actions/:id", planCtrl.DeleteAction)
	api.POST("/actions/:id/cycle", planCtrl.CycleAction)
	api.PATCH("/actions/:id/completed", planCtrl.ToggleAction)

	api.POST("/reset", planCtrl.Reset)
	api.GET("/backup", planCtrl.Backup)
	api.POST("/restore", planCtrl.Restore)
	api.GET("/report.xlsx", planCtrl.ExportReport)

	api.POST("/ai/draft", draftCtrl.Generate)

	return e
}
