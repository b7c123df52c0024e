package controllerImp

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"lmp/pkg/backup"
	"lmp/pkg/planner/service"
	"lmp/pkg/report"
)

const maxRestoreBytes = 5 << 20

type PlannerCtrl struct{ svc service.PlannerService }

func New(svc service.PlannerService) *PlannerCtrl { return &PlannerCtrl{svc} }

func (h *PlannerCtrl) GetPlan(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Snapshot())
}

func (h *PlannerCtrl) GetMonth(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad month id"})
	}
	m, ok := h.svc.Month(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, m)
}

func (h *PlannerCtrl) CycleArticle(c echo.Context) error {
	h.svc.CycleArticleStatus(c.Param("id"))
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PlannerCtrl) ToggleArticle(c echo.Context) error {
	var body struct {
		Completed bool `json:"completed"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	h.svc.ToggleArticleCompleted(c.Param("id"), body.Completed)
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PlannerCtrl) CreateAction(c echo.Context) error {
	var req service.AddActionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}
	// the UI picks months from a closed list; reject anything else here
	if _, ok := h.svc.Month(req.MonthID); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown month"})
	}
	a := h.svc.AddCustomAction(req)
	return c.JSON(http.StatusCreated, a)
}

func (h *PlannerCtrl) DeleteAction(c echo.Context) error {
	// the confirmation dialog lives in the UI; this endpoint deletes
	// unconditionally
	if !h.svc.DeleteCustomAction(c.Param("id")) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PlannerCtrl) CycleAction(c echo.Context) error {
	h.svc.CycleCustomStatus(c.Param("id"))
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PlannerCtrl) ToggleAction(c echo.Context) error {
	var body struct {
		Completed bool `json:"completed"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	h.svc.ToggleCustomCompleted(c.Param("id"), body.Completed)
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PlannerCtrl) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}

func (h *PlannerCtrl) Reset(c echo.Context) error {
	if err := h.svc.ResetPlan(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PlannerCtrl) Backup(c echo.Context) error {
	data, err := backup.Export(h.svc.Snapshot())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+backup.Filename(time.Now())+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

func (h *PlannerCtrl) Restore(c echo.Context) error {
	b, err := io.ReadAll(io.LimitReader(c.Request().Body, maxRestoreBytes))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "read body: " + err.Error()})
	}
	doc, err := backup.Import(b)
	if err != nil {
		// store untouched on parse failure
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid backup file"})
	}
	h.svc.Restore(doc)
	return c.JSON(http.StatusOK, map[string]string{"status": "restored"})
}

func (h *PlannerCtrl) ExportReport(c echo.Context) error {
	f, err := report.Build(h.svc.Snapshot(), h.svc.Stats())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="relatorio_marketing_2026.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
