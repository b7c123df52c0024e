package service

import "lmp/entities"

// AddActionInput carries the add-action form. Type and Channel fall back to
// "Post"/"Instagram" when empty.
type AddActionInput struct {
	MonthID int    `json:"monthId"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Channel string `json:"channel"`
}

type Stats struct {
	Total   int     `json:"total"`
	Done    int     `json:"done"`
	Percent float64 `json:"percent"`
}

// PlannerService owns the in-memory plan store and writes it through to the
// state repository (debounced). Status mutations on unknown ids are silent
// no-ops; ids are normally picked from existing records.
type PlannerService interface {
	Snapshot() entities.PlanDocument
	Month(id int) (entities.MonthPlan, bool)

	CycleArticleStatus(articleID string)
	ToggleArticleCompleted(articleID string, checked bool)
	CycleCustomStatus(id string)
	ToggleCustomCompleted(id string, checked bool)

	AddCustomAction(in AddActionInput) entities.CustomAction
	DeleteCustomAction(id string) bool

	// ResetPlan drops all persisted keys (current and legacy) and restores
	// the catalog defaults. Irreversible.
	ResetPlan() error

	// Restore replaces plan and custom actions wholesale with whatever the
	// backup document carries. No reconciliation is applied on this path.
	Restore(doc entities.PlanDocument)

	Stats() Stats

	// Flush writes any pending debounced save immediately.
	Flush()
}
