// Package status holds the content status machine.
package status

import "lmp/entities"

// Next advances the cycle: pending -> draft -> completed -> pending.
// Unknown values are treated as completed and wrap back to pending.
func Next(cur entities.ContentStatus) entities.ContentStatus {
	switch cur {
	case entities.StatusPending:
		return entities.StatusDraft
	case entities.StatusDraft:
		return entities.StatusCompleted
	default:
		return entities.StatusPending
	}
}

// SetCompleted maps the completion checkbox onto a status. Unchecking always
// lands on pending, never back on draft.
func SetCompleted(cur entities.ContentStatus, checked bool) entities.ContentStatus {
	if checked {
		return entities.StatusCompleted
	}
	return entities.StatusPending
}

func Valid(s entities.ContentStatus) bool {
	switch s {
	case entities.StatusPending, entities.StatusDraft, entities.StatusCompleted:
		return true
	}
	return false
}

// Label is the display name used on report surfaces.
func Label(s entities.ContentStatus) string {
	switch s {
	case entities.StatusCompleted:
		return "Finalizado"
	case entities.StatusDraft:
		return "Em Escrita"
	default:
		return "A Fazer"
	}
}
