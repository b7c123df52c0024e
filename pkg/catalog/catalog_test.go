package catalog

import (
	"testing"

	"lmp/entities"
)

func TestDefaultShape(t *testing.T) {
	plan := Default()
	if len(plan) != 12 {
		t.Fatalf("expected 12 months, got %d", len(plan))
	}
	seen := map[string]bool{}
	for i, m := range plan {
		if m.ID != i {
			t.Errorf("month %d has id %d", i, m.ID)
		}
		if m.Month == "" || m.Focus == "" || m.Strategy == "" {
			t.Errorf("month %d has empty metadata", i)
		}
		if len(m.Articles) == 0 {
			t.Errorf("month %d has no articles", i)
		}
		for _, a := range m.Articles {
			if seen[a.ID] {
				t.Errorf("duplicate article id %q", a.ID)
			}
			seen[a.ID] = true
			if a.Status != entities.StatusPending {
				t.Errorf("article %q starts as %q, want pending", a.ID, a.Status)
			}
		}
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a[0].Articles[0].Status = entities.StatusCompleted
	a[0].Focus = "changed"

	b := Default()
	if b[0].Articles[0].Status != entities.StatusPending {
		t.Error("mutating one copy leaked into the seed")
	}
	if b[0].Focus == "changed" {
		t.Error("month metadata is shared between copies")
	}
}

func TestMonth(t *testing.T) {
	m, ok := Month(4)
	if !ok || m.Month != "Maio" {
		t.Fatalf("Month(4) = %+v, %v", m, ok)
	}
	if _, ok := Month(12); ok {
		t.Error("Month(12) should not exist")
	}
}
