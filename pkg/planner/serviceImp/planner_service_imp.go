package serviceImp

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"lmp/entities"
	"lmp/pkg/catalog"
	"lmp/pkg/planner/service"
	"lmp/pkg/state/repository"
	"lmp/pkg/status"
)

// StorageKeys names the document slot plus the deprecated slots still
// consulted as a read fallback after version bumps.
type StorageKeys struct {
	Current string
	Legacy  []string
}

func DefaultKeys() StorageKeys {
	return StorageKeys{
		Current: "legal_planner_2026_core_v5",
		Legacy: []string{
			"legal_planner_2026_core_v4",
			"legal_planner_2026_core_data",
			"legal_marketing_planner_2026",
		},
	}
}

type PlannerSvc struct {
	mu      sync.Mutex
	repo    repository.StateRepository
	keys    StorageKeys
	plan    []entities.MonthPlan
	actions []entities.CustomAction
	saver   *saver
}

// New loads persisted state (current key first, then legacy keys, first
// non-empty hit wins), reconciles it against the catalog, and arms the
// debounced writer.
func New(repo repository.StateRepository, keys StorageKeys, debounce time.Duration) *PlannerSvc {
	s := &PlannerSvc{repo: repo, keys: keys}
	s.saver = newSaver(debounce, s.persist)
	s.load()
	return s
}

func (s *PlannerSvc) load() {
	plan := catalog.Default()
	actions := []entities.CustomAction{}

	if raw, ok := s.lookup(); ok {
		var doc entities.PlanDocument
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			log.Printf("[planner] stored state unreadable, falling back to defaults: %v", err)
		} else {
			if doc.Plan != nil {
				plan = Reconcile(plan, doc.Plan)
			}
			if doc.CustomActions != nil {
				actions = doc.CustomActions
			}
		}
	}

	s.plan = plan
	s.actions = actions
}

func (s *PlannerSvc) lookup() (string, bool) {
	for _, k := range append([]string{s.keys.Current}, s.keys.Legacy...) {
		v, found, err := s.repo.Get(k)
		if err != nil {
			log.Printf("[planner] read %q: %v", k, err)
			continue
		}
		if found && v != "" {
			return v, true
		}
	}
	return "", false
}

// Reconcile rebuilds the month list from the canonical catalog order: a
// stored month with a matching id wins (it carries the user's statuses), a
// missing one falls back to the canonical record. The result always has
// exactly the canonical months, even against data from an older catalog.
func Reconcile(canonical, stored []entities.MonthPlan) []entities.MonthPlan {
	out := make([]entities.MonthPlan, 0, len(canonical))
	for _, m := range canonical {
		merged := m
		for _, sm := range stored {
			if sm.ID == m.ID {
				merged = sm
				break
			}
		}
		out = append(out, merged)
	}
	return out
}

func (s *PlannerSvc) Snapshot() entities.PlanDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *PlannerSvc) snapshotLocked() entities.PlanDocument {
	plan := make([]entities.MonthPlan, len(s.plan))
	for i, m := range s.plan {
		cp := m
		cp.Articles = make([]entities.Article, len(m.Articles))
		copy(cp.Articles, m.Articles)
		plan[i] = cp
	}
	actions := make([]entities.CustomAction, len(s.actions))
	copy(actions, s.actions)
	return entities.PlanDocument{Plan: plan, CustomActions: actions}
}

func (s *PlannerSvc) Month(id int) (entities.MonthPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.plan {
		if m.ID == id {
			cp := m
			cp.Articles = make([]entities.Article, len(m.Articles))
			copy(cp.Articles, m.Articles)
			return cp, true
		}
	}
	return entities.MonthPlan{}, false
}

func (s *PlannerSvc) CycleArticleStatus(articleID string) {
	s.mutateArticle(articleID, status.Next)
}

func (s *PlannerSvc) ToggleArticleCompleted(articleID string, checked bool) {
	s.mutateArticle(articleID, func(cur entities.ContentStatus) entities.ContentStatus {
		return status.SetCompleted(cur, checked)
	})
}

func (s *PlannerSvc) mutateArticle(articleID string, next func(entities.ContentStatus) entities.ContentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for mi := range s.plan {
		for ai := range s.plan[mi].Articles {
			if s.plan[mi].Articles[ai].ID == articleID {
				s.plan[mi].Articles[ai].Status = next(s.plan[mi].Articles[ai].Status)
				s.saver.Schedule()
				return
			}
		}
	}
	// unknown id: no-op
}

func (s *PlannerSvc) CycleCustomStatus(id string) {
	s.mutateCustom(id, status.Next)
}

func (s *PlannerSvc) ToggleCustomCompleted(id string, checked bool) {
	s.mutateCustom(id, func(cur entities.ContentStatus) entities.ContentStatus {
		return status.SetCompleted(cur, checked)
	})
}

func (s *PlannerSvc) mutateCustom(id string, next func(entities.ContentStatus) entities.ContentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.actions {
		if s.actions[i].ID == id {
			s.actions[i].Status = next(s.actions[i].Status)
			s.saver.Schedule()
			return
		}
	}
}

func (s *PlannerSvc) AddCustomAction(in service.AddActionInput) entities.CustomAction {
	a := entities.CustomAction{
		// random UUID instead of a clock-derived id: two adds in the same
		// tick must not collide
		ID:      "cust-" + uuid.NewString(),
		MonthID: in.MonthID,
		Title:   in.Title,
		Type:    in.Type,
		Channel: in.Channel,
		Status:  entities.StatusPending,
	}
	if a.Type == "" {
		a.Type = "Post"
	}
	if a.Channel == "" {
		a.Channel = "Instagram"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, a)
	s.saver.Schedule()
	return a
}

func (s *PlannerSvc) DeleteCustomAction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.actions[:0]
	removed := false
	for _, a := range s.actions {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	s.actions = kept
	if removed {
		s.saver.Schedule()
	}
	return removed
}

func (s *PlannerSvc) ResetPlan() error {
	// drop any queued write first so it cannot resurrect the cleared state
	s.saver.Cancel()

	keys := append([]string{s.keys.Current}, s.keys.Legacy...)
	if err := s.repo.Delete(keys...); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = catalog.Default()
	s.actions = []entities.CustomAction{}
	return nil
}

func (s *PlannerSvc) Restore(doc entities.PlanDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.Plan != nil {
		s.plan = doc.Plan
	}
	if doc.CustomActions != nil {
		s.actions = doc.CustomActions
	}
	s.saver.Schedule()
}

func (s *PlannerSvc) Stats() service.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	var st service.Stats
	for _, m := range s.plan {
		for _, a := range m.Articles {
			st.Total++
			if a.Status == entities.StatusCompleted {
				st.Done++
			}
		}
	}
	for _, a := range s.actions {
		st.Total++
		if a.Status == entities.StatusCompleted {
			st.Done++
		}
	}
	if st.Total > 0 {
		st.Percent = 100 * float64(st.Done) / float64(st.Total)
	}
	return st
}

func (s *PlannerSvc) Flush() { s.saver.Flush() }

// persist always serializes the state current at fire time.
func (s *PlannerSvc) persist() {
	s.mu.Lock()
	doc := s.snapshotLocked()
	s.mu.Unlock()

	b, err := json.Marshal(doc)
	if err != nil {
		log.Printf("[planner] marshal state: %v", err)
		return
	}
	if err := s.repo.Put(s.keys.Current, string(b)); err != nil {
		log.Printf("[planner] save failed: %v", err)
	}
}
