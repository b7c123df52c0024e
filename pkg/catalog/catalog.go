// Package catalog ships the fixed 12-month editorial plan. The seed lives in
// an embedded YAML file; runtime code only ever mutates article statuses, so
// Default always hands out a fresh deep copy.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"lmp/entities"
)

//go:embed plan2026.yaml
var planYAML []byte

var seed []entities.MonthPlan

func init() {
	var doc struct {
		Months []entities.MonthPlan `yaml:"months"`
	}
	if err := yaml.Unmarshal(planYAML, &doc); err != nil {
		panic(fmt.Sprintf("catalog: bad embedded plan: %v", err))
	}
	if len(doc.Months) != 12 {
		panic(fmt.Sprintf("catalog: expected 12 months, got %d", len(doc.Months)))
	}
	for mi := range doc.Months {
		for ai := range doc.Months[mi].Articles {
			if doc.Months[mi].Articles[ai].Status == "" {
				doc.Months[mi].Articles[ai].Status = entities.StatusPending
			}
		}
	}
	seed = doc.Months
}

// Default returns the canonical plan with every article pending. The result
// is a deep copy; callers may mutate it freely.
func Default() []entities.MonthPlan {
	out := make([]entities.MonthPlan, len(seed))
	for i, m := range seed {
		cp := m
		cp.Articles = make([]entities.Article, len(m.Articles))
		copy(cp.Articles, m.Articles)
		out[i] = cp
	}
	return out
}

// Month returns the canonical record for one month id.
func Month(id int) (entities.MonthPlan, bool) {
	for _, m := range Default() {
		if m.ID == id {
			return m, true
		}
	}
	return entities.MonthPlan{}, false
}
