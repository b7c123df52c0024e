// Package backup serializes the plan document to a human-readable file and
// parses it back. Import is deliberately loose: whatever top-level keys the
// file carries replace the store wholesale, with no catalog reconciliation.
package backup

import (
	"encoding/json"
	"time"

	"lmp/entities"
)

const filenamePrefix = "backup_marketing_2026_"

func Export(doc entities.PlanDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func Import(b []byte) (entities.PlanDocument, error) {
	var doc entities.PlanDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return entities.PlanDocument{}, err
	}
	return doc, nil
}

// Filename embeds the calendar date of the export.
func Filename(now time.Time) string {
	return filenamePrefix + now.Format("2006-01-02") + ".json"
}
