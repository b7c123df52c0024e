package entities

import "time"

// StateDocument is one row of the local key/value store: the whole plan
// document serialized under a storage key.
type StateDocument struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Value     string `json:"value"`
	UpdatedAt time.Time
}
