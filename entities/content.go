package entities

// ContentStatus is the tri-state progress marker shared by articles and
// custom actions: pending -> draft -> completed.
type ContentStatus string

const (
	StatusPending   ContentStatus = "pending"
	StatusDraft     ContentStatus = "draft"
	StatusCompleted ContentStatus = "completed"
)

type Article struct {
	ID       string        `json:"id" yaml:"id"`
	Category string        `json:"category" yaml:"category"`
	Title    string        `json:"title" yaml:"title"`
	Keyword  string        `json:"keyword" yaml:"keyword"`
	Intent   string        `json:"intent" yaml:"intent"`
	Status   ContentStatus `json:"status" yaml:"status"`
}

type MonthPlan struct {
	ID       int       `json:"id" yaml:"id"`
	Month    string    `json:"month" yaml:"month"`
	Focus    string    `json:"focus" yaml:"focus"`
	Strategy string    `json:"strategy" yaml:"strategy"`
	Articles []Article `json:"articles" yaml:"articles"`
}

// CustomAction is a user-added activity attached to one month. Unlike
// catalog articles it can be deleted.
type CustomAction struct {
	ID      string        `json:"id"`
	MonthID int           `json:"monthId"`
	Title   string        `json:"title"`
	Type    string        `json:"type"`
	Channel string        `json:"channel"`
	Status  ContentStatus `json:"status"`
}

// PlanDocument is the persisted document shape; it doubles as the backup
// file format.
type PlanDocument struct {
	Plan          []MonthPlan    `json:"plan"`
	CustomActions []CustomAction `json:"customActions"`
}
