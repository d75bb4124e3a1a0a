package events

import "time"

const EvaluationLifecycleTopic = "skills.evaluation.lifecycle.v1"

const (
	EvaluationRecorded = "evaluation_recorded"
	EvaluationUpdated  = "evaluation_updated"
	EvaluationDeleted  = "evaluation_deleted"
)

// EvaluationChangedEvent is published whenever an employee skill evaluation
// is created, updated, or deleted. Downstream consumers use it to refresh
// derived reporting.
type EvaluationChangedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EvaluationID string    `json:"evaluation_id"`
	EmployeeID   string    `json:"employee_id"`
	SkillID      string    `json:"skill_id"`
	CurrentLevel int       `json:"current_level,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
