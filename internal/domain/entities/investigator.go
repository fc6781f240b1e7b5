package entities

// InvestigatorStatus marks whether an investigator can take new cases.

type InvestigatorStatus string

const (
	InvestigatorStatusActive   InvestigatorStatus = "ACTIVE"
	InvestigatorStatusInactive InvestigatorStatus = "INACTIVE"
)

// InvestigatorRecord is one capacity-bounded investigator.
//
// Storage model (DynamoDB):
//   - PK: investigator_id
//
// Invariant: 0 <= ActiveCases, and a reservation never pushes ActiveCases
// above MaxCases. The repository enforces this with a conditional update, not
// a read-then-write.
type InvestigatorRecord struct {
	InvestigatorID string             `json:"investigator_id"`
	Name           string             `json:"name"`
	Specialization string             `json:"specialization"`
	ActiveCases    int                `json:"active_cases"`
	MaxCases       int                `json:"max_cases"`
	Status         InvestigatorStatus `json:"status"`
}

// HasCapacity reports whether the record is eligible for a new assignment.
func (r InvestigatorRecord) HasCapacity() bool {
	return r.Status == InvestigatorStatusActive && r.ActiveCases < r.MaxCases
}
