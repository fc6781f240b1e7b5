package entities

import "time"

// ClaimStatus is the customer-visible status persisted with the claim.
//
// Domain notes:
//   - The claims-service is the source of truth for claim state.
//   - Status mirrors the final decision once the manager stage runs, except
//     ESCALATED_TO_SIU which surfaces as UNDER_INVESTIGATION.

type ClaimStatus string

const (
	ClaimStatusRegistered         ClaimStatus = "REGISTERED"
	ClaimStatusApproved           ClaimStatus = "APPROVED"
	ClaimStatusRejected           ClaimStatus = "REJECTED"
	ClaimStatusPendingDocuments   ClaimStatus = "PENDING_DOCUMENTS"
	ClaimStatusUnderInvestigation ClaimStatus = "UNDER_INVESTIGATION"
	ClaimStatusPaid               ClaimStatus = "PAID"
	ClaimStatusClosed             ClaimStatus = "CLOSED"
)

// FinalDecision is the terminal outcome produced by the manager stage or by a
// manual override.

type FinalDecision string

const (
	DecisionApproved         FinalDecision = "APPROVED"
	DecisionRejected         FinalDecision = "REJECTED"
	DecisionPendingDocuments FinalDecision = "PENDING_DOCUMENTS"
	DecisionEscalatedToSIU   FinalDecision = "ESCALATED_TO_SIU"
	DecisionUnderReview      FinalDecision = "UNDER_REVIEW"
)

// FraudDecision is the sanitized verdict of the fraud scoring stage.

type FraudDecision string

const (
	FraudDecisionSafe    FraudDecision = "SAFE"
	FraudDecisionSuspect FraudDecision = "SUSPECT"
)

// DocumentRecord is one uploaded claim document. Text extraction (OCR) happens
// upstream of this service; ExtractedText arrives already populated.
type DocumentRecord struct {
	Filename      string `json:"filename"`
	ContentType   string `json:"content_type"`
	SizeBytes     int64  `json:"size_bytes"`
	DocType       string `json:"doc_type,omitempty"`
	ExtractedText string `json:"extracted_text,omitempty"`
}

// ValidationResult is the outcome of the document validation stage.
type ValidationResult struct {
	RequiredMissing []string `json:"required_missing"`
	Warnings        []string `json:"warnings"`
	Errors          []string `json:"errors"`
	DocsOK          bool     `json:"docs_ok"`
}

// Assignment records the investigator reserved for an escalated claim.
type Assignment struct {
	InvestigatorID string    `json:"investigator_id,omitempty"`
	SLADays        int       `json:"sla_days,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	AssignedAt     time.Time `json:"assigned_at,omitempty"`
}

// ClaimAggregate is the full record of one insurance claim as it moves
// through the pipeline.
//
// Storage model (DynamoDB):
//   - claims table, PK: transaction_id
//   - claim_documents table, PK: transaction_id, SK: seq
//
// Lifecycle flags are monotonic: each is set exactly once on the forward path
// and the pipeline recomputes its next stage from them, so a run abandoned
// between stages can always be resumed.
type ClaimAggregate struct {
	TransactionID string `json:"transaction_id"`
	ClaimID       string `json:"claim_id"`
	CustomerName  string `json:"customer_name"`
	PolicyNumber  string `json:"policy_number"`

	Amount        float64 `json:"amount"`
	ClaimType     string  `json:"claim_type"`
	ExtractedText string  `json:"extracted_text,omitempty"`

	Documents []DocumentRecord `json:"documents,omitempty"`

	Validation ValidationResult `json:"validation"`

	ClaimRegistered bool      `json:"claim_registered"`
	RegisteredAt    time.Time `json:"registered_at,omitempty"`

	ClaimValidated bool `json:"claim_validated"`

	FraudChecked  bool          `json:"fraud_checked"`
	FraudScore    *float64      `json:"fraud_score,omitempty"`
	FraudDecision FraudDecision `json:"fraud_decision,omitempty"`

	// AssignmentDone marks that the assignment stage ran, whether or not an
	// investigator was actually reserved.
	AssignmentDone bool       `json:"assignment_done"`
	Assignment     Assignment `json:"assignment"`

	DecisionMade bool `json:"decision_made"`
	Approved     bool `json:"approved"`

	PaymentProcessed bool `json:"payment_processed"`
	ClaimClosed      bool `json:"claim_closed"`

	FinalDecision  FinalDecision `json:"final_decision,omitempty"`
	Status         ClaimStatus   `json:"status,omitempty"`
	ManagerComment string        `json:"manager_comment,omitempty"`

	UpdatedAt time.Time `json:"updated_at,omitempty"`

	// Logs is the append-only audit trail; entries are never reordered or
	// truncated.
	Logs []string `json:"logs,omitempty"`
}

// AppendLog adds one audit entry.
func (c *ClaimAggregate) AppendLog(entry string) {
	c.Logs = append(c.Logs, entry)
}

// FraudScoreValue returns the fraud score or 0 when unset.
func (c *ClaimAggregate) FraudScoreValue() float64 {
	if c.FraudScore == nil {
		return 0
	}
	return *c.FraudScore
}

// IsValidOverrideDecision reports whether d is accepted by the manual
// override operation. UNDER_REVIEW and ESCALATED_TO_SIU are pipeline-only.
func IsValidOverrideDecision(d FinalDecision) bool {
	switch d {
	case DecisionApproved, DecisionRejected, DecisionPendingDocuments:
		return true
	}
	return false
}
