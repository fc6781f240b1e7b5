package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"seguros_xpto/internal/domain/entities"
)

// runManagerDecision produces the terminal decision. The ladder is evaluated
// in order, first match wins:
//  1. absent/failed validation           -> PENDING_DOCUMENTS
//  2. fraud score at or above threshold  -> ESCALATED_TO_SIU
//  3. upstream auto-approval             -> APPROVED
//  4. otherwise                          -> REJECTED
func (u *ClaimPipelineUseCase) runManagerDecision(ctx context.Context, c *entities.ClaimAggregate) error {
	// Auto-approval: validated with complete documents and scored SAFE.
	c.Approved = c.ClaimValidated && c.Validation.DocsOK && c.FraudChecked && c.FraudDecision == entities.FraudDecisionSafe

	var decision entities.FinalDecision
	var status entities.ClaimStatus
	switch {
	case !c.ClaimValidated || !c.Validation.DocsOK:
		decision = entities.DecisionPendingDocuments
		status = entities.ClaimStatusPendingDocuments
	case c.FraudScoreValue() >= u.cfg.FraudEscalationThreshold:
		decision = entities.DecisionEscalatedToSIU
		status = entities.ClaimStatusUnderInvestigation
	case c.Approved:
		decision = entities.DecisionApproved
		status = entities.ClaimStatusApproved
	default:
		decision = entities.DecisionRejected
		status = entities.ClaimStatusRejected
	}

	c.DecisionMade = true
	c.FinalDecision = decision
	c.Status = status

	entries := []string{fmt.Sprintf("[manager] final_decision=%s status=%s", decision, status)}
	c.Logs = append(c.Logs, entries...)
	log.Printf("[manager][usecase] decision transaction_id=%s final_decision=%s", c.TransactionID, decision)

	return u.claims.UpdateFields(ctx, c.TransactionID, map[string]any{
		"decision_made":  true,
		"approved":       c.Approved,
		"final_decision": decision,
		"status":         status,
		"logs":           entries,
		"updated_at":     time.Now().UTC(),
	})
}
