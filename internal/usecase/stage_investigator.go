package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"seguros_xpto/internal/domain/entities"
)

const assignmentReason = "High fraud risk"

// runInvestigatorAssignment reserves the least-loaded eligible investigator
// for an escalated claim. Selection and load increment are one atomic
// operation inside the pool. "No eligible investigator" is not a failure: the
// claim proceeds unassigned and the outcome is audited.
func (u *ClaimPipelineUseCase) runInvestigatorAssignment(ctx context.Context, c *entities.ClaimAggregate) error {
	var entries []string

	switch {
	case !c.FraudChecked:
		entries = append(entries, "[investigator] fraud not checked; no escalation")
	case !shouldEscalate(*c, u.cfg):
		entries = append(entries, "[investigator] no escalation required")
	default:
		rec, err := u.pool.SelectAndReserve(ctx, c.ClaimType)
		if err != nil {
			// Flags were not advanced; re-running the pipeline retries here.
			return fmt.Errorf("investigator reservation failed: %w", err)
		}
		if rec.InvestigatorID == "" {
			entries = append(entries, "[investigator] no available investigator")
			break
		}
		c.Assignment = entities.Assignment{
			InvestigatorID: rec.InvestigatorID,
			SLADays:        u.cfg.AssignmentSLADays,
			Reason:         assignmentReason,
			AssignedAt:     time.Now().UTC(),
		}
		entries = append(entries, fmt.Sprintf("[investigator] assigned %s sla_days=%d", rec.InvestigatorID, u.cfg.AssignmentSLADays))
		log.Printf("[investigator][usecase] assigned transaction_id=%s investigator_id=%s active_cases=%d/%d",
			c.TransactionID, rec.InvestigatorID, rec.ActiveCases, rec.MaxCases)
	}

	c.AssignmentDone = true
	c.Logs = append(c.Logs, entries...)

	return u.claims.UpdateFields(ctx, c.TransactionID, map[string]any{
		"assignment_done": true,
		"assignment":      c.Assignment,
		"logs":            entries,
		"updated_at":      time.Now().UTC(),
	})
}
