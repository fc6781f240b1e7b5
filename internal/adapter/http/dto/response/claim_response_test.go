package response

import (
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"
)

func TestFromClaim(t *testing.T) {
	score := 0.85
	assignedAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	claim := entities.ClaimAggregate{
		TransactionID: "tx-1",
		ClaimID:       "CLM-1",
		CustomerName:  "Ana Souza",
		PolicyNumber:  "POL-77",
		Amount:        500_000,
		ClaimType:     "motor",
		Validation: entities.ValidationResult{
			RequiredMissing: []string{},
			Warnings:        []string{"low resolution scan"},
			Errors:          []string{},
			DocsOK:          true,
		},
		FraudScore:    &score,
		FraudDecision: entities.FraudDecisionSuspect,
		Assignment: entities.Assignment{
			InvestigatorID: "INV001",
			SLADays:        7,
			Reason:         "High fraud risk",
			AssignedAt:     assignedAt,
		},
		FinalDecision: entities.DecisionEscalatedToSIU,
		Status:        entities.ClaimStatusUnderInvestigation,
		Logs:          []string{"[registration] registered tx=tx-1"},
	}

	got := FromClaim(claim)
	if got.TransactionID != "tx-1" || got.ClaimID != "CLM-1" {
		t.Fatalf("identity fields not mapped: %+v", got)
	}
	if got.FraudScore == nil || *got.FraudScore != 0.85 {
		t.Fatalf("fraud score not mapped: %v", got.FraudScore)
	}
	if got.FraudDecision != "SUSPECT" {
		t.Fatalf("expected SUSPECT, got %q", got.FraudDecision)
	}
	if got.Assignment.InvestigatorID != "INV001" || got.Assignment.SLADays != 7 {
		t.Fatalf("assignment not mapped: %+v", got.Assignment)
	}
	if !got.Assignment.AssignedAt.Equal(assignedAt) {
		t.Fatalf("assigned_at not mapped: %v", got.Assignment.AssignedAt)
	}
	if got.FinalDecision != "ESCALATED_TO_SIU" || got.Status != "UNDER_INVESTIGATION" {
		t.Fatalf("decision fields not mapped: %+v", got)
	}
	if len(got.Validation.Warnings) != 1 {
		t.Fatalf("validation not mapped: %+v", got.Validation)
	}
	if len(got.Logs) != 1 {
		t.Fatalf("logs not mapped: %v", got.Logs)
	}
}
