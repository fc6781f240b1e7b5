package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
)

var (
	ErrClaimNotFound        = errors.New("claim not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
)

// maxPipelineSteps bounds the routing loop; the forward path visits at most
// five stages, anything beyond that is a routing bug.
const maxPipelineSteps = 8

// Stage is one pipeline step. Routing works on this tagged type instead of
// stage-name strings so a typo cannot silently produce an unknown stage.

type Stage int

const (
	StageDone Stage = iota
	StageRegistration
	StageValidation
	StageFraudScoring
	StageInvestigatorAssignment
	StageManagerDecision
)

func (s Stage) String() string {
	switch s {
	case StageRegistration:
		return "registration"
	case StageValidation:
		return "validation"
	case StageFraudScoring:
		return "fraud_scoring"
	case StageInvestigatorAssignment:
		return "investigator_assignment"
	case StageManagerDecision:
		return "manager_decision"
	case StageDone:
		return "done"
	}
	return "unknown"
}

// PipelineConfig carries the routing thresholds and validation strategy.
type PipelineConfig struct {
	FraudEscalationThreshold float64
	HighAmountThreshold      float64
	// ValidationMode selects the document validation strategy: "llm"
	// (model-assisted with rule-based fallback) or "rules".
	ValidationMode    string
	AssignmentSLADays int
}

const (
	ValidationModeLLM   = "llm"
	ValidationModeRules = "rules"
)

// PipelineConfigFromEnv returns the default thresholds, overridable through
// FRAUD_ESCALATION_THRESHOLD, HIGH_AMOUNT_THRESHOLD and CLAIM_VALIDATION_MODE.
func PipelineConfigFromEnv() PipelineConfig {
	cfg := PipelineConfig{
		FraudEscalationThreshold: 0.70,
		HighAmountThreshold:      300_000,
		ValidationMode:           ValidationModeLLM,
		AssignmentSLADays:        7,
	}
	if v := os.Getenv("FRAUD_ESCALATION_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			cfg.FraudEscalationThreshold = f
		}
	}
	if v := os.Getenv("HIGH_AMOUNT_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.HighAmountThreshold = f
		}
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("CLAIM_VALIDATION_MODE"))); v == ValidationModeRules {
		cfg.ValidationMode = ValidationModeRules
	}
	return cfg
}

// NextStage computes the next pipeline stage from the aggregate's durable
// flags. It is a pure function of its inputs: re-invoking the pipeline against
// a persisted aggregate resumes exactly where a previous run stopped.
//
// Transition rules, first match wins:
//  1. unregistered claims always start at registration
//  2. after validation, missing docs or validation errors skip straight to the
//     manager (no fraud scoring for claims that cannot be paid anyway)
//  3. after fraud scoring, high risk or high amount routes through
//     investigator assignment
//  4. the manager decision is terminal
func NextStage(c entities.ClaimAggregate, cfg PipelineConfig) Stage {
	if !c.ClaimRegistered {
		return StageRegistration
	}
	if !c.ClaimValidated {
		return StageValidation
	}
	if !c.Validation.DocsOK || len(c.Validation.Errors) > 0 {
		if !c.DecisionMade {
			return StageManagerDecision
		}
		return StageDone
	}
	if !c.FraudChecked {
		return StageFraudScoring
	}
	if shouldEscalate(c, cfg) && !c.AssignmentDone && !c.DecisionMade {
		return StageInvestigatorAssignment
	}
	if !c.DecisionMade {
		return StageManagerDecision
	}
	return StageDone
}

func shouldEscalate(c entities.ClaimAggregate, cfg PipelineConfig) bool {
	return c.FraudScoreValue() >= cfg.FraudEscalationThreshold || c.Amount > cfg.HighAmountThreshold
}

// IClaimPipelineUseCase runs a claim's pipeline to its terminal decision.

type IClaimPipelineUseCase interface {
	RunPipeline(ctx context.Context, transactionID string) (entities.ClaimAggregate, error)
}

type ClaimPipelineUseCase struct {
	claims     interfaces.IClaimRepository
	pool       interfaces.IInvestigatorPool
	completion interfaces.ICompletionService // nil when unconfigured; stages fall back
	events     interfaces.IEventPublisher    // nil disables event publishing
	cfg        PipelineConfig
}

var _ IClaimPipelineUseCase = (*ClaimPipelineUseCase)(nil)

func NewClaimPipelineUseCase(
	claims interfaces.IClaimRepository,
	pool interfaces.IInvestigatorPool,
	completion interfaces.ICompletionService,
	events interfaces.IEventPublisher,
	cfg PipelineConfig,
) *ClaimPipelineUseCase {
	return &ClaimPipelineUseCase{claims: claims, pool: pool, completion: completion, events: events, cfg: cfg}
}

// RunPipeline drives the claim through its remaining stages. Each stage
// persists its own fields before the router recomputes the next stage, so an
// interrupted run resumes safely on the next invocation.
func (u *ClaimPipelineUseCase) RunPipeline(ctx context.Context, transactionID string) (entities.ClaimAggregate, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.ClaimAggregate{}, ErrInvalidTransactionID
	}

	claim, err := u.claims.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return entities.ClaimAggregate{}, err
	}
	if claim.TransactionID == "" {
		return entities.ClaimAggregate{}, ErrClaimNotFound
	}

	for step := 0; step < maxPipelineSteps; step++ {
		stage := NextStage(claim, u.cfg)
		if stage == StageDone {
			log.Printf("[pipeline][usecase] run complete transaction_id=%s final_decision=%s", claim.TransactionID, claim.FinalDecision)
			return claim, nil
		}

		log.Printf("[pipeline][usecase] routing transaction_id=%s stage=%s", claim.TransactionID, stage)
		if err := u.runStage(ctx, stage, &claim); err != nil {
			claim.AppendLog(fmt.Sprintf("[pipeline] stage %s failed: %v", stage, err))
			log.Printf("[pipeline][usecase] stage failed transaction_id=%s stage=%s err=%v", claim.TransactionID, stage, err)
			return claim, err
		}
		u.publishStageEvent(ctx, stage, claim)
	}

	return claim, fmt.Errorf("pipeline did not terminate after %d steps for transaction %s", maxPipelineSteps, claim.TransactionID)
}

func (u *ClaimPipelineUseCase) runStage(ctx context.Context, stage Stage, c *entities.ClaimAggregate) error {
	switch stage {
	case StageRegistration:
		return u.runRegistration(ctx, c)
	case StageValidation:
		return u.runValidation(ctx, c)
	case StageFraudScoring:
		return u.runFraudScoring(ctx, c)
	case StageInvestigatorAssignment:
		return u.runInvestigatorAssignment(ctx, c)
	case StageManagerDecision:
		return u.runManagerDecision(ctx, c)
	}
	return fmt.Errorf("unknown stage %d", stage)
}

// publishStageEvent is best-effort; a broker failure never fails the stage.
func (u *ClaimPipelineUseCase) publishStageEvent(ctx context.Context, stage Stage, c entities.ClaimAggregate) {
	if u.events == nil {
		return
	}
	event := interfaces.StageEvent{
		TransactionID: c.TransactionID,
		Stage:         stage.String(),
		Status:        string(c.Status),
		OccurredAt:    time.Now().UTC(),
	}
	if c.FinalDecision != "" {
		event.Detail = string(c.FinalDecision)
	}
	if err := u.events.PublishStageEvent(ctx, event); err != nil {
		log.Printf("[pipeline][usecase] event publish failed transaction_id=%s stage=%s err=%v", c.TransactionID, stage, err)
	}
}
