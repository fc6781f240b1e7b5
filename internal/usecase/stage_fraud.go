package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
	"seguros_xpto/pkg/safejson"
)

// runFraudScoring scores the claim through the completion service, falling
// back to {0.0, SAFE} on any classified failure. FraudChecked is set
// unconditionally once the stage runs, whichever path produced the score.
func (u *ClaimPipelineUseCase) runFraudScoring(ctx context.Context, c *entities.ClaimAggregate) error {
	score, decision, entries, err := u.scoreFraud(ctx, c)
	if err != nil {
		return err
	}

	c.FraudChecked = true
	c.FraudScore = &score
	c.FraudDecision = decision
	entries = append(entries, fmt.Sprintf("[fraud] score=%.2f decision=%s", score, decision))
	c.Logs = append(c.Logs, entries...)

	return u.claims.UpdateFields(ctx, c.TransactionID, map[string]any{
		"fraud_checked":  true,
		"fraud_score":    score,
		"fraud_decision": decision,
		"logs":           entries,
		"updated_at":     time.Now().UTC(),
	})
}

// scoreFraud returns a sanitized score/decision pair. The returned error is
// non-nil only for caller cancellation.
func (u *ClaimPipelineUseCase) scoreFraud(ctx context.Context, c *entities.ClaimAggregate) (float64, entities.FraudDecision, []string, error) {
	if u.completion == nil {
		return 0, entities.FraudDecisionSafe, []string{"[fraud] completion unconfigured; fallback SAFE"}, nil
	}

	raw, err := u.completion.Complete(ctx, buildFraudPrompt(*c))
	if err != nil {
		if interfaces.IsTransientCompletionError(err) {
			return 0, entities.FraudDecisionSafe, []string{fmt.Sprintf("[fraud] completion failed: %v; fallback SAFE", err)}, nil
		}
		// Caller cancellation (or an unclassified failure) aborts the run.
		return 0, "", nil, err
	}

	var payload map[string]any
	if err := safejson.Decode(raw, &payload); err != nil {
		return 0, entities.FraudDecisionSafe, []string{"[fraud] unparsable completion response; fallback SAFE"}, nil
	}

	score, decision := sanitizeFraudResult(payload)
	return score, decision, nil, nil
}

// sanitizeFraudResult enforces the stage contract regardless of model output:
// the score is clamped to [0,1] and defaults to 0 for anything non-numeric;
// the decision is SUSPECT only for a case-insensitive "suspect".
func sanitizeFraudResult(payload map[string]any) (float64, entities.FraudDecision) {
	score := 0.0
	switch v := payload["fraud_score"].(type) {
	case float64:
		score = v
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			score = parsed
		}
	}
	// ParseFloat accepts "NaN" and "Inf", which the range clamp cannot catch.
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	decision := entities.FraudDecisionSafe
	if v, ok := payload["fraud_decision"].(string); ok && strings.EqualFold(strings.TrimSpace(v), "suspect") {
		decision = entities.FraudDecisionSuspect
	}
	return score, decision
}

func buildFraudPrompt(c entities.ClaimAggregate) string {
	return fmt.Sprintf(`You are an insurance fraud detection AI.

Claim Amount: %.2f
Claim Text: %s

Return ONLY a minified JSON object with keys:
- "fraud_score": float between 0.0 and 1.0
- "fraud_decision": "SAFE" or "SUSPECT"
`, c.Amount, c.ExtractedText)
}
