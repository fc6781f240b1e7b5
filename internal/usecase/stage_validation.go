package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
	"seguros_xpto/pkg/safejson"
)

// Document types required per claim category. Categories without an entry use
// defaultRequiredDocs.
var requiredDocsByClaimType = map[string][]string{
	"motor":  {"incident_report", "itemized_invoice", "payment_receipt", "id_proof"},
	"health": {"discharge_summary", "itemized_invoice", "payment_receipt", "id_proof"},
}

var defaultRequiredDocs = []string{"itemized_invoice", "payment_receipt", "id_proof"}

// Signals in raw completion text that indicate the provider is out of quota
// even when the call itself did not error.
var rateLimitSignals = []string{"resource_exhausted", "quota", "rate limit", "429"}

// llmValidationPayload is the JSON shape the validation prompt asks for.
type llmValidationPayload struct {
	MissingDocuments []string `json:"missing_documents"`
	FieldsExtracted  struct {
		InvoiceNumber any `json:"invoice_number"`
		InvoiceTotal  any `json:"invoice_total"`
		InvoiceDate   any `json:"invoice_date"`
	} `json:"fields_extracted"`
	AmountMatchesClaim bool     `json:"amount_matches_claim"`
	ValidationPassed   bool     `json:"validation_passed"`
	Warnings           []string `json:"warnings"`
	Errors             []string `json:"errors"`
}

// runValidation applies the configured validation strategy. The
// model-assisted strategy falls back unconditionally to the rule-based one on
// any classified completion failure, quota signal or unparsable output; the
// fallback path cannot fail.
func (u *ClaimPipelineUseCase) runValidation(ctx context.Context, c *entities.ClaimAggregate) error {
	var vr entities.ValidationResult
	var entries []string

	if u.completion != nil && u.cfg.ValidationMode != ValidationModeRules {
		llmResult, ok, err := u.modelAssistedValidation(ctx, c, &entries)
		if err != nil {
			return err
		}
		if ok {
			vr = llmResult
		} else {
			vr = ruleBasedValidation(*c)
			entries = append(entries, "[validation] fallback rule-based used")
		}
	} else {
		vr = ruleBasedValidation(*c)
		entries = append(entries, "[validation] rule-based used")
	}

	c.Validation = vr
	c.ClaimValidated = true
	entries = append(entries, fmt.Sprintf("[validation] docs_ok=%t missing=%v errors=%v", vr.DocsOK, vr.RequiredMissing, vr.Errors))
	c.Logs = append(c.Logs, entries...)

	return u.claims.UpdateFields(ctx, c.TransactionID, map[string]any{
		"claim_validated": true,
		"validation":      vr,
		"logs":            entries,
		"updated_at":      time.Now().UTC(),
	})
}

// ruleBasedValidation checks the presence of required document types for the
// claim category.
func ruleBasedValidation(c entities.ClaimAggregate) entities.ValidationResult {
	required, ok := requiredDocsByClaimType[strings.ToLower(c.ClaimType)]
	if !ok {
		required = defaultRequiredDocs
	}

	present := map[string]bool{}
	for _, d := range c.Documents {
		if d.DocType != "" {
			present[strings.ToLower(d.DocType)] = true
		}
	}

	missing := []string{}
	for _, r := range required {
		if !present[r] {
			missing = append(missing, r)
		}
	}

	return entities.ValidationResult{
		RequiredMissing: missing,
		Warnings:        []string{},
		Errors:          []string{},
		DocsOK:          len(missing) == 0,
	}
}

// modelAssistedValidation asks the completion service to validate the claim's
// documents. ok=false means the caller must use the rule-based fallback. The
// returned error is non-nil only for caller cancellation, which aborts the
// run instead of degrading it.
func (u *ClaimPipelineUseCase) modelAssistedValidation(ctx context.Context, c *entities.ClaimAggregate, entries *[]string) (entities.ValidationResult, bool, error) {
	raw, err := u.completion.Complete(ctx, buildValidationPrompt(*c))
	if err != nil {
		if !interfaces.IsTransientCompletionError(err) {
			return entities.ValidationResult{}, false, err
		}
		*entries = append(*entries, fmt.Sprintf("[validation] completion failed: %v", err))
		return entities.ValidationResult{}, false, nil
	}

	if signal := detectRateLimitSignal(raw); signal != "" {
		*entries = append(*entries, fmt.Sprintf("[validation] rate limit signal %q in response", signal))
		return entities.ValidationResult{}, false, nil
	}

	var payload llmValidationPayload
	if err := safejson.Decode(raw, &payload); err != nil {
		*entries = append(*entries, "[validation] unparsable completion response")
		return entities.ValidationResult{}, false, nil
	}

	// Extracted invoice fields are informational only; they feed the audit
	// trail, never the decision.
	*entries = append(*entries, fmt.Sprintf("[validation] extracted invoice_number=%v invoice_total=%v invoice_date=%v",
		payload.FieldsExtracted.InvoiceNumber, payload.FieldsExtracted.InvoiceTotal, payload.FieldsExtracted.InvoiceDate))

	vr := entities.ValidationResult{
		RequiredMissing: payload.MissingDocuments,
		Warnings:        payload.Warnings,
		Errors:          payload.Errors,
		DocsOK:          payload.ValidationPassed,
	}
	if vr.RequiredMissing == nil {
		vr.RequiredMissing = []string{}
	}
	if vr.Warnings == nil {
		vr.Warnings = []string{}
	}
	if vr.Errors == nil {
		vr.Errors = []string{}
	}
	return vr, true, nil
}

func detectRateLimitSignal(raw string) string {
	lower := strings.ToLower(raw)
	for _, signal := range rateLimitSignals {
		if strings.Contains(lower, signal) {
			return signal
		}
	}
	return ""
}

func buildValidationPrompt(c entities.ClaimAggregate) string {
	var b strings.Builder
	b.WriteString(`You are an expert insurance claim validator.

Return STRICT minified JSON only (no markdown):
{"missing_documents":[],"fields_extracted":{"invoice_number":null,"invoice_total":null,"invoice_date":null},"amount_matches_claim":false,"validation_passed":false,"warnings":[],"errors":[]}

### CLAIM DETAILS ###
`)
	fmt.Fprintf(&b, "claim_type = %q\nclaim_amount = %.2f\n", c.ClaimType, c.Amount)
	b.WriteString("\n### DOCUMENTS ###\n")
	for i, d := range c.Documents {
		fmt.Fprintf(&b, "\n### DOC_%d (%s, %s) ###\n%s\n", i+1, d.Filename, d.DocType, d.ExtractedText)
	}
	return b.String()
}
