package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// maxExtractedTextLen caps the aggregated narrative + document text.
const maxExtractedTextLen = 50_000

// runRegistrationStage assigns identity, aggregates document text and
// persists the claim. It is idempotent: an aggregate that already carries a
// transaction id and registration timestamp keeps both.
//
// A persistence failure is audited into the aggregate's logs and does not
// fail the stage; the in-memory aggregate still reflects registration and the
// caller detects missing durability through a subsequent read.
func runRegistrationStage(ctx context.Context, repo interfaces.IClaimRepository, c *entities.ClaimAggregate) {
	if c.TransactionID == "" {
		c.TransactionID = uuid.NewString()
	}
	if c.RegisteredAt.IsZero() {
		c.RegisteredAt = time.Now().UTC()
	}
	c.ClaimRegistered = true
	if c.Status == "" {
		c.Status = entities.ClaimStatusRegistered
	}
	if agg := aggregateExtractedText(*c); agg != "" {
		c.ExtractedText = agg
	}
	c.AppendLog(fmt.Sprintf("[registration] registered tx=%s", c.TransactionID))

	if err := repo.UpsertRegistration(ctx, *c); err != nil {
		log.Printf("[registration][usecase] claim upsert failed transaction_id=%s err=%v", c.TransactionID, err)
		c.AppendLog(fmt.Sprintf("[registration] db_error=%v", err))
		return
	}
	if err := repo.InsertDocuments(ctx, c.TransactionID, c.Documents); err != nil {
		log.Printf("[registration][usecase] document insert failed transaction_id=%s err=%v", c.TransactionID, err)
		c.AppendLog(fmt.Sprintf("[registration] db_error=%v", err))
		return
	}
	log.Printf("[registration][usecase] claim registered claim_id=%s transaction_id=%s docs=%d", c.ClaimID, c.TransactionID, len(c.Documents))
}

func (u *ClaimPipelineUseCase) runRegistration(ctx context.Context, c *entities.ClaimAggregate) error {
	runRegistrationStage(ctx, u.claims, c)
	return nil
}

// aggregateExtractedText joins the claim narrative with every document's
// extracted text, trimmed, blanks dropped, capped at maxExtractedTextLen.
func aggregateExtractedText(c entities.ClaimAggregate) string {
	parts := make([]string, 0, len(c.Documents)+1)
	if t := strings.TrimSpace(c.ExtractedText); t != "" {
		parts = append(parts, t)
	}
	for _, d := range c.Documents {
		if t := strings.TrimSpace(d.ExtractedText); t != "" {
			parts = append(parts, t)
		}
	}
	combined := strings.Join(parts, "\n\n")
	if len(combined) > maxExtractedTextLen {
		cut := maxExtractedTextLen
		// Back off to a rune boundary so the cap never splits a character.
		for cut > 0 && !utf8.RuneStart(combined[cut]) {
			cut--
		}
		combined = combined[:cut]
	}
	return combined
}
