package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"seguros_xpto/internal/domain/entities"
	mock_interfaces "seguros_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRunRegistrationStage(t *testing.T) {
	t.Run("assigns identity once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClaimRepository(ctrl)
		repo.EXPECT().UpsertRegistration(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		repo.EXPECT().InsertDocuments(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		claim := entities.ClaimAggregate{ClaimID: "CLM-1", ClaimType: "motor"}
		runRegistrationStage(context.Background(), repo, &claim)

		if claim.TransactionID == "" {
			t.Fatalf("expected transaction id")
		}
		if claim.RegisteredAt.IsZero() {
			t.Fatalf("expected registration timestamp")
		}
		if !claim.ClaimRegistered {
			t.Fatalf("expected registered flag")
		}
		if claim.Status != entities.ClaimStatusRegistered {
			t.Fatalf("expected REGISTERED status, got %s", claim.Status)
		}

		txID := claim.TransactionID
		registeredAt := claim.RegisteredAt
		runRegistrationStage(context.Background(), repo, &claim)
		if claim.TransactionID != txID {
			t.Fatalf("transaction id must be stable across re-runs")
		}
		if !claim.RegisteredAt.Equal(registeredAt) {
			t.Fatalf("registration timestamp must be stable across re-runs")
		}
	})

	t.Run("persistence failure does not fail registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClaimRepository(ctrl)
		repo.EXPECT().UpsertRegistration(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		claim := entities.ClaimAggregate{ClaimID: "CLM-2"}
		runRegistrationStage(context.Background(), repo, &claim)

		if !claim.ClaimRegistered {
			t.Fatalf("in-memory registration must survive a persistence failure")
		}
		found := false
		for _, entry := range claim.Logs {
			if strings.Contains(entry, "db_error") {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected db_error audit entry, got %v", claim.Logs)
		}
	})

	t.Run("preserves status of resumed claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClaimRepository(ctrl)
		repo.EXPECT().UpsertRegistration(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().InsertDocuments(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		claim := entities.ClaimAggregate{
			TransactionID: "tx-1",
			RegisteredAt:  time.Now().UTC(),
			Status:        entities.ClaimStatusApproved,
		}
		runRegistrationStage(context.Background(), repo, &claim)
		if claim.Status != entities.ClaimStatusApproved {
			t.Fatalf("status must not be reset, got %s", claim.Status)
		}
	})
}

func TestAggregateExtractedText(t *testing.T) {
	t.Run("joins narrative and documents", func(t *testing.T) {
		claim := entities.ClaimAggregate{
			ExtractedText: "  rear-end collision  ",
			Documents: []entities.DocumentRecord{
				{Filename: "a.pdf", ExtractedText: "invoice total 1200"},
				{Filename: "b.pdf", ExtractedText: "   "},
				{Filename: "c.pdf", ExtractedText: "police report"},
			},
		}
		got := aggregateExtractedText(claim)
		want := "rear-end collision\n\ninvoice total 1200\n\npolice report"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("caps combined length", func(t *testing.T) {
		claim := entities.ClaimAggregate{
			ExtractedText: strings.Repeat("x", maxExtractedTextLen+500),
		}
		if got := aggregateExtractedText(claim); len(got) != maxExtractedTextLen {
			t.Fatalf("expected cap at %d, got %d", maxExtractedTextLen, len(got))
		}
	})

	t.Run("cap never splits a multibyte rune", func(t *testing.T) {
		// Place a 3-byte rune across the cap boundary.
		claim := entities.ClaimAggregate{
			ExtractedText: strings.Repeat("x", maxExtractedTextLen-1) + strings.Repeat("日", 200),
		}
		got := aggregateExtractedText(claim)
		if len(got) > maxExtractedTextLen {
			t.Fatalf("expected at most %d bytes, got %d", maxExtractedTextLen, len(got))
		}
		if !utf8.ValidString(got) {
			t.Fatalf("capped text must remain valid utf-8")
		}
		if len(got) != maxExtractedTextLen-1 {
			t.Fatalf("expected trim back to rune boundary at %d, got %d", maxExtractedTextLen-1, len(got))
		}
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		if got := aggregateExtractedText(entities.ClaimAggregate{}); got != "" {
			t.Fatalf("expected empty text, got %q", got)
		}
	})
}
