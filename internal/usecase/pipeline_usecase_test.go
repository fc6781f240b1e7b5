package usecase

import (
	"context"
	"errors"
	"testing"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
	mock_interfaces "seguros_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func defaultTestConfig() PipelineConfig {
	return PipelineConfig{
		FraudEscalationThreshold: 0.70,
		HighAmountThreshold:      300_000,
		ValidationMode:           ValidationModeRules,
		AssignmentSLADays:        7,
	}
}

func completeMotorDocs() []entities.DocumentRecord {
	return []entities.DocumentRecord{
		{Filename: "report.pdf", DocType: "incident_report"},
		{Filename: "invoice.pdf", DocType: "itemized_invoice"},
		{Filename: "receipt.pdf", DocType: "payment_receipt"},
		{Filename: "id.pdf", DocType: "id_proof"},
	}
}

func TestNextStage_Transitions(t *testing.T) {
	cfg := defaultTestConfig()
	score := func(v float64) *float64 { return &v }

	cases := []struct {
		name  string
		claim entities.ClaimAggregate
		want  Stage
	}{
		{
			name:  "unregistered starts at registration",
			claim: entities.ClaimAggregate{},
			want:  StageRegistration,
		},
		{
			name:  "registered goes to validation",
			claim: entities.ClaimAggregate{ClaimRegistered: true},
			want:  StageValidation,
		},
		{
			name: "failed validation skips to manager",
			claim: entities.ClaimAggregate{
				ClaimRegistered: true,
				ClaimValidated:  true,
				Validation:      entities.ValidationResult{DocsOK: false, RequiredMissing: []string{"id_proof"}},
			},
			want: StageManagerDecision,
		},
		{
			name: "validated goes to fraud scoring",
			claim: entities.ClaimAggregate{
				ClaimRegistered: true,
				ClaimValidated:  true,
				Validation:      entities.ValidationResult{DocsOK: true},
			},
			want: StageFraudScoring,
		},
		{
			name: "low risk skips assignment",
			claim: entities.ClaimAggregate{
				ClaimRegistered: true,
				ClaimValidated:  true,
				Validation:      entities.ValidationResult{DocsOK: true},
				FraudChecked:    true,
				FraudScore:      score(0.10),
				Amount:          1000,
			},
			want: StageManagerDecision,
		},
		{
			name: "high score routes through assignment",
			claim: entities.ClaimAggregate{
				ClaimRegistered: true,
				ClaimValidated:  true,
				Validation:      entities.ValidationResult{DocsOK: true},
				FraudChecked:    true,
				FraudScore:      score(0.85),
				Amount:          1000,
			},
			want: StageInvestigatorAssignment,
		},
		{
			name: "high amount routes through assignment even when safe",
			claim: entities.ClaimAggregate{
				ClaimRegistered: true,
				ClaimValidated:  true,
				Validation:      entities.ValidationResult{DocsOK: true},
				FraudChecked:    true,
				FraudScore:      score(0.10),
				Amount:          500_000,
			},
			want: StageInvestigatorAssignment,
		},
		{
			name: "threshold is inclusive",
			claim: entities.ClaimAggregate{
				ClaimRegistered: true,
				ClaimValidated:  true,
				Validation:      entities.ValidationResult{DocsOK: true},
				FraudChecked:    true,
				FraudScore:      score(0.70),
				Amount:          1000,
			},
			want: StageInvestigatorAssignment,
		},
		{
			name: "assignment done goes to manager",
			claim: entities.ClaimAggregate{
				ClaimRegistered: true,
				ClaimValidated:  true,
				Validation:      entities.ValidationResult{DocsOK: true},
				FraudChecked:    true,
				FraudScore:      score(0.85),
				AssignmentDone:  true,
			},
			want: StageManagerDecision,
		},
		{
			name: "decision made is terminal",
			claim: entities.ClaimAggregate{
				ClaimRegistered: true,
				ClaimValidated:  true,
				Validation:      entities.ValidationResult{DocsOK: true},
				FraudChecked:    true,
				AssignmentDone:  true,
				DecisionMade:    true,
			},
			want: StageDone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextStage(tc.claim, cfg); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestNextStage_Deterministic(t *testing.T) {
	cfg := defaultTestConfig()
	claim := entities.ClaimAggregate{
		ClaimRegistered: true,
		ClaimValidated:  true,
		Validation:      entities.ValidationResult{DocsOK: true},
	}

	first := NextStage(claim, cfg)
	for i := 0; i < 100; i++ {
		if got := NextStage(claim, cfg); got != first {
			t.Fatalf("routing not deterministic: got %s then %s", first, got)
		}
	}
}

func TestRunPipeline_Validations(t *testing.T) {
	t.Run("blank transaction id", func(t *testing.T) {
		uc := NewClaimPipelineUseCase(nil, nil, nil, nil, defaultTestConfig())
		_, err := uc.RunPipeline(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("claim not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClaimRepository(ctrl)
		uc := NewClaimPipelineUseCase(repo, nil, nil, nil, defaultTestConfig())

		repo.EXPECT().GetByTransactionID(gomock.Any(), "tx-missing").Return(entities.ClaimAggregate{}, nil)

		_, err := uc.RunPipeline(context.Background(), "tx-missing")
		if !errors.Is(err, ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClaimRepository(ctrl)
		uc := NewClaimPipelineUseCase(repo, nil, nil, nil, defaultTestConfig())

		repo.EXPECT().GetByTransactionID(gomock.Any(), "tx-1").Return(entities.ClaimAggregate{}, errors.New("db"))

		_, err := uc.RunPipeline(context.Background(), "tx-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestRunPipeline_HighRiskEscalation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimRepository(ctrl)
	pool := mock_interfaces.NewMockIInvestigatorPool(ctrl)
	completion := mock_interfaces.NewMockICompletionService(ctrl)
	uc := NewClaimPipelineUseCase(repo, pool, completion, nil, defaultTestConfig())

	stored := entities.ClaimAggregate{
		TransactionID:   "tx-1",
		ClaimID:         "CLM-1",
		ClaimType:       "motor",
		Amount:          500_000,
		ClaimRegistered: true,
		Documents:       completeMotorDocs(),
		Status:          entities.ClaimStatusRegistered,
	}

	repo.EXPECT().GetByTransactionID(gomock.Any(), "tx-1").Return(stored, nil)
	repo.EXPECT().UpdateFields(gomock.Any(), "tx-1", gomock.Any()).Return(nil).AnyTimes()
	completion.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(`{"fraud_score":0.85,"fraud_decision":"SUSPECT"}`, nil)
	pool.EXPECT().SelectAndReserve(gomock.Any(), "motor").Return(entities.InvestigatorRecord{
		InvestigatorID: "INV001", ActiveCases: 2, MaxCases: 5,
	}, nil)

	claim, err := uc.RunPipeline(context.Background(), "tx-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claim.FinalDecision != entities.DecisionEscalatedToSIU {
		t.Fatalf("expected ESCALATED_TO_SIU, got %s", claim.FinalDecision)
	}
	if claim.Status != entities.ClaimStatusUnderInvestigation {
		t.Fatalf("expected UNDER_INVESTIGATION, got %s", claim.Status)
	}
	if claim.Assignment.InvestigatorID != "INV001" {
		t.Fatalf("expected INV001 assigned, got %q", claim.Assignment.InvestigatorID)
	}
	if claim.Assignment.SLADays != 7 {
		t.Fatalf("expected sla 7, got %d", claim.Assignment.SLADays)
	}
}

func TestRunPipeline_MissingDocumentsSkipsFraud(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimRepository(ctrl)
	pool := mock_interfaces.NewMockIInvestigatorPool(ctrl)
	completion := mock_interfaces.NewMockICompletionService(ctrl)
	uc := NewClaimPipelineUseCase(repo, pool, completion, nil, defaultTestConfig())

	stored := entities.ClaimAggregate{
		TransactionID:   "tx-2",
		ClaimType:       "motor",
		Amount:          1000,
		ClaimRegistered: true,
		Documents: []entities.DocumentRecord{
			{Filename: "invoice.pdf", DocType: "itemized_invoice"},
		},
	}

	repo.EXPECT().GetByTransactionID(gomock.Any(), "tx-2").Return(stored, nil)
	repo.EXPECT().UpdateFields(gomock.Any(), "tx-2", gomock.Any()).Return(nil).AnyTimes()
	// No Complete expectation: fraud scoring must never run for failed validation.

	claim, err := uc.RunPipeline(context.Background(), "tx-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claim.FinalDecision != entities.DecisionPendingDocuments {
		t.Fatalf("expected PENDING_DOCUMENTS, got %s", claim.FinalDecision)
	}
	if claim.FraudChecked {
		t.Fatalf("fraud scoring must not run when documents are missing")
	}
}

func TestRunPipeline_CompletionFailureStillTerminates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimRepository(ctrl)
	completion := mock_interfaces.NewMockICompletionService(ctrl)
	uc := NewClaimPipelineUseCase(repo, nil, completion, nil, defaultTestConfig())

	stored := entities.ClaimAggregate{
		TransactionID:   "tx-3",
		ClaimType:       "motor",
		Amount:          1000,
		ClaimRegistered: true,
		Documents:       completeMotorDocs(),
	}

	repo.EXPECT().GetByTransactionID(gomock.Any(), "tx-3").Return(stored, nil)
	repo.EXPECT().UpdateFields(gomock.Any(), "tx-3", gomock.Any()).Return(nil).AnyTimes()
	completion.EXPECT().Complete(gomock.Any(), gomock.Any()).
		Return("", interfaces.ErrCompletionRateLimited).AnyTimes()

	claim, err := uc.RunPipeline(context.Background(), "tx-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Fallback scores {0.0, SAFE}; low amount and complete docs auto-approve.
	if claim.FinalDecision != entities.DecisionApproved {
		t.Fatalf("expected APPROVED, got %s", claim.FinalDecision)
	}
	if !claim.DecisionMade {
		t.Fatalf("expected terminal decision")
	}
}

func TestRunPipeline_EventPublishFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimRepository(ctrl)
	events := mock_interfaces.NewMockIEventPublisher(ctrl)
	uc := NewClaimPipelineUseCase(repo, nil, nil, events, defaultTestConfig())

	stored := entities.ClaimAggregate{
		TransactionID:   "tx-4",
		ClaimType:       "motor",
		Amount:          1000,
		ClaimRegistered: true,
		Documents:       completeMotorDocs(),
	}

	repo.EXPECT().GetByTransactionID(gomock.Any(), "tx-4").Return(stored, nil)
	repo.EXPECT().UpdateFields(gomock.Any(), "tx-4", gomock.Any()).Return(nil).AnyTimes()
	events.EXPECT().PublishStageEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).AnyTimes()

	if _, err := uc.RunPipeline(context.Background(), "tx-4"); err != nil {
		t.Fatalf("broker failure must not fail the run: %v", err)
	}
}

func TestRunPipeline_StageErrorReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimRepository(ctrl)
	pool := mock_interfaces.NewMockIInvestigatorPool(ctrl)
	uc := NewClaimPipelineUseCase(repo, pool, nil, nil, defaultTestConfig())

	score := 0.9
	stored := entities.ClaimAggregate{
		TransactionID:   "tx-5",
		ClaimType:       "motor",
		Amount:          1000,
		ClaimRegistered: true,
		ClaimValidated:  true,
		Validation:      entities.ValidationResult{DocsOK: true},
		FraudChecked:    true,
		FraudScore:      &score,
	}

	repo.EXPECT().GetByTransactionID(gomock.Any(), "tx-5").Return(stored, nil)
	pool.EXPECT().SelectAndReserve(gomock.Any(), "motor").Return(entities.InvestigatorRecord{}, errors.New("dynamo down"))

	claim, err := uc.RunPipeline(context.Background(), "tx-5")
	if err == nil {
		t.Fatalf("expected stage error")
	}
	if claim.AssignmentDone {
		t.Fatalf("assignment flag must not advance on reservation failure")
	}
}
