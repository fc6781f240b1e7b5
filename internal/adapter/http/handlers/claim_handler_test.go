package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"seguros_xpto/internal/adapter/http/handlers/mocks"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newClaimRouter(h *ClaimHandler) *gin.Engine {
	r := gin.New()
	claims := r.Group("/v1/claims")
	claims.POST("", h.RegisterClaim)
	claims.GET("/:transaction_id/status", h.GetStatus)
	claims.POST("/:transaction_id/process", h.ProcessClaim)
	claims.POST("/:transaction_id/decision", h.OverrideDecision)
	claims.POST("/:transaction_id/payout", h.ProcessPayout)
	claims.POST("/:transaction_id/close", h.CloseClaim)
	return r
}

func TestClaimHandler_RegisterClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString(`{"claim_id":"CLM-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.ClaimAggregate{
			TransactionID: "tx-1",
			ClaimID:       "CLM-1",
			Status:        entities.ClaimStatusRegistered,
		}, nil)

		body := `{"claim_id":"CLM-1","customer_name":"Ana Souza","policy_number":"POL-77","claim_type":"motor","amount":3200,"documents":[{"filename":"invoice.pdf","doc_type":"itemized_invoice"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["transaction_id"] != "tx-1" {
			t.Fatalf("expected tx-1, got %v", got["transaction_id"])
		}
		if got["message"] == "" {
			t.Fatalf("expected confirmation message")
		}
	})
}

func TestClaimHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		uc.EXPECT().GetStatus(gomock.Any(), "tx-missing").Return(usecase.StatusView{}, usecase.ErrClaimNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/tx-missing/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		uc.EXPECT().GetStatus(gomock.Any(), "tx-1").Return(usecase.StatusView{
			TransactionID: "tx-1",
			Status:        entities.ClaimStatusUnderInvestigation,
			FinalDecision: entities.DecisionEscalatedToSIU,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/tx-1/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["status"] != "UNDER_INVESTIGATION" {
			t.Fatalf("expected UNDER_INVESTIGATION, got %v", got["status"])
		}
	})
}

func TestClaimHandler_ProcessClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pipeline := mocks.NewMockIClaimPipelineUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(nil, pipeline))

		pipeline.EXPECT().RunPipeline(gomock.Any(), "tx-missing").Return(entities.ClaimAggregate{}, usecase.ErrClaimNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-missing/process", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pipeline := mocks.NewMockIClaimPipelineUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(nil, pipeline))

		pipeline.EXPECT().RunPipeline(gomock.Any(), "tx-1").Return(entities.ClaimAggregate{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-1/process", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pipeline := mocks.NewMockIClaimPipelineUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(nil, pipeline))

		score := 0.85
		pipeline.EXPECT().RunPipeline(gomock.Any(), "tx-1").Return(entities.ClaimAggregate{
			TransactionID: "tx-1",
			FraudScore:    &score,
			FraudDecision: entities.FraudDecisionSuspect,
			FinalDecision: entities.DecisionEscalatedToSIU,
			Status:        entities.ClaimStatusUnderInvestigation,
			Assignment:    entities.Assignment{InvestigatorID: "INV001", SLADays: 7},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-1/process", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["final_decision"] != "ESCALATED_TO_SIU" {
			t.Fatalf("expected ESCALATED_TO_SIU, got %v", got["final_decision"])
		}
	})
}

func TestClaimHandler_OverrideDecision(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing decision field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-1/decision", bytes.NewBufferString(`{"comment":"no decision"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid decision value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		uc.EXPECT().OverrideDecision(gomock.Any(), "tx-1", entities.FinalDecision("ESCALATED_TO_SIU"), "").
			Return(entities.ClaimAggregate{}, usecase.ErrInvalidDecision)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-1/decision", bytes.NewBufferString(`{"decision":"escalated_to_siu"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		uc.EXPECT().OverrideDecision(gomock.Any(), "tx-1", entities.DecisionApproved, "verified invoices by phone").
			Return(entities.ClaimAggregate{
				TransactionID: "tx-1",
				FinalDecision: entities.DecisionApproved,
				Status:        entities.ClaimStatusApproved,
			}, nil)

		body := `{"decision":"approved","comment":"verified invoices by phone"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-1/decision", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestClaimHandler_ProcessPayout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conflict when not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		uc.EXPECT().ProcessPayout(gomock.Any(), "tx-1").Return(entities.ClaimAggregate{}, usecase.ErrClaimNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-1/payout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("service unavailable without gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		uc.EXPECT().ProcessPayout(gomock.Any(), "tx-1").Return(entities.ClaimAggregate{}, usecase.ErrPayoutGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-1/payout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		uc.EXPECT().ProcessPayout(gomock.Any(), "tx-1").Return(entities.ClaimAggregate{
			TransactionID:    "tx-1",
			PaymentProcessed: true,
			Status:           entities.ClaimStatusPaid,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-1/payout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestClaimHandler_CloseClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conflict when already closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		uc.EXPECT().CloseClaim(gomock.Any(), "tx-1").Return(entities.ClaimAggregate{}, usecase.ErrClaimAlreadyClosed)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-1/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		r := newClaimRouter(NewClaimHandler(uc, nil))

		uc.EXPECT().CloseClaim(gomock.Any(), "tx-1").Return(entities.ClaimAggregate{
			TransactionID: "tx-1",
			ClaimClosed:   true,
			Status:        entities.ClaimStatusClosed,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/tx-1/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
