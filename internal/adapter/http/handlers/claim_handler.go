package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "seguros_xpto/internal/adapter/http/dto/request"
	response "seguros_xpto/internal/adapter/http/dto/response"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClaimPayload = pkg.NewDomainErrorSimple("INVALID_CLAIM_INPUT", "Invalid claim payload", http.StatusBadRequest)
)

// ClaimHandler handles HTTP requests for the claims pipeline.

type ClaimHandler struct {
	claims   usecase.IClaimUseCase
	pipeline usecase.IClaimPipelineUseCase
}

func NewClaimHandler(claims usecase.IClaimUseCase, pipeline usecase.IClaimPipelineUseCase) *ClaimHandler {
	return &ClaimHandler{claims: claims, pipeline: pipeline}
}

// RegisterClaim registers a new claim and returns its transaction id.
func (h *ClaimHandler) RegisterClaim(c *gin.Context) {
	var payload request.RegisterClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}
	log.Printf("[claim][handler] register start claim_id=%s claim_type=%s docs=%d", payload.ClaimID, payload.ClaimType, len(payload.Documents))

	claim, err := h.claims.Register(c.Request.Context(), usecase.RegisterClaimInput{
		ClaimID:      payload.ClaimID,
		CustomerName: payload.CustomerName,
		PolicyNumber: payload.PolicyNumber,
		Description:  payload.Description,
		Amount:       payload.Amount,
		ClaimType:    payload.ResolveClaimType(),
		Documents:    payload.ResolveDocuments(),
	})
	if err != nil {
		log.Printf("[claim][handler] register failed claim_id=%s err=%v", payload.ClaimID, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[claim][handler] register success claim_id=%s transaction_id=%s", claim.ClaimID, claim.TransactionID)

	c.JSON(http.StatusCreated, response.RegisterClaimResponse{
		TransactionID: claim.TransactionID,
		ClaimID:       claim.ClaimID,
		Status:        string(claim.Status),
		RegisteredAt:  claim.RegisteredAt,
		Message:       fmt.Sprintf("Claim registered successfully. Track it with transaction id %s.", claim.TransactionID),
	})
}

// GetStatus returns the persisted status projection for a claim.
func (h *ClaimHandler) GetStatus(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	view, err := h.claims.GetStatus(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[claim][handler] status failed transaction_id=%s err=%v", transactionID, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ClaimStatusResponse{
		TransactionID: view.TransactionID,
		Status:        string(view.Status),
		FinalDecision: string(view.FinalDecision),
	})
}

// ProcessClaim runs the pipeline for a registered claim until its terminal
// decision.
func (h *ClaimHandler) ProcessClaim(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	log.Printf("[claim][handler] process start transaction_id=%s", transactionID)

	claim, err := h.pipeline.RunPipeline(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[claim][handler] process failed transaction_id=%s err=%v", transactionID, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[claim][handler] process success transaction_id=%s final_decision=%s", claim.TransactionID, claim.FinalDecision)

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// OverrideDecision applies a manual manager decision to a claim.
func (h *ClaimHandler) OverrideDecision(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DECISION", "Invalid decision payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	claim, err := h.claims.OverrideDecision(c.Request.Context(), transactionID, entities.FinalDecision(payload.ResolveDecision()), payload.Comment)
	if err != nil {
		log.Printf("[claim][handler] decision failed transaction_id=%s decision=%s err=%v", transactionID, payload.Decision, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[claim][handler] decision success transaction_id=%s decision=%s", claim.TransactionID, claim.FinalDecision)

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// ProcessPayout disburses an approved claim.
func (h *ClaimHandler) ProcessPayout(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	log.Printf("[claim][handler] payout start transaction_id=%s", transactionID)

	claim, err := h.claims.ProcessPayout(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[claim][handler] payout failed transaction_id=%s err=%v", transactionID, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[claim][handler] payout success transaction_id=%s", claim.TransactionID)

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// CloseClaim closes a decided claim and frees its investigator slot.
func (h *ClaimHandler) CloseClaim(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	claim, err := h.claims.CloseClaim(c.Request.Context(), transactionID)
	if err != nil {
		log.Printf("[claim][handler] close failed transaction_id=%s err=%v", transactionID, err)
		appErr := mapClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[claim][handler] close success transaction_id=%s", claim.TransactionID)

	c.JSON(http.StatusOK, response.FromClaim(claim))
}

func mapClaimError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimInput), errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_DECISION", "Decision must be APPROVED, REJECTED or PENDING_DOCUMENTS", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClaimNotApproved):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_APPROVED", "Claim is not approved for payout", http.StatusConflict)
	case errors.Is(err, usecase.ErrPayoutAlreadyProcessed):
		return pkg.NewDomainErrorSimple("PAYOUT_ALREADY_PROCESSED", "Payout already processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrDecisionPending):
		return pkg.NewDomainErrorSimple("DECISION_PENDING", "Claim has no final decision yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrClaimAlreadyClosed):
		return pkg.NewDomainErrorSimple("CLAIM_ALREADY_CLOSED", "Claim already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPayoutGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYOUT_GATEWAY_UNAVAILABLE", "Payout gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
