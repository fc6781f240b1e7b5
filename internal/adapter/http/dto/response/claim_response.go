package response

import (
	"time"

	"seguros_xpto/internal/domain/entities"
)

// RegisterClaimResponse confirms a registration. Message is the customer
// confirmation text.
type RegisterClaimResponse struct {
	TransactionID string    `json:"transaction_id"`
	ClaimID       string    `json:"claim_id"`
	Status        string    `json:"status"`
	RegisteredAt  time.Time `json:"registered_at"`
	Message       string    `json:"message"`
}

// ClaimStatusResponse is the polling projection: persisted state only.
type ClaimStatusResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	FinalDecision string `json:"final_decision,omitempty"`
}

type ValidationResponse struct {
	RequiredMissing []string `json:"required_missing"`
	Warnings        []string `json:"warnings"`
	Errors          []string `json:"errors"`
	DocsOK          bool     `json:"docs_ok"`
}

type AssignmentResponse struct {
	InvestigatorID string    `json:"investigator_id,omitempty"`
	SLADays        int       `json:"sla_days,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	AssignedAt     time.Time `json:"assigned_at,omitempty"`
}

// ClaimResponse is the full aggregate view returned by pipeline and decision
// endpoints.
type ClaimResponse struct {
	TransactionID string `json:"transaction_id"`
	ClaimID       string `json:"claim_id"`
	CustomerName  string `json:"customer_name"`
	PolicyNumber  string `json:"policy_number"`

	Amount    float64 `json:"amount"`
	ClaimType string  `json:"claim_type"`

	Validation ValidationResponse `json:"validation"`

	FraudScore    *float64 `json:"fraud_score,omitempty"`
	FraudDecision string   `json:"fraud_decision,omitempty"`

	Assignment AssignmentResponse `json:"assignment"`

	Approved         bool `json:"approved"`
	PaymentProcessed bool `json:"payment_processed"`
	ClaimClosed      bool `json:"claim_closed"`

	FinalDecision  string `json:"final_decision,omitempty"`
	Status         string `json:"status,omitempty"`
	ManagerComment string `json:"manager_comment,omitempty"`

	RegisteredAt time.Time `json:"registered_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`

	Logs []string `json:"logs,omitempty"`
}

func FromClaim(c entities.ClaimAggregate) ClaimResponse {
	return ClaimResponse{
		TransactionID: c.TransactionID,
		ClaimID:       c.ClaimID,
		CustomerName:  c.CustomerName,
		PolicyNumber:  c.PolicyNumber,
		Amount:        c.Amount,
		ClaimType:     c.ClaimType,
		Validation: ValidationResponse{
			RequiredMissing: c.Validation.RequiredMissing,
			Warnings:        c.Validation.Warnings,
			Errors:          c.Validation.Errors,
			DocsOK:          c.Validation.DocsOK,
		},
		FraudScore:    c.FraudScore,
		FraudDecision: string(c.FraudDecision),
		Assignment: AssignmentResponse{
			InvestigatorID: c.Assignment.InvestigatorID,
			SLADays:        c.Assignment.SLADays,
			Reason:         c.Assignment.Reason,
			AssignedAt:     c.Assignment.AssignedAt,
		},
		Approved:         c.Approved,
		PaymentProcessed: c.PaymentProcessed,
		ClaimClosed:      c.ClaimClosed,
		FinalDecision:    string(c.FinalDecision),
		Status:           string(c.Status),
		ManagerComment:   c.ManagerComment,
		RegisteredAt:     c.RegisteredAt,
		UpdatedAt:        c.UpdatedAt,
		Logs:             c.Logs,
	}
}
