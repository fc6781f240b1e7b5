package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

var (
	ErrInvalidClaimInput          = errors.New("invalid claim input")
	ErrInvalidDecision            = errors.New("invalid decision")
	ErrClaimNotApproved           = errors.New("claim not approved")
	ErrPayoutAlreadyProcessed     = errors.New("payout already processed")
	ErrPayoutGatewayNotConfigured = errors.New("payout gateway not configured")
	ErrDecisionPending            = errors.New("claim has no final decision")
	ErrClaimAlreadyClosed         = errors.New("claim already closed")
)

const (
	statusCacheTTL     = 5 * time.Second
	statusCacheCleanup = time.Minute
)

// RegisterClaimInput is the customer-facing registration payload. Document
// text arrives pre-extracted; OCR happens upstream of this service.
type RegisterClaimInput struct {
	ClaimID      string
	CustomerName string
	PolicyNumber string
	Description  string
	Amount       float64
	ClaimType    string
	Documents    []entities.DocumentRecord
}

// StatusView is the customer-facing status projection. It exposes persisted
// state only, never internal stage errors.
type StatusView struct {
	TransactionID string
	Status        entities.ClaimStatus
	FinalDecision entities.FinalDecision
}

// IClaimUseCase exposes the claim operations outside the pipeline run itself.

type IClaimUseCase interface {
	Register(ctx context.Context, input RegisterClaimInput) (entities.ClaimAggregate, error)
	GetStatus(ctx context.Context, transactionID string) (StatusView, error)
	OverrideDecision(ctx context.Context, transactionID string, decision entities.FinalDecision, comment string) (entities.ClaimAggregate, error)
	ProcessPayout(ctx context.Context, transactionID string) (entities.ClaimAggregate, error)
	CloseClaim(ctx context.Context, transactionID string) (entities.ClaimAggregate, error)
}

type ClaimUseCase struct {
	claims      interfaces.IClaimRepository
	pool        interfaces.IInvestigatorPool
	gateway     interfaces.IPayoutGateway // nil when unconfigured
	statusCache *gocache.Cache
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(claims interfaces.IClaimRepository, pool interfaces.IInvestigatorPool, gateway interfaces.IPayoutGateway) *ClaimUseCase {
	return &ClaimUseCase{
		claims:      claims,
		pool:        pool,
		gateway:     gateway,
		statusCache: gocache.New(statusCacheTTL, statusCacheCleanup),
	}
}

// Register creates the claim aggregate and runs the registration stage. The
// transaction id is generated here, exactly once; re-registration of the same
// aggregate would keep it.
func (u *ClaimUseCase) Register(ctx context.Context, input RegisterClaimInput) (entities.ClaimAggregate, error) {
	input.ClaimID = strings.TrimSpace(input.ClaimID)
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.PolicyNumber = strings.TrimSpace(input.PolicyNumber)
	input.ClaimType = strings.TrimSpace(input.ClaimType)
	if input.ClaimID == "" || input.CustomerName == "" || input.PolicyNumber == "" || input.ClaimType == "" {
		return entities.ClaimAggregate{}, ErrInvalidClaimInput
	}
	if input.Amount < 0 {
		return entities.ClaimAggregate{}, ErrInvalidClaimInput
	}

	claim := entities.ClaimAggregate{
		ClaimID:       input.ClaimID,
		CustomerName:  input.CustomerName,
		PolicyNumber:  input.PolicyNumber,
		Amount:        input.Amount,
		ClaimType:     input.ClaimType,
		ExtractedText: input.Description,
		Documents:     input.Documents,
	}

	runRegistrationStage(ctx, u.claims, &claim)
	return claim, nil
}

// GetStatus returns the persisted status projection, cached briefly to absorb
// customer polling.
func (u *ClaimUseCase) GetStatus(ctx context.Context, transactionID string) (StatusView, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return StatusView{}, ErrInvalidTransactionID
	}

	if cached, ok := u.statusCache.Get(transactionID); ok {
		return cached.(StatusView), nil
	}

	claim, err := u.claims.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return StatusView{}, err
	}
	if claim.TransactionID == "" {
		return StatusView{}, ErrClaimNotFound
	}

	view := StatusView{
		TransactionID: claim.TransactionID,
		Status:        claim.Status,
		FinalDecision: claim.FinalDecision,
	}
	u.statusCache.SetDefault(transactionID, view)
	return view, nil
}

// OverrideDecision lets a manager overwrite the stored decision directly. It
// validates the decision before any read or write and never re-runs pipeline
// stages.
func (u *ClaimUseCase) OverrideDecision(ctx context.Context, transactionID string, decision entities.FinalDecision, comment string) (entities.ClaimAggregate, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.ClaimAggregate{}, ErrInvalidTransactionID
	}
	decision = entities.FinalDecision(strings.ToUpper(strings.TrimSpace(string(decision))))
	if !entities.IsValidOverrideDecision(decision) {
		return entities.ClaimAggregate{}, ErrInvalidDecision
	}

	claim, err := u.claims.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return entities.ClaimAggregate{}, err
	}
	if claim.TransactionID == "" {
		return entities.ClaimAggregate{}, ErrClaimNotFound
	}

	status := entities.ClaimStatus(decision)
	entry := fmt.Sprintf("[override] decision=%s", decision)
	fields := map[string]any{
		"final_decision": decision,
		"status":         status,
		"decision_made":  true,
		"logs":           []string{entry},
		"updated_at":     time.Now().UTC(),
	}
	if comment = strings.TrimSpace(comment); comment != "" {
		fields["manager_comment"] = comment
	}

	if err := u.claims.UpdateFields(ctx, transactionID, fields); err != nil {
		return entities.ClaimAggregate{}, err
	}
	u.statusCache.Delete(transactionID)
	log.Printf("[claim][usecase] decision overridden transaction_id=%s decision=%s", transactionID, decision)

	claim.FinalDecision = decision
	claim.Status = status
	claim.DecisionMade = true
	claim.ManagerComment = comment
	claim.AppendLog(entry)
	return claim, nil
}

// ProcessPayout disburses an approved claim through the payout gateway.
// Unlike completion failures, a gateway failure surfaces to the caller: money
// movement is never silently degraded.
func (u *ClaimUseCase) ProcessPayout(ctx context.Context, transactionID string) (entities.ClaimAggregate, error) {
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
	if claim.FinalDecision != entities.DecisionApproved {
		return entities.ClaimAggregate{}, ErrClaimNotApproved
	}
	if claim.PaymentProcessed {
		return entities.ClaimAggregate{}, ErrPayoutAlreadyProcessed
	}
	if u.gateway == nil {
		return entities.ClaimAggregate{}, ErrPayoutGatewayNotConfigured
	}

	payoutID, providerStatus, _, err := u.gateway.CreatePayout(ctx, interfaces.PayoutRequest{
		TransactionID: claim.TransactionID,
		Amount:        claim.Amount,
		Description:   fmt.Sprintf("Claim %s payout", claim.ClaimID),
	})
	if err != nil {
		return entities.ClaimAggregate{}, err
	}

	entry := fmt.Sprintf("[payout] provider_payout_id=%s provider_status=%s", payoutID, providerStatus)
	if err := u.claims.UpdateFields(ctx, transactionID, map[string]any{
		"payment_processed": true,
		"status":            entities.ClaimStatusPaid,
		"logs":              []string{entry},
		"updated_at":        time.Now().UTC(),
	}); err != nil {
		return entities.ClaimAggregate{}, err
	}
	u.statusCache.Delete(transactionID)
	log.Printf("[payout][usecase] payout processed transaction_id=%s provider_payout_id=%s", transactionID, payoutID)

	claim.PaymentProcessed = true
	claim.Status = entities.ClaimStatusPaid
	claim.AppendLog(entry)
	return claim, nil
}

// CloseClaim closes a decided claim and releases its investigator slot, if
// one was reserved. The release is atomic and floor-clamped in the pool.
func (u *ClaimUseCase) CloseClaim(ctx context.Context, transactionID string) (entities.ClaimAggregate, error) {
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
	if claim.FinalDecision == "" {
		return entities.ClaimAggregate{}, ErrDecisionPending
	}
	if claim.ClaimClosed {
		return entities.ClaimAggregate{}, ErrClaimAlreadyClosed
	}

	if claim.Assignment.InvestigatorID != "" {
		if err := u.pool.Release(ctx, claim.Assignment.InvestigatorID); err != nil {
			return entities.ClaimAggregate{}, err
		}
	}

	entry := "[closure] claim closed"
	if err := u.claims.UpdateFields(ctx, transactionID, map[string]any{
		"claim_closed": true,
		"status":       entities.ClaimStatusClosed,
		"logs":         []string{entry},
		"updated_at":   time.Now().UTC(),
	}); err != nil {
		return entities.ClaimAggregate{}, err
	}
	u.statusCache.Delete(transactionID)
	log.Printf("[claim][usecase] claim closed transaction_id=%s", transactionID)

	claim.ClaimClosed = true
	claim.Status = entities.ClaimStatusClosed
	claim.AppendLog(entry)
	return claim, nil
}
