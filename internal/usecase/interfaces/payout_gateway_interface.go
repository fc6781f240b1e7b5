package interfaces

import (
	"context"
	"encoding/json"
)

// PayoutRequest carries the fields the payout provider needs for an approved
// claim. The transaction id doubles as the provider external_reference so
// provider events can be reconciled back to the claim.
type PayoutRequest struct {
	TransactionID string
	Amount        float64
	Description   string
}

// IPayoutGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The claims-service uses it to disburse an approved claim and persists the
// provider response payload for traceability.
type IPayoutGateway interface {
	CreatePayout(ctx context.Context, req PayoutRequest) (providerPayoutID string, providerStatus string, providerResponse json.RawMessage, err error)
}
