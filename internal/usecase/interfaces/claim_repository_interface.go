package interfaces

import (
	"context"

	"seguros_xpto/internal/domain/entities"
)

// IClaimRepository abstracts DynamoDB persistence for the claim aggregate.
//
// Conventions (matching the rest of the persistence layer):
//   - GetByTransactionID returns a zero-value aggregate (empty TransactionID)
//     when the claim does not exist; callers translate that into NotFound.
//   - UpdateFields applies a partial update; the special key "logs" appends to
//     the audit trail instead of overwriting it.
type IClaimRepository interface {
	UpsertRegistration(ctx context.Context, claim entities.ClaimAggregate) error
	InsertDocuments(ctx context.Context, transactionID string, docs []entities.DocumentRecord) error
	GetByTransactionID(ctx context.Context, transactionID string) (entities.ClaimAggregate, error)
	UpdateFields(ctx context.Context, transactionID string, fields map[string]any) error
}
