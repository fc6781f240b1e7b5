package interfaces

import (
	"context"

	"seguros_xpto/internal/domain/entities"
)

// IInvestigatorPool abstracts the capacity-bounded investigator roster.
//
// SelectAndReserve must be atomic: picking the least-loaded eligible
// investigator and incrementing its load is one conditional update, never a
// read followed by an unconditional write. Two concurrent claims must not be
// able to pass the capacity check against the same stale count.
//
// SelectAndReserve returns a zero-value record (empty InvestigatorID) when no
// eligible investigator exists; that is not an error.
type IInvestigatorPool interface {
	SelectAndReserve(ctx context.Context, specialization string) (entities.InvestigatorRecord, error)
	// Release decrements the investigator's load, floor-clamped at zero.
	Release(ctx context.Context, investigatorID string) error
}
