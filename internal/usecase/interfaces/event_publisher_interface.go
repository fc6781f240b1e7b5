package interfaces

import (
	"context"
	"time"
)

// StageEvent is one pipeline stage transition, published for downstream
// observability consumers. Publishing is best-effort: a publish failure never
// fails the stage that produced it.
type StageEvent struct {
	TransactionID string    `json:"transaction_id"`
	Stage         string    `json:"stage"`
	Status        string    `json:"status"`
	Detail        string    `json:"detail,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// IEventPublisher abstracts the event transport (Kafka in production).
type IEventPublisher interface {
	PublishStageEvent(ctx context.Context, event StageEvent) error
	Close() error
}
