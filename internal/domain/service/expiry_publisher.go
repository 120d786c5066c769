// Package service defines interfaces for domain services that depend on
// external infrastructure.
package service

import (
	"context"
	"time"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// CapsuleExpiryEvent is the message published when a physical capsule's
// release instant has passed. Delivery is at-least-once; consumers must
// treat the capsule ID as the idempotency key.
type CapsuleExpiryEvent struct {
	RequestID string             `json:"request_id,omitempty"`
	CapsuleID uuid.UUID          `json:"capsule_id"`
	OwnerID   uuid.UUID          `json:"owner_id"`
	Kind      entity.CapsuleKind `json:"kind"`
	ReleaseAt time.Time          `json:"release_at"`
	Message   string             `json:"message,omitempty"`
}

// ExpiryPublisher sends capsule expiry events to a message broker.
type ExpiryPublisher interface {
	// PublishExpiry sends a single expiry event. The context carries the
	// per-publish deadline; a timeout or broker failure must be returned
	// so the caller can retry the capsule on a later scan.
	PublishExpiry(ctx context.Context, event *CapsuleExpiryEvent) error

	// Close releases the underlying broker connection.
	Close() error
}
