// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for capsule persistence.
var (
	// ErrCapsuleNotFound is returned when a capsule is absent or owned by
	// a different user; callers must not distinguish the two cases.
	ErrCapsuleNotFound = errors.New("capsule not found")
)

// CapsuleRepository defines the interface for capsule-related database operations.
type CapsuleRepository interface {
	// CreateCapsule persists a new capsule record.
	CreateCapsule(ctx context.Context, capsule *entity.Capsule) error

	// CreateMediaRefs persists the media references for a capsule, preserving order.
	CreateMediaRefs(ctx context.Context, capsuleID uuid.UUID, media []entity.MediaRef) error

	// DeleteCapsule removes a capsule and its media references. It exists
	// solely as the compensating rollback for a failed media insert during
	// creation; committed capsules are never deleted.
	DeleteCapsule(ctx context.Context, id uuid.UUID) error

	// FindCapsuleByID retrieves a capsule by ID, scoped to its owner.
	// Returns ErrCapsuleNotFound for both a missing capsule and one owned
	// by another user.
	FindCapsuleByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Capsule, error)

	// FindCapsulesByOwner retrieves all capsules for a user, newest first, with pagination.
	FindCapsulesByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Capsule, error)

	// FindDueUnnotifiedPhysical retrieves physical capsules whose release
	// instant has passed and which have not yet been notified.
	FindDueUnnotifiedPhysical(ctx context.Context, now time.Time) ([]*entity.Capsule, error)

	// MarkNotified transitions a capsule's notified flag false -> true.
	// The transition is monotone; the flag is never cleared.
	MarkNotified(ctx context.Context, id uuid.UUID) error
}
