package usecase

import (
	"context"
	"time"

	"capsule/internal/domain/entity"

	"github.com/google/uuid"
)

// MediaInput represents one media attachment supplied at capsule creation
type MediaInput struct {
	StoragePath string `json:"storage_path"`
	MediaType   string `json:"media_type"`
}

// CreateCapsuleInput carries the validated parameters for sealing a new capsule
type CreateCapsuleInput struct {
	Message   string
	Media     []MediaInput
	ReleaseAt time.Time
	Latitude  *float64
	Longitude *float64
	Kind      entity.CapsuleKind
}

// CheckResult reports whether a capsule may be opened, without revealing contents
type CheckResult struct {
	Allowed bool
	// Reason is empty when the capsule may be opened
	Reason string
	// OpensAt is set only when the capsule is still temporally sealed
	OpensAt *time.Time
}

// MediaURL pairs a media reference with a client-fetchable URL
type MediaURL struct {
	MediaType string `json:"media_type"`
	URL       string `json:"url"`
}

// OpenResult carries the revealed contents of an opened capsule
type OpenResult struct {
	Capsule *entity.Capsule
	Media   []MediaURL
}

// CapsuleUsecase defines the interface for capsule management use cases
type CapsuleUsecase interface {
	// CreateCapsule validates and seals a new capsule for the given owner
	CreateCapsule(ctx context.Context, ownerID uuid.UUID, input *CreateCapsuleInput) (*entity.Capsule, error)

	// ListCapsules retrieves the owner's capsules, newest first, with pagination
	ListCapsules(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Capsule, error)

	// GetCapsule retrieves a single capsule without revealing its contents
	GetCapsule(ctx context.Context, ownerID, capsuleID uuid.UUID) (*entity.Capsule, error)

	// CheckCapsule evaluates the release gate for a capsule at the requester's position
	CheckCapsule(ctx context.Context, ownerID, capsuleID uuid.UUID, position *entity.GeoPoint) (*CheckResult, error)

	// OpenCapsule evaluates the release gate and, if it passes, reveals the
	// capsule contents with resolved media URLs
	OpenCapsule(ctx context.Context, ownerID, capsuleID uuid.UUID, position *entity.GeoPoint) (*OpenResult, error)

	// GenerateCapsuleQR produces a QR code image referencing a capsule
	GenerateCapsuleQR(ctx context.Context, ownerID, capsuleID uuid.UUID) ([]byte, error)

	// ResolveCapsuleQR resolves scanned QR code data to the referenced
	// capsule, scoped to the caller; foreign capsules surface as not found
	ResolveCapsuleQR(ctx context.Context, ownerID uuid.UUID, qrData string) (*entity.Capsule, error)
}
