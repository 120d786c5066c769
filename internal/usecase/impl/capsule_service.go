package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"capsule/config"
	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/domain/gate"
	"capsule/internal/domain/repository"
	"capsule/internal/domain/service"
	"capsule/internal/usecase"

	"github.com/google/uuid"
)

type capsuleService struct {
	capsuleRepo  repository.CapsuleRepository
	mediaStorage service.MediaStorage
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger
	listLimit    int
	mediaURLTTL  time.Duration
}

// NewCapsuleService creates a new capsule service instance
func NewCapsuleService(
	cfg *config.Config,
	capsuleRepo repository.CapsuleRepository,
	mediaStorage service.MediaStorage,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.CapsuleUsecase {
	return &capsuleService{
		capsuleRepo:  capsuleRepo,
		mediaStorage: mediaStorage,
		qrcodeSvc:    qrcodeSvc,
		logger:       logger,
		listLimit:    cfg.Capsule.ListLimit,
		mediaURLTTL:  cfg.Capsule.MediaURLTTL,
	}
}

// CreateCapsule validates and seals a new capsule for the given owner.
// All validation happens before any write; a failed media insert triggers
// a compensating delete of the capsule row so no half-sealed capsule survives.
func (s *capsuleService) CreateCapsule(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateCapsuleInput) (*entity.Capsule, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrInvalidCapsuleKind
	}
	if input.ReleaseAt.IsZero() {
		return nil, domainerrors.ErrReleaseTimeRequired
	}
	if input.Message == "" && len(input.Media) == 0 {
		return nil, domainerrors.ErrCapsuleEmpty
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrLocationIncomplete
	}

	capsule := &entity.Capsule{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Message:   input.Message,
		Kind:      input.Kind,
		ReleaseAt: input.ReleaseAt.UTC(),
	}
	if input.Latitude != nil {
		capsule.Location = &entity.GeoPoint{
			Latitude:  *input.Latitude,
			Longitude: *input.Longitude,
		}
	}

	if err := s.capsuleRepo.CreateCapsule(ctx, capsule); err != nil {
		return nil, fmt.Errorf("failed to create capsule: %w", err)
	}

	if len(input.Media) > 0 {
		media := make([]entity.MediaRef, 0, len(input.Media))
		for _, m := range input.Media {
			media = append(media, entity.MediaRef{
				StoragePath: m.StoragePath,
				MediaType:   m.MediaType,
			})
		}

		if err := s.capsuleRepo.CreateMediaRefs(ctx, capsule.ID, media); err != nil {
			// Compensating delete: the capsule row must not outlive its
			// failed media references.
			if delErr := s.capsuleRepo.DeleteCapsule(ctx, capsule.ID); delErr != nil {
				s.logger.Error("failed to roll back capsule after media insert failure",
					slog.String("capsule_id", capsule.ID.String()),
					slog.Any("error", delErr),
				)
			}

			return nil, fmt.Errorf("failed to attach capsule media: %w", err)
		}

		capsule.Media = media
	}

	return capsule, nil
}

// ListCapsules retrieves the owner's capsules, newest first, with pagination
func (s *capsuleService) ListCapsules(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Capsule, error) {
	if limit <= 0 || limit > s.listLimit {
		limit = s.listLimit
	}
	if offset < 0 {
		offset = 0
	}

	capsules, err := s.capsuleRepo.FindCapsulesByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list capsules: %w", err)
	}

	return capsules, nil
}

// GetCapsule retrieves a single capsule without revealing its contents
func (s *capsuleService) GetCapsule(ctx context.Context, ownerID, capsuleID uuid.UUID) (*entity.Capsule, error) {
	capsule, err := s.capsuleRepo.FindCapsuleByID(ctx, capsuleID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrCapsuleNotFound) {
			return nil, domainerrors.ErrCapsuleNotFound
		}

		return nil, fmt.Errorf("failed to get capsule: %w", err)
	}

	return capsule, nil
}

// CheckCapsule evaluates the release gate for a capsule at the requester's position
func (s *capsuleService) CheckCapsule(ctx context.Context, ownerID, capsuleID uuid.UUID, position *entity.GeoPoint) (*usecase.CheckResult, error) {
	capsule, err := s.GetCapsule(ctx, ownerID, capsuleID)
	if err != nil {
		return nil, err
	}

	decision := gate.CanOpen(capsule, position, time.Now())

	return &usecase.CheckResult{
		Allowed: decision.Allowed,
		Reason:  decision.Reason,
		OpensAt: decision.OpensAt,
	}, nil
}

// OpenCapsule evaluates the release gate and, if it passes, reveals the
// capsule contents with resolved media URLs
func (s *capsuleService) OpenCapsule(ctx context.Context, ownerID, capsuleID uuid.UUID, position *entity.GeoPoint) (*usecase.OpenResult, error) {
	capsule, err := s.GetCapsule(ctx, ownerID, capsuleID)
	if err != nil {
		return nil, err
	}

	decision := gate.CanOpen(capsule, position, time.Now())
	if !decision.Allowed {
		return nil, domainerrors.ErrCapsuleSealed.WithDetails(decision.Reason)
	}

	mediaURLs := make([]usecase.MediaURL, 0, len(capsule.Media))
	for _, m := range capsule.Media {
		url, err := s.mediaStorage.SignedURL(ctx, m.StoragePath, s.mediaURLTTL)
		if err != nil {
			return nil, domainerrors.ErrMediaUnavailable.WrapMessage(
				fmt.Sprintf("failed to resolve media %s", m.ID))
		}

		mediaURLs = append(mediaURLs, usecase.MediaURL{
			MediaType: m.MediaType,
			URL:       url,
		})
	}

	return &usecase.OpenResult{
		Capsule: capsule,
		Media:   mediaURLs,
	}, nil
}

// GenerateCapsuleQR produces a QR code image referencing a capsule
func (s *capsuleService) GenerateCapsuleQR(ctx context.Context, ownerID, capsuleID uuid.UUID) ([]byte, error) {
	// Ownership check before encoding anything.
	capsule, err := s.GetCapsule(ctx, ownerID, capsuleID)
	if err != nil {
		return nil, err
	}

	pngBytes, err := s.qrcodeSvc.GenerateCapsuleQR(capsule.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate capsule QR code: %w", err)
	}

	return pngBytes, nil
}

// ResolveCapsuleQR resolves scanned QR code data to the referenced capsule,
// scoped to the caller
func (s *capsuleService) ResolveCapsuleQR(ctx context.Context, ownerID uuid.UUID, qrData string) (*entity.Capsule, error) {
	capsuleID, err := s.qrcodeSvc.ParseCapsuleQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("QR code does not reference a capsule")
	}

	// Owner scoping keeps a scanned foreign capsule indistinguishable from
	// a missing one.
	return s.GetCapsule(ctx, ownerID, capsuleID)
}
