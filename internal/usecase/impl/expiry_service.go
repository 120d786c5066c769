package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"capsule/config"
	deliverycontext "capsule/internal/delivery/context"
	"capsule/internal/domain/entity"
	"capsule/internal/domain/repository"
	"capsule/internal/domain/service"
	"capsule/internal/usecase"
)

// defaultExpiryMessage is sent when a capsule carries media only, so the
// broker payload always has a renderable message.
const defaultExpiryMessage = "Your time capsule is ready to open"

type expiryService struct {
	capsuleRepo    repository.CapsuleRepository
	publisher      service.ExpiryPublisher
	logger         *slog.Logger
	publishTimeout time.Duration
	graceWindow    time.Duration

	// scanMu serializes scans across the timer and manual triggers.
	scanMu sync.Mutex
}

// NewExpiryService creates a new expiry scanner instance
func NewExpiryService(
	cfg *config.Config,
	capsuleRepo repository.CapsuleRepository,
	publisher service.ExpiryPublisher,
	logger *slog.Logger,
) usecase.ExpiryUsecase {
	return &expiryService{
		capsuleRepo:    capsuleRepo,
		publisher:      publisher,
		logger:         logger,
		publishTimeout: cfg.Scanner.PublishTimeout,
		graceWindow:    cfg.Scanner.GraceWindow,
	}
}

// RunOnce performs a single scan over due, unnotified physical capsules.
// Delivery is at-least-once: the expiry event is published before the
// notified flag is set, so a crash between the two re-sends on the next
// scan. A failed capsule never blocks the rest of the batch. A zero now
// means the current clock; a synthetic instant drives operational testing
// through the manual trigger.
func (s *expiryService) RunOnce(ctx context.Context, now time.Time) (*usecase.ScanResult, error) {
	if !s.scanMu.TryLock() {
		return nil, usecase.ErrScanInProgress
	}
	defer s.scanMu.Unlock()

	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	capsules, err := s.capsuleRepo.FindDueUnnotifiedPhysical(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find due capsules: %w", err)
	}

	result := &usecase.ScanResult{Examined: len(capsules)}
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	for _, capsule := range capsules {
		overdue := now.Sub(capsule.ReleaseAt)
		if overdue > s.graceWindow {
			s.logger.Warn("capsule notification exceeds grace window",
				slog.String("capsule_id", capsule.ID.String()),
				slog.Duration("overdue", overdue),
			)
		}

		if err := s.notifyOne(ctx, requestID, capsule); err != nil {
			result.Failed++
			s.logger.Error("failed to notify capsule expiry",
				slog.String("capsule_id", capsule.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		result.Notified++
	}

	s.logger.Info("expiry scan completed",
		slog.Int("examined", result.Examined),
		slog.Int("notified", result.Notified),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// notifyOne publishes the expiry event for a single capsule and marks it
// notified. Each publish gets its own deadline so one slow broker call
// cannot consume the whole scan.
func (s *expiryService) notifyOne(ctx context.Context, requestID string, capsule *entity.Capsule) error {
	message := capsule.Message
	if message == "" {
		message = defaultExpiryMessage
	}

	event := &service.CapsuleExpiryEvent{
		RequestID: requestID,
		CapsuleID: capsule.ID,
		OwnerID:   capsule.OwnerID,
		Kind:      capsule.Kind,
		ReleaseAt: capsule.ReleaseAt,
		Message:   message,
	}

	publishCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.publisher.PublishExpiry(publishCtx, event); err != nil {
		return fmt.Errorf("failed to publish expiry event: %w", err)
	}

	// Marking after publishing keeps delivery at-least-once; the consumer
	// deduplicates on capsule ID.
	if err := s.capsuleRepo.MarkNotified(ctx, capsule.ID); err != nil {
		return fmt.Errorf("failed to mark capsule notified: %w", err)
	}

	return nil
}
