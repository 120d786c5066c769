package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"capsule/config"
	"capsule/internal/domain/entity"
	"capsule/internal/domain/repository"
	"capsule/internal/domain/service"
	mockRepo "capsule/internal/mocks/repository"
	mockSvc "capsule/internal/mocks/service"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestExpiryService(t *testing.T) (
	usecase.ExpiryUsecase,
	*mockRepo.MockCapsuleRepository,
	*mockSvc.MockExpiryPublisher,
) {
	capsuleRepo := mockRepo.NewMockCapsuleRepository(t)
	publisher := mockSvc.NewMockExpiryPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Scanner: &config.ScannerConfig{
			Interval:       60 * time.Second,
			GraceWindow:    900 * time.Second,
			PublishTimeout: 60 * time.Second,
		},
	}

	svc := NewExpiryService(cfg, capsuleRepo, publisher, logger)

	return svc, capsuleRepo, publisher
}

func duePhysicalCapsule(overdue time.Duration) *entity.Capsule {
	return &entity.Capsule{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Message:   "dig here",
		Kind:      entity.CapsuleKindPhysical,
		ReleaseAt: time.Now().UTC().Add(-overdue),
	}
}

func TestExpiryService_RunOnce_NotifiesDueCapsules(t *testing.T) {
	svc, capsuleRepo, publisher := createTestExpiryService(t)

	ctx := context.Background()
	first := duePhysicalCapsule(time.Minute)
	second := duePhysicalCapsule(2 * time.Minute)

	capsuleRepo.EXPECT().
		FindDueUnnotifiedPhysical(mock.Anything, mock.Anything).
		Return([]*entity.Capsule{first, second}, nil)

	publisher.EXPECT().PublishExpiry(mock.Anything, mock.Anything).Return(nil).Twice()
	capsuleRepo.EXPECT().MarkNotified(mock.Anything, first.ID).Return(nil)
	capsuleRepo.EXPECT().MarkNotified(mock.Anything, second.ID).Return(nil)

	result, err := svc.RunOnce(ctx, time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Examined)
	assert.Equal(t, 2, result.Notified)
	assert.Equal(t, 0, result.Failed)
}

func TestExpiryService_RunOnce_SubstitutesPlaceholderMessage(t *testing.T) {
	svc, capsuleRepo, publisher := createTestExpiryService(t)

	mediaOnly := duePhysicalCapsule(time.Minute)
	mediaOnly.Message = ""

	capsuleRepo.EXPECT().
		FindDueUnnotifiedPhysical(mock.Anything, mock.Anything).
		Return([]*entity.Capsule{mediaOnly}, nil)

	publisher.EXPECT().
		PublishExpiry(mock.Anything, mock.MatchedBy(func(event *service.CapsuleExpiryEvent) bool {
			return event.Message == defaultExpiryMessage
		})).
		Return(nil)
	capsuleRepo.EXPECT().MarkNotified(mock.Anything, mediaOnly.ID).Return(nil)

	result, err := svc.RunOnce(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Notified)
}

func TestExpiryService_RunOnce_EmptyScan(t *testing.T) {
	svc, capsuleRepo, _ := createTestExpiryService(t)

	capsuleRepo.EXPECT().
		FindDueUnnotifiedPhysical(mock.Anything, mock.Anything).
		Return([]*entity.Capsule{}, nil)

	result, err := svc.RunOnce(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Examined)
	assert.Equal(t, 0, result.Notified)
}

func TestExpiryService_RunOnce_PublishFailureIsolated(t *testing.T) {
	svc, capsuleRepo, publisher := createTestExpiryService(t)

	failing := duePhysicalCapsule(time.Minute)
	healthy := duePhysicalCapsule(2 * time.Minute)

	capsuleRepo.EXPECT().
		FindDueUnnotifiedPhysical(mock.Anything, mock.Anything).
		Return([]*entity.Capsule{failing, healthy}, nil)

	publisher.EXPECT().
		PublishExpiry(mock.Anything, mock.MatchedBy(func(event *service.CapsuleExpiryEvent) bool {
			return event.CapsuleID == failing.ID
		})).
		Return(errors.New("broker unavailable"))
	publisher.EXPECT().
		PublishExpiry(mock.Anything, mock.MatchedBy(func(event *service.CapsuleExpiryEvent) bool {
			return event.CapsuleID == healthy.ID
		})).
		Return(nil)

	// Only the capsule whose event made it to the broker gets marked; the
	// failed one stays unnotified for the next scan.
	capsuleRepo.EXPECT().MarkNotified(mock.Anything, healthy.ID).Return(nil)

	result, err := svc.RunOnce(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Examined)
	assert.Equal(t, 1, result.Notified)
	assert.Equal(t, 1, result.Failed)
}

func TestExpiryService_RunOnce_MarkFailureCountsAsFailed(t *testing.T) {
	svc, capsuleRepo, publisher := createTestExpiryService(t)

	capsule := duePhysicalCapsule(time.Minute)

	capsuleRepo.EXPECT().
		FindDueUnnotifiedPhysical(mock.Anything, mock.Anything).
		Return([]*entity.Capsule{capsule}, nil)
	publisher.EXPECT().PublishExpiry(mock.Anything, mock.Anything).Return(nil)
	capsuleRepo.EXPECT().MarkNotified(mock.Anything, capsule.ID).Return(errors.New("connection reset"))

	result, err := svc.RunOnce(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Examined)
	assert.Equal(t, 0, result.Notified)
	assert.Equal(t, 1, result.Failed)
}

func TestExpiryService_RunOnce_RepositoryError(t *testing.T) {
	svc, capsuleRepo, _ := createTestExpiryService(t)

	capsuleRepo.EXPECT().
		FindDueUnnotifiedPhysical(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	result, err := svc.RunOnce(context.Background(), time.Time{})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestExpiryService_RunOnce_OverlappingScansSkipped(t *testing.T) {
	svc, capsuleRepo, publisher := createTestExpiryService(t)

	capsule := duePhysicalCapsule(time.Minute)
	firstScanStarted := make(chan struct{})
	releaseFirstScan := make(chan struct{})

	capsuleRepo.EXPECT().
		FindDueUnnotifiedPhysical(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) ([]*entity.Capsule, error) {
			close(firstScanStarted)
			<-releaseFirstScan

			return []*entity.Capsule{capsule}, nil
		}).
		Once()
	publisher.EXPECT().PublishExpiry(mock.Anything, mock.Anything).Return(nil)
	capsuleRepo.EXPECT().MarkNotified(mock.Anything, capsule.ID).Return(nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.RunOnce(context.Background(), time.Time{})
		assert.NoError(t, err)
	}()

	<-firstScanStarted

	// A second scan while the first is mid-flight is refused, not queued.
	result, err := svc.RunOnce(context.Background(), time.Time{})
	assert.ErrorIs(t, err, usecase.ErrScanInProgress)
	assert.Nil(t, result)

	close(releaseFirstScan)
	wg.Wait()
}

// memCapsuleRepo is an in-memory CapsuleRepository for cross-run scan tests,
// where the notified filter between runs is the behavior under test.
type memCapsuleRepo struct {
	mu       sync.Mutex
	capsules map[uuid.UUID]*entity.Capsule
}

func newMemCapsuleRepo(capsules ...*entity.Capsule) *memCapsuleRepo {
	repo := &memCapsuleRepo{capsules: make(map[uuid.UUID]*entity.Capsule)}
	for _, capsule := range capsules {
		repo.capsules[capsule.ID] = capsule
	}

	return repo
}

func (r *memCapsuleRepo) CreateCapsule(_ context.Context, capsule *entity.Capsule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.capsules[capsule.ID] = capsule

	return nil
}

func (r *memCapsuleRepo) CreateMediaRefs(_ context.Context, _ uuid.UUID, _ []entity.MediaRef) error {
	return nil
}

func (r *memCapsuleRepo) DeleteCapsule(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.capsules, id)

	return nil
}

func (r *memCapsuleRepo) FindCapsuleByID(_ context.Context, id, ownerID uuid.UUID) (*entity.Capsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	capsule, ok := r.capsules[id]
	if !ok || capsule.OwnerID != ownerID {
		return nil, repository.ErrCapsuleNotFound
	}

	return capsule, nil
}

func (r *memCapsuleRepo) FindCapsulesByOwner(_ context.Context, ownerID uuid.UUID, _, _ int) ([]*entity.Capsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var capsules []*entity.Capsule
	for _, capsule := range r.capsules {
		if capsule.OwnerID == ownerID {
			capsules = append(capsules, capsule)
		}
	}

	return capsules, nil
}

func (r *memCapsuleRepo) FindDueUnnotifiedPhysical(_ context.Context, now time.Time) ([]*entity.Capsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var due []*entity.Capsule
	for _, capsule := range r.capsules {
		if capsule.Kind == entity.CapsuleKindPhysical && !capsule.Notified && !capsule.ReleaseAt.After(now) {
			due = append(due, capsule)
		}
	}

	return due, nil
}

func (r *memCapsuleRepo) MarkNotified(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	capsule, ok := r.capsules[id]
	if !ok {
		return repository.ErrCapsuleNotFound
	}
	capsule.Notified = true

	return nil
}

// flakyPublisher fails its first failures calls, then succeeds, counting
// attempts and acknowledged publishes.
type flakyPublisher struct {
	mu        sync.Mutex
	failures  int
	attempts  int
	published int
}

func (p *flakyPublisher) PublishExpiry(_ context.Context, _ *service.CapsuleExpiryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attempts++
	if p.attempts <= p.failures {
		return errors.New("broker unavailable")
	}
	p.published++

	return nil
}

func (p *flakyPublisher) Close() error {
	return nil
}

func newMemExpiryService(capsuleRepo repository.CapsuleRepository, publisher service.ExpiryPublisher) usecase.ExpiryUsecase {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{
		Scanner: &config.ScannerConfig{
			Interval:       60 * time.Second,
			GraceWindow:    900 * time.Second,
			PublishTimeout: 60 * time.Second,
		},
	}

	return NewExpiryService(cfg, capsuleRepo, publisher, logger)
}

func TestExpiryService_RunOnce_SecondRunNotifiesNothing(t *testing.T) {
	capsule := duePhysicalCapsule(time.Minute)
	capsuleRepo := newMemCapsuleRepo(capsule)
	publisher := &flakyPublisher{}
	svc := newMemExpiryService(capsuleRepo, publisher)

	first, err := svc.RunOnce(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Examined)
	assert.Equal(t, 1, first.Notified)

	// Nothing newly due between runs: the notified flag filters the capsule
	// out, so the second run publishes no duplicate payload.
	second, err := svc.RunOnce(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Examined)
	assert.Equal(t, 0, second.Notified)
	assert.Equal(t, 1, publisher.published)
}

func TestExpiryService_RunOnce_RetriesFailedPublishNextRun(t *testing.T) {
	capsule := duePhysicalCapsule(time.Minute)
	capsuleRepo := newMemCapsuleRepo(capsule)
	publisher := &flakyPublisher{failures: 1}
	svc := newMemExpiryService(capsuleRepo, publisher)

	first, err := svc.RunOnce(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Failed)
	assert.Equal(t, 0, first.Notified)
	assert.False(t, capsule.Notified, "a failed publish must leave the capsule pending")

	// The next run picks the capsule up again and the publish succeeds;
	// notified flips true exactly once, after the acknowledged publish.
	second, err := svc.RunOnce(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Notified)
	assert.Equal(t, 0, second.Failed)
	assert.True(t, capsule.Notified)
	assert.Equal(t, 2, publisher.attempts)
	assert.Equal(t, 1, publisher.published)

	third, err := svc.RunOnce(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0, third.Examined)
}

func TestExpiryService_RunOnce_UsesProvidedInstant(t *testing.T) {
	releaseAt := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	capsule := &entity.Capsule{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Message:   "dig here",
		Kind:      entity.CapsuleKindPhysical,
		ReleaseAt: releaseAt,
	}
	capsuleRepo := newMemCapsuleRepo(capsule)
	publisher := &flakyPublisher{}
	svc := newMemExpiryService(capsuleRepo, publisher)

	before, err := svc.RunOnce(context.Background(), releaseAt.Add(-time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, before.Examined)

	after, err := svc.RunOnce(context.Background(), releaseAt.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, after.Notified)
}
