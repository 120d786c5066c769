package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"capsule/config"
	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/domain/gate"
	"capsule/internal/domain/repository"
	mockRepo "capsule/internal/mocks/repository"
	mockSvc "capsule/internal/mocks/service"
	"capsule/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCapsuleService(t *testing.T) (
	usecase.CapsuleUsecase,
	*mockRepo.MockCapsuleRepository,
	*mockSvc.MockMediaStorage,
	*mockSvc.MockQRCodeService,
) {
	capsuleRepo := mockRepo.NewMockCapsuleRepository(t)
	mediaStorage := mockSvc.NewMockMediaStorage(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Capsule: &config.CapsuleConfig{
			ListLimit:   50,
			MediaURLTTL: 15 * time.Minute,
		},
	}

	service := NewCapsuleService(cfg, capsuleRepo, mediaStorage, qrcodeSvc, logger)

	return service, capsuleRepo, mediaStorage, qrcodeSvc
}

func TestCapsuleService_CreateCapsule_Success(t *testing.T) {
	service, capsuleRepo, _, _ := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	releaseAt := time.Date(2026, 12, 25, 8, 0, 0, 0, time.UTC)

	capsuleRepo.EXPECT().CreateCapsule(ctx, mock.Anything).Return(nil)

	capsule, err := service.CreateCapsule(ctx, ownerID, &usecase.CreateCapsuleInput{
		Message:   "open me at christmas",
		ReleaseAt: releaseAt,
		Kind:      entity.CapsuleKindDigital,
	})

	require.NoError(t, err)
	require.NotNil(t, capsule)
	assert.Equal(t, ownerID, capsule.OwnerID)
	assert.Equal(t, releaseAt, capsule.ReleaseAt)
	assert.Empty(t, capsule.Media)
}

func TestCapsuleService_CreateCapsule_NormalizesReleaseAtToUTC(t *testing.T) {
	service, capsuleRepo, _, _ := createTestCapsuleService(t)

	ctx := context.Background()
	taipei := time.FixedZone("CST", 8*3600)
	releaseAt := time.Date(2026, 12, 25, 16, 0, 0, 0, taipei)

	capsuleRepo.EXPECT().CreateCapsule(ctx, mock.Anything).Return(nil)

	capsule, err := service.CreateCapsule(ctx, uuid.New(), &usecase.CreateCapsuleInput{
		Message:   "zone test",
		ReleaseAt: releaseAt,
		Kind:      entity.CapsuleKindDigital,
	})

	require.NoError(t, err)
	assert.Equal(t, time.UTC, capsule.ReleaseAt.Location())
	assert.True(t, capsule.ReleaseAt.Equal(releaseAt))
}

func TestCapsuleService_CreateCapsule_ValidationBeforeWrites(t *testing.T) {
	service, _, _, _ := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	releaseAt := time.Now().Add(time.Hour)
	lat := 25.0

	// No repository expectations: validation failures must not touch storage.
	tests := []struct {
		name    string
		input   *usecase.CreateCapsuleInput
		wantErr error
	}{
		{
			name: "empty contents",
			input: &usecase.CreateCapsuleInput{
				ReleaseAt: releaseAt,
				Kind:      entity.CapsuleKindDigital,
			},
			wantErr: domainerrors.ErrCapsuleEmpty,
		},
		{
			name: "missing release time",
			input: &usecase.CreateCapsuleInput{
				Message: "hello",
				Kind:    entity.CapsuleKindDigital,
			},
			wantErr: domainerrors.ErrReleaseTimeRequired,
		},
		{
			name: "latitude without longitude",
			input: &usecase.CreateCapsuleInput{
				Message:   "hello",
				ReleaseAt: releaseAt,
				Kind:      entity.CapsuleKindPhysical,
				Latitude:  &lat,
			},
			wantErr: domainerrors.ErrLocationIncomplete,
		},
		{
			name: "invalid kind",
			input: &usecase.CreateCapsuleInput{
				Message:   "hello",
				ReleaseAt: releaseAt,
				Kind:      entity.CapsuleKind("quantum"),
			},
			wantErr: domainerrors.ErrInvalidCapsuleKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capsule, err := service.CreateCapsule(ctx, ownerID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, capsule)
		})
	}
}

func TestCapsuleService_CreateCapsule_CompensatingDeleteOnMediaFailure(t *testing.T) {
	service, capsuleRepo, _, _ := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	capsuleRepo.EXPECT().CreateCapsule(ctx, mock.Anything).Return(nil)
	capsuleRepo.EXPECT().
		CreateMediaRefs(ctx, mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))
	capsuleRepo.EXPECT().DeleteCapsule(ctx, mock.Anything).Return(nil)

	capsule, err := service.CreateCapsule(ctx, ownerID, &usecase.CreateCapsuleInput{
		ReleaseAt: time.Now().Add(time.Hour),
		Kind:      entity.CapsuleKindDigital,
		Media: []usecase.MediaInput{
			{StoragePath: "capsules/photo.jpg", MediaType: "image/jpeg"},
		},
	})

	assert.Error(t, err)
	assert.Nil(t, capsule)
}

func TestCapsuleService_GetCapsule_NotFound(t *testing.T) {
	service, capsuleRepo, _, _ := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	capsuleID := uuid.New()

	capsuleRepo.EXPECT().
		FindCapsuleByID(ctx, capsuleID, ownerID).
		Return(nil, repository.ErrCapsuleNotFound)

	capsule, err := service.GetCapsule(ctx, ownerID, capsuleID)

	assert.ErrorIs(t, err, domainerrors.ErrCapsuleNotFound)
	assert.Nil(t, capsule)
}

func TestCapsuleService_CheckCapsule_TemporallySealed(t *testing.T) {
	service, capsuleRepo, _, _ := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	capsuleID := uuid.New()
	releaseAt := time.Now().UTC().Add(24 * time.Hour)

	capsuleRepo.EXPECT().
		FindCapsuleByID(ctx, capsuleID, ownerID).
		Return(&entity.Capsule{
			ID:        capsuleID,
			OwnerID:   ownerID,
			Message:   "sealed",
			Kind:      entity.CapsuleKindDigital,
			ReleaseAt: releaseAt,
		}, nil)

	result, err := service.CheckCapsule(ctx, ownerID, capsuleID, nil)

	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, gate.ReasonNotYetReleased, result.Reason)
	require.NotNil(t, result.OpensAt)
	assert.True(t, result.OpensAt.Equal(releaseAt))
}

func TestCapsuleService_OpenCapsule_Success(t *testing.T) {
	service, capsuleRepo, mediaStorage, _ := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	capsuleID := uuid.New()

	capsuleRepo.EXPECT().
		FindCapsuleByID(ctx, capsuleID, ownerID).
		Return(&entity.Capsule{
			ID:        capsuleID,
			OwnerID:   ownerID,
			Message:   "surprise",
			Kind:      entity.CapsuleKindDigital,
			ReleaseAt: time.Now().UTC().Add(-time.Hour),
			Media: []entity.MediaRef{
				{StoragePath: "capsules/photo.jpg", MediaType: "image/jpeg"},
			},
		}, nil)

	mediaStorage.EXPECT().
		SignedURL(ctx, "capsules/photo.jpg", 15*time.Minute).
		Return("https://storage.example.com/capsules/photo.jpg?sig=abc", nil)

	result, err := service.OpenCapsule(ctx, ownerID, capsuleID, nil)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "surprise", result.Capsule.Message)
	require.Len(t, result.Media, 1)
	assert.Equal(t, "https://storage.example.com/capsules/photo.jpg?sig=abc", result.Media[0].URL)
}

func TestCapsuleService_OpenCapsule_GeofencedTooFar(t *testing.T) {
	service, capsuleRepo, _, _ := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	capsuleID := uuid.New()

	capsuleRepo.EXPECT().
		FindCapsuleByID(ctx, capsuleID, ownerID).
		Return(&entity.Capsule{
			ID:        capsuleID,
			OwnerID:   ownerID,
			Message:   "buried treasure",
			Kind:      entity.CapsuleKindPhysical,
			ReleaseAt: time.Now().UTC().Add(-time.Hour),
			Location:  &entity.GeoPoint{Latitude: -23.5505, Longitude: -46.6333},
		}, nil)

	// Roughly 5.5 km away from the capsule location.
	result, err := service.OpenCapsule(ctx, ownerID, capsuleID, &entity.GeoPoint{
		Latitude:  -23.6005,
		Longitude: -46.6333,
	})

	assert.Nil(t, result)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CAPSULE_SEALED", appErr.ErrorCode())
	assert.Equal(t, gate.ReasonWrongLocation, appErr.Details())
}

func TestCapsuleService_ListCapsules_ClampsLimit(t *testing.T) {
	service, capsuleRepo, _, _ := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	capsuleRepo.EXPECT().
		FindCapsulesByOwner(ctx, ownerID, 50, 0).
		Return([]*entity.Capsule{}, nil)

	capsules, err := service.ListCapsules(ctx, ownerID, 10000, -3)

	require.NoError(t, err)
	assert.Empty(t, capsules)
}

func TestCapsuleService_GenerateCapsuleQR_OwnershipChecked(t *testing.T) {
	service, capsuleRepo, _, qrcodeSvc := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	capsuleID := uuid.New()

	capsuleRepo.EXPECT().
		FindCapsuleByID(ctx, capsuleID, ownerID).
		Return(&entity.Capsule{ID: capsuleID, OwnerID: ownerID}, nil)
	qrcodeSvc.EXPECT().GenerateCapsuleQR(capsuleID).Return([]byte("png-bytes"), nil)

	pngBytes, err := service.GenerateCapsuleQR(ctx, ownerID, capsuleID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), pngBytes)
}

func TestCapsuleService_ResolveCapsuleQR_Success(t *testing.T) {
	service, capsuleRepo, _, qrcodeSvc := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	capsule := &entity.Capsule{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Message:   "buried in the garden",
		Kind:      entity.CapsuleKindPhysical,
		ReleaseAt: time.Now().UTC().Add(-time.Hour),
	}

	qrcodeSvc.EXPECT().ParseCapsuleQR("scanned-data").Return(capsule.ID, nil)
	capsuleRepo.EXPECT().FindCapsuleByID(ctx, capsule.ID, ownerID).Return(capsule, nil)

	resolved, err := service.ResolveCapsuleQR(ctx, ownerID, "scanned-data")

	require.NoError(t, err)
	assert.Equal(t, capsule.ID, resolved.ID)
}

func TestCapsuleService_ResolveCapsuleQR_InvalidData(t *testing.T) {
	service, _, _, qrcodeSvc := createTestCapsuleService(t)

	qrcodeSvc.EXPECT().ParseCapsuleQR("garbage").Return(uuid.Nil, errors.New("not a capsule payload"))

	resolved, err := service.ResolveCapsuleQR(context.Background(), uuid.New(), "garbage")

	assert.Nil(t, resolved)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCapsuleService_ResolveCapsuleQR_ForeignCapsuleHidden(t *testing.T) {
	service, capsuleRepo, _, qrcodeSvc := createTestCapsuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	foreignID := uuid.New()

	qrcodeSvc.EXPECT().ParseCapsuleQR("scanned-data").Return(foreignID, nil)
	capsuleRepo.EXPECT().FindCapsuleByID(ctx, foreignID, ownerID).Return(nil, repository.ErrCapsuleNotFound)

	resolved, err := service.ResolveCapsuleQR(ctx, ownerID, "scanned-data")

	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, domainerrors.ErrCapsuleNotFound)
}
