// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"capsule/internal/domain/entity"
	domainerrors "capsule/internal/domain/errors"
	"capsule/internal/domain/repository"
	"capsule/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// capsuleRepository implements the repository.CapsuleRepository interface.
type capsuleRepository struct {
	db *gorm.DB
}

// NewCapsuleRepository is the constructor for capsuleRepository.
func NewCapsuleRepository(db *gorm.DB) repository.CapsuleRepository {
	return &capsuleRepository{
		db: db,
	}
}

// CreateCapsule persists a new capsule record.
func (repo *capsuleRepository) CreateCapsule(ctx context.Context, capsule *entity.Capsule) error {
	capsuleM := fromCapsuleDomain(capsule)

	if err := repo.db.WithContext(ctx).Omit("Media").Create(capsuleM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCapsuleCreationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCapsuleCreationFailed.WrapMessage("missing required capsule information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create capsule")
	}

	// Update the entity with generated values
	capsule.ID = capsuleM.ID
	capsule.CreatedAt = capsuleM.CreatedAt
	capsule.UpdatedAt = capsuleM.UpdatedAt

	return nil
}

// CreateMediaRefs persists the media references for a capsule, preserving order.
func (repo *capsuleRepository) CreateMediaRefs(ctx context.Context, capsuleID uuid.UUID, media []entity.MediaRef) error {
	if len(media) == 0 {
		return nil
	}

	mediaModels := make([]*model.CapsuleMediaModel, 0, len(media))
	for i := range media {
		mediaM := fromMediaRefDomain(&media[i])
		mediaM.CapsuleID = capsuleID
		mediaM.Position = i
		mediaModels = append(mediaModels, mediaM)
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(mediaModels, 100).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCapsuleCreationFailed.WrapMessage("invalid capsule reference for media")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCapsuleCreationFailed.WrapMessage("missing required media information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create capsule media")
	}

	// Update the entities with generated values
	for i, mediaM := range mediaModels {
		media[i].ID = mediaM.ID
		media[i].CapsuleID = mediaM.CapsuleID
		media[i].Position = mediaM.Position
		media[i].CreatedAt = mediaM.CreatedAt
	}

	return nil
}

// DeleteCapsule removes a capsule and its media references. Media rows are
// removed by the ON DELETE CASCADE constraint on capsule_media.
func (repo *capsuleRepository) DeleteCapsule(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CapsuleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete capsule")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCapsuleNotFound
	}

	return nil
}

// FindCapsuleByID retrieves a capsule by its ID, scoped to the given owner.
// A capsule owned by another user is reported as not found.
func (repo *capsuleRepository) FindCapsuleByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Capsule, error) {
	var capsuleM model.CapsuleModel

	if err := repo.db.WithContext(ctx).
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&capsuleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCapsuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find capsule by ID")
	}

	return toCapsuleDomain(&capsuleM), nil
}

// FindCapsulesByOwner retrieves all capsules for a specific owner with pagination.
func (repo *capsuleRepository) FindCapsulesByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Capsule, error) {
	var capsuleModels []*model.CapsuleModel

	query := repo.db.WithContext(ctx).
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&capsuleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find capsules by owner")
	}

	capsules := make([]*entity.Capsule, 0, len(capsuleModels))
	for _, capsuleM := range capsuleModels {
		capsules = append(capsules, toCapsuleDomain(capsuleM))
	}

	return capsules, nil
}

// FindDueUnnotifiedPhysical retrieves physical capsules whose release instant
// has passed and which have not yet been notified.
func (repo *capsuleRepository) FindDueUnnotifiedPhysical(ctx context.Context, now time.Time) ([]*entity.Capsule, error) {
	var capsuleModels []*model.CapsuleModel

	if err := repo.db.WithContext(ctx).
		Where("kind = ? AND notified = ? AND release_at <= ?", entity.CapsuleKindPhysical.String(), false, now.UTC()).
		Order("release_at ASC").
		Find(&capsuleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due capsules")
	}

	capsules := make([]*entity.Capsule, 0, len(capsuleModels))
	for _, capsuleM := range capsuleModels {
		capsules = append(capsules, toCapsuleDomain(capsuleM))
	}

	return capsules, nil
}

// MarkNotified transitions a capsule's notified flag to true. The flag is
// monotone, so re-marking an already-notified capsule is not an error.
func (repo *capsuleRepository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CapsuleModel{}).
		Where("id = ?", id).
		Update("notified", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark capsule as notified")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCapsuleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCapsuleDomain converts a GORM CapsuleModel to a domain Capsule entity.
// All timestamps are normalized to UTC at this boundary.
func toCapsuleDomain(data *model.CapsuleModel) *entity.Capsule {
	if data == nil {
		return nil
	}

	capsule := &entity.Capsule{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Message:   data.Message,
		Kind:      entity.CapsuleKind(data.Kind),
		ReleaseAt: data.ReleaseAt.UTC(),
		Notified:  data.Notified,
		CreatedAt: data.CreatedAt.UTC(),
		UpdatedAt: data.UpdatedAt.UTC(),
	}

	if data.Latitude != nil && data.Longitude != nil {
		capsule.Location = &entity.GeoPoint{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
		}
	}

	capsule.Media = make([]entity.MediaRef, 0, len(data.Media))
	for i := range data.Media {
		capsule.Media = append(capsule.Media, *toMediaRefDomain(&data.Media[i]))
	}

	return capsule
}

// fromCapsuleDomain converts a domain Capsule entity to a GORM CapsuleModel.
func fromCapsuleDomain(data *entity.Capsule) *model.CapsuleModel {
	if data == nil {
		return nil
	}

	capsuleM := &model.CapsuleModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Message:   data.Message,
		Kind:      data.Kind.String(),
		ReleaseAt: data.ReleaseAt.UTC(),
		Notified:  data.Notified,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Location != nil {
		lat := data.Location.Latitude
		lng := data.Location.Longitude
		capsuleM.Latitude = &lat
		capsuleM.Longitude = &lng
	}

	return capsuleM
}

// toMediaRefDomain converts a GORM CapsuleMediaModel to a domain MediaRef entity.
func toMediaRefDomain(data *model.CapsuleMediaModel) *entity.MediaRef {
	if data == nil {
		return nil
	}

	return &entity.MediaRef{
		ID:          data.ID,
		CapsuleID:   data.CapsuleID,
		StoragePath: data.StoragePath,
		MediaType:   data.MediaType,
		Position:    data.Position,
		CreatedAt:   data.CreatedAt.UTC(),
	}
}

// fromMediaRefDomain converts a domain MediaRef entity to a GORM CapsuleMediaModel.
func fromMediaRefDomain(data *entity.MediaRef) *model.CapsuleMediaModel {
	if data == nil {
		return nil
	}

	return &model.CapsuleMediaModel{
		ID:          data.ID,
		CapsuleID:   data.CapsuleID,
		StoragePath: data.StoragePath,
		MediaType:   data.MediaType,
		Position:    data.Position,
		CreatedAt:   data.CreatedAt,
	}
}
