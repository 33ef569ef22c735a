package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/mapper"
	"ai-training-be/internal/model"
	"ai-training-be/internal/repository/contract"
	"ai-training-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionRepositoryImpl) CreateIfAbsent(ctx context.Context, session *entity.TrainingSession) (bool, error) {
	m := r.mapper.ToModel(session)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(m)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SessionRepositoryImpl) Upsert(ctx context.Context, session *entity.TrainingSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TrainingSession{}, "id = ?", id).Error
}

func (r *SessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingSession, error) {
	var m model.TrainingSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingSession, error) {
	var models []*model.TrainingSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TrainingSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SessionRepositoryImpl) SetAssessment(ctx context.Context, id uuid.UUID, status entity.AssessmentStatus, result json.RawMessage, processedExchanges int, assessedAt time.Time) error {
	updates := map[string]interface{}{
		"assessment_status":   string(status),
		"processed_exchanges": processedExchanges,
		"assessed_at":         assessedAt,
	}
	if len(result) > 0 {
		updates["assessment_result"] = datatypes.JSON(result)
	}
	return r.db.WithContext(ctx).
		Model(&model.TrainingSession{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *SessionRepositoryImpl) SetRecording(ctx context.Context, id uuid.UUID, audioURL string, fileSize int64) error {
	return r.db.WithContext(ctx).
		Model(&model.TrainingSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"audio_url":       audioURL,
			"audio_file_size": fileSize,
		}).Error
}
