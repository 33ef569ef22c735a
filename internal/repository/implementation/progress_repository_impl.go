package implementation

import (
	"context"
	"errors"
	"time"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/mapper"
	"ai-training-be/internal/model"
	"ai-training-be/internal/repository/contract"
	"ai-training-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewAttemptRepository(db *gorm.DB) contract.AttemptRepository {
	return &AttemptRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *AttemptRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AttemptRepositoryImpl) Create(ctx context.Context, attempt *entity.QuestionAttempt) error {
	m := r.mapper.AttemptToModel(attempt)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*attempt = *r.mapper.AttemptToEntity(m)
	return nil
}

func (r *AttemptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuestionAttempt, error) {
	var models []*model.QuestionAttempt
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.AttemptsToEntities(models), nil
}

func (r *AttemptRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.QuestionAttempt{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type ProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewProgressRepository(db *gorm.DB) contract.ProgressRepository {
	return &ProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *ProgressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProgressRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TopicProgress, error) {
	var m model.EmployeeTopicProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProgressToEntity(&m), nil
}

func (r *ProgressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TopicProgress, error) {
	var models []*model.EmployeeTopicProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ProgressListToEntities(models), nil
}

func (r *ProgressRepositoryImpl) RecordAttempt(ctx context.Context, employeeId, topicId uuid.UUID, correct bool) (*entity.TopicProgress, error) {
	correctIncrement := 0
	if correct {
		correctIncrement = 1
	}

	m := &model.EmployeeTopicProgress{
		EmployeeId:      employeeId,
		TopicId:         topicId,
		TotalAttempts:   1,
		CorrectAttempts: correctIncrement,
	}

	// One statement: insert the row or bump the counters atomically.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "topic_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_attempts":   gorm.Expr("employee_topic_progress.total_attempts + 1"),
				"correct_attempts": gorm.Expr("employee_topic_progress.correct_attempts + ?", correctIncrement),
			}),
		}).
		Create(m).Error
	if err != nil {
		return nil, err
	}

	var current model.EmployeeTopicProgress
	err = r.db.WithContext(ctx).
		Where("employee_id = ? AND topic_id = ?", employeeId, topicId).
		First(&current).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ProgressToEntity(&current), nil
}

func (r *ProgressRepositoryImpl) MarkMastered(ctx context.Context, employeeId, topicId uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.EmployeeTopicProgress{}).
		Where("employee_id = ? AND topic_id = ? AND mastered_at IS NULL", employeeId, topicId).
		Update("mastered_at", now).Error
}
