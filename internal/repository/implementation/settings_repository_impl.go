package implementation

import (
	"context"
	"errors"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/mapper"
	"ai-training-be/internal/model"
	"ai-training-be/internal/repository/contract"
	"ai-training-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &SettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

func (r *SettingsRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SettingsRepositoryImpl) Upsert(ctx context.Context, settings *entity.CompanySettings) error {
	m := r.mapper.ToModel(settings)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}},
			UpdateAll: true,
		}).
		Create(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}

func (r *SettingsRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanySettings, error) {
	var m model.CompanySettings
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SettingsRepositoryImpl) CreateRecommendationQuestion(ctx context.Context, question *entity.RecommendationQuestion) error {
	m := r.mapper.RecommendationToModel(question)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*question = *r.mapper.RecommendationToEntity(m)
	return nil
}

func (r *SettingsRepositoryImpl) DeleteRecommendationQuestion(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RecommendationQuestion{}, id).Error
}

func (r *SettingsRepositoryImpl) FindRecommendationQuestions(ctx context.Context, specs ...specification.Specification) ([]*entity.RecommendationQuestion, error) {
	var models []*model.RecommendationQuestion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.RecommendationsToEntities(models), nil
}
