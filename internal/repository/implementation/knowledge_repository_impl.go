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
)

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewDocumentRepository(db *gorm.DB) contract.DocumentRepository {
	return &DocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *DocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentRepositoryImpl) Create(ctx context.Context, document *entity.KnowledgeDocument) error {
	m := r.mapper.DocumentToModel(document)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*document = *r.mapper.DocumentToEntity(m)
	return nil
}

func (r *DocumentRepositoryImpl) Update(ctx context.Context, document *entity.KnowledgeDocument) error {
	m := r.mapper.DocumentToModel(document)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*document = *r.mapper.DocumentToEntity(m)
	return nil
}

func (r *DocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeDocument{}, id).Error
}

func (r *DocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeDocument, error) {
	var m model.KnowledgeDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DocumentToEntity(&m), nil
}

func (r *DocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeDocument, error) {
	var models []*model.KnowledgeDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.DocumentsToEntities(models), nil
}

type TopicRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewTopicRepository(db *gorm.DB) contract.TopicRepository {
	return &TopicRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *TopicRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TopicRepositoryImpl) Create(ctx context.Context, topic *entity.KnowledgeTopic) error {
	m := r.mapper.TopicToModel(topic)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*topic = *r.mapper.TopicToEntity(m)
	return nil
}

func (r *TopicRepositoryImpl) Update(ctx context.Context, topic *entity.KnowledgeTopic) error {
	m := r.mapper.TopicToModel(topic)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*topic = *r.mapper.TopicToEntity(m)
	return nil
}

func (r *TopicRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeTopic{}, id).Error
}

func (r *TopicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeTopic, error) {
	var m model.KnowledgeTopic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TopicToEntity(&m), nil
}

func (r *TopicRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeTopic, error) {
	var models []*model.KnowledgeTopic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TopicsToEntities(models), nil
}

type QuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewQuestionRepository(db *gorm.DB) contract.QuestionRepository {
	return &QuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *QuestionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuestionRepositoryImpl) Create(ctx context.Context, question *entity.TopicQuestion) error {
	m := r.mapper.QuestionToModel(question)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*question = *r.mapper.QuestionToEntity(m)
	return nil
}

func (r *QuestionRepositoryImpl) CreateBatch(ctx context.Context, questions []*entity.TopicQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	models := make([]*model.TopicQuestion, len(questions))
	for i, q := range questions {
		models[i] = r.mapper.QuestionToModel(q)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*questions[i] = *r.mapper.QuestionToEntity(m)
	}
	return nil
}

func (r *QuestionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TopicQuestion{}, id).Error
}

func (r *QuestionRepositoryImpl) DeleteAllByTopicId(ctx context.Context, topicId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("topic_id = ?", topicId).Delete(&model.TopicQuestion{}).Error
}

func (r *QuestionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TopicQuestion, error) {
	var m model.TopicQuestion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.QuestionToEntity(&m), nil
}

func (r *QuestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TopicQuestion, error) {
	var models []*model.TopicQuestion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.QuestionsToEntities(models), nil
}

func (r *QuestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TopicQuestion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
