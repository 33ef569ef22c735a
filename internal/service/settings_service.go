package service

import (
	"context"
	"time"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"
	"ai-training-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISettingsService interface {
	Upsert(ctx context.Context, companyId uuid.UUID, req *dto.UpsertSettingsRequest) (*dto.SettingsResponse, error)
	Show(ctx context.Context, companyId uuid.UUID) (*dto.SettingsResponse, error)

	CreateRecommendationQuestion(ctx context.Context, companyId uuid.UUID, req *dto.CreateRecommendationQuestionRequest) (*dto.RecommendationQuestionResponse, error)
	DeleteRecommendationQuestion(ctx context.Context, companyId uuid.UUID, id uuid.UUID) error
	ListRecommendationQuestions(ctx context.Context, companyId uuid.UUID) ([]*dto.RecommendationQuestionResponse, error)
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory) ISettingsService {
	return &settingsService{uowFactory: uowFactory}
}

func (c *settingsService) Upsert(ctx context.Context, companyId uuid.UUID, req *dto.UpsertSettingsRequest) (*dto.SettingsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	settings := entity.CompanySettings{
		Id:                uuid.New(),
		CompanyId:         companyId,
		DefaultLanguage:   req.DefaultLanguage,
		VoiceAgentId:      req.VoiceAgentId,
		AssessmentEnabled: req.AssessmentEnabled,
		Metadata:          req.Metadata,
		CreatedAt:         now,
		UpdatedAt:         &now,
	}

	if err := uow.SettingsRepository().Upsert(ctx, &settings); err != nil {
		return nil, err
	}

	return settingsToResponse(&settings), nil
}

func (c *settingsService) Show(ctx context.Context, companyId uuid.UUID) (*dto.SettingsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.SettingsRepository().FindOne(ctx,
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		// A company without a saved row runs on defaults
		return &dto.SettingsResponse{
			CompanyId:         companyId,
			DefaultLanguage:   "en",
			AssessmentEnabled: true,
		}, nil
	}

	return settingsToResponse(settings), nil
}

func (c *settingsService) CreateRecommendationQuestion(ctx context.Context, companyId uuid.UUID, req *dto.CreateRecommendationQuestionRequest) (*dto.RecommendationQuestionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	question := entity.RecommendationQuestion{
		Id:           uuid.New(),
		CompanyId:    companyId,
		Question:     req.Question,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now(),
	}

	if err := uow.SettingsRepository().CreateRecommendationQuestion(ctx, &question); err != nil {
		return nil, err
	}

	return recommendationToResponse(&question), nil
}

func (c *settingsService) DeleteRecommendationQuestion(ctx context.Context, companyId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.SettingsRepository().FindRecommendationQuestions(ctx,
		specification.ByID{ID: id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return nil
	}

	return uow.SettingsRepository().DeleteRecommendationQuestion(ctx, id)
}

func (c *settingsService) ListRecommendationQuestions(ctx context.Context, companyId uuid.UUID) ([]*dto.RecommendationQuestionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.SettingsRepository().FindRecommendationQuestions(ctx,
		specification.CompanyOwnedBy{CompanyID: companyId},
		specification.OrderBy{Field: "display_order"},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.RecommendationQuestionResponse, 0, len(questions))
	for _, question := range questions {
		response = append(response, recommendationToResponse(question))
	}

	return response, nil
}

func settingsToResponse(s *entity.CompanySettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyId:         s.CompanyId,
		DefaultLanguage:   s.DefaultLanguage,
		VoiceAgentId:      s.VoiceAgentId,
		AssessmentEnabled: s.AssessmentEnabled,
		Metadata:          s.Metadata,
		UpdatedAt:         s.UpdatedAt,
	}
}

func recommendationToResponse(q *entity.RecommendationQuestion) *dto.RecommendationQuestionResponse {
	return &dto.RecommendationQuestionResponse{
		Id:           q.Id,
		CompanyId:    q.CompanyId,
		Question:     q.Question,
		DisplayOrder: q.DisplayOrder,
		CreatedAt:    q.CreatedAt,
	}
}
