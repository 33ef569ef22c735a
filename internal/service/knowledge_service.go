package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"
	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/pkg/embedding"

	"github.com/google/uuid"
)

type IKnowledgeService interface {
	CreateDocument(ctx context.Context, companyId uuid.UUID, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	ShowDocument(ctx context.Context, companyId uuid.UUID, id uuid.UUID) (*dto.DocumentResponse, error)
	ListDocuments(ctx context.Context, companyId uuid.UUID) ([]*dto.DocumentResponse, error)
	UpdateDocument(ctx context.Context, companyId uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	DeleteDocument(ctx context.Context, companyId uuid.UUID, id uuid.UUID) error

	CreateTopic(ctx context.Context, companyId uuid.UUID, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	ListTopics(ctx context.Context, companyId uuid.UUID) ([]*dto.TopicResponse, error)
	DeleteTopic(ctx context.Context, companyId uuid.UUID, id uuid.UUID) error

	ListQuestions(ctx context.Context, topicId uuid.UUID) ([]*dto.QuestionResponse, error)

	Search(ctx context.Context, companyId uuid.UUID, req *dto.SearchRequest) ([]*dto.SearchResultResponse, error)
}

type knowledgeService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
	}
}

func (c *knowledgeService) CreateDocument(ctx context.Context, companyId uuid.UUID, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	document := entity.KnowledgeDocument{
		Id:        uuid.New(),
		CompanyId: companyId,
		Title:     req.Title,
		Content:   req.Content,
		FileURL:   req.FileURL,
		CreatedAt: time.Now(),
	}

	if err := uow.DocumentRepository().Create(ctx, &document); err != nil {
		return nil, err
	}

	if err := c.publishDocumentJob(ctx, document.Id); err != nil {
		return nil, err
	}

	return documentToResponse(&document), nil
}

func (c *knowledgeService) ShowDocument(ctx context.Context, companyId uuid.UUID, id uuid.UUID) (*dto.DocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, nil
	}

	return documentToResponse(document), nil
}

func (c *knowledgeService) ListDocuments(ctx context.Context, companyId uuid.UUID) ([]*dto.DocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.CompanyOwnedBy{CompanyID: companyId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.DocumentResponse, 0, len(documents))
	for _, document := range documents {
		res := documentToResponse(document)
		res.Content = "" // listing stays light, content comes from Show
		response = append(response, res)
	}

	return response, nil
}

func (c *knowledgeService) UpdateDocument(ctx context.Context, companyId uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, nil
	}

	now := time.Now()
	document.Title = req.Title
	document.Content = req.Content
	document.FileURL = req.FileURL
	document.UpdatedAt = &now

	if err := uow.DocumentRepository().Update(ctx, document); err != nil {
		return nil, err
	}

	if err := c.publishDocumentJob(ctx, document.Id); err != nil {
		return nil, err
	}

	return documentToResponse(document), nil
}

func (c *knowledgeService) DeleteDocument(ctx context.Context, companyId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return err
	}
	if document == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.DocumentRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.EmbeddingRepository().DeleteAllByDocumentId(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (c *knowledgeService) CreateTopic(ctx context.Context, companyId uuid.UUID, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	topic := entity.KnowledgeTopic{
		Id:           uuid.New(),
		CompanyId:    companyId,
		Name:         req.Name,
		DocumentId:   req.DocumentId,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now(),
	}

	if err := uow.TopicRepository().Create(ctx, &topic); err != nil {
		return nil, err
	}

	// Questions for the topic come from its document's job pipeline
	if req.DocumentId != nil {
		if err := c.publishDocumentJob(ctx, *req.DocumentId); err != nil {
			return nil, err
		}
	}

	return topicToResponse(&topic), nil
}

func (c *knowledgeService) ListTopics(ctx context.Context, companyId uuid.UUID) ([]*dto.TopicResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	topics, err := uow.TopicRepository().FindAll(ctx,
		specification.CompanyOwnedBy{CompanyID: companyId},
		specification.OrderBy{Field: "display_order"},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.TopicResponse, 0, len(topics))
	for _, topic := range topics {
		response = append(response, topicToResponse(topic))
	}

	return response, nil
}

func (c *knowledgeService) DeleteTopic(ctx context.Context, companyId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	topic, err := uow.TopicRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return err
	}
	if topic == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.QuestionRepository().DeleteAllByTopicId(ctx, id); err != nil {
		return err
	}

	if err := uow.TopicRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (c *knowledgeService) ListQuestions(ctx context.Context, topicId uuid.UUID) ([]*dto.QuestionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByTopicID{TopicID: topicId},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		response = append(response, &dto.QuestionResponse{
			Id:            question.Id,
			TopicId:       question.TopicId,
			Question:      question.Question,
			CorrectAnswer: question.CorrectAnswer,
			Options:       question.Options,
			Difficulty:    question.Difficulty,
		})
	}

	return response, nil
}

// Search embeds the query and returns the closest document chunks by cosine
// distance, scoped to the company's documents.
func (c *knowledgeService) Search(ctx context.Context, companyId uuid.UUID, req *dto.SearchRequest) ([]*dto.SearchResultResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	documentIds := req.DocumentIds
	if len(documentIds) == 0 {
		documents, err := uow.DocumentRepository().FindAll(ctx,
			specification.CompanyOwnedBy{CompanyID: companyId},
		)
		if err != nil {
			return nil, err
		}
		if len(documents) == 0 {
			return []*dto.SearchResultResponse{}, nil
		}
		for _, document := range documents {
			documentIds = append(documentIds, document.Id)
		}
	}

	embeddingRes, err := c.embeddingProvider.Generate(req.Query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	matches, err := uow.EmbeddingRepository().SearchSimilar(ctx, embeddingRes.Embedding.Values, documentIds, limit)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SearchResultResponse, 0, len(matches))
	for _, match := range matches {
		response = append(response, &dto.SearchResultResponse{
			DocumentId: match.Chunk.DocumentId,
			Content:    match.Chunk.Content,
			ChunkIndex: match.Chunk.ChunkIndex,
			Distance:   match.Distance,
		})
	}

	return response, nil
}

func (c *knowledgeService) publishDocumentJob(ctx context.Context, documentId uuid.UUID) error {
	payload := dto.PublishDocumentJobMessage{
		DocumentId: documentId,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.publisherService.Publish(ctx, payloadJson)
}

func documentToResponse(d *entity.KnowledgeDocument) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:        d.Id,
		Title:     d.Title,
		Content:   d.Content,
		FileURL:   d.FileURL,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func topicToResponse(t *entity.KnowledgeTopic) *dto.TopicResponse {
	return &dto.TopicResponse{
		Id:           t.Id,
		Name:         t.Name,
		DocumentId:   t.DocumentId,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
	}
}
