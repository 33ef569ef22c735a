package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"
	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/pkg/embedding"
	"ai-training-be/pkg/scoring"
	"ai-training-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const questionsPerTopic = 5

// QuestionGenerator produces multiple-choice questions out of document text.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, documentContent string, count int) ([]scoring.GeneratedQuestion, error)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	questionGenerator QuestionGenerator
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	questionGenerator QuestionGenerator,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		questionGenerator: questionGenerator,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage re-embeds one document and regenerates questions for its
// topics. Bad payloads are acked so they do not loop forever, transient
// failures are nacked for redelivery.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishDocumentJobMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack()
		return
	}

	log.Printf("[INFO] Processing document job for DocumentId: %s", payload.DocumentId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		log.Printf("[ERROR] Failed to get document %s: %v", payload.DocumentId, err)
		msg.Nack()
		return
	}
	if document == nil {
		log.Printf("[ERROR] Document not found: %s", payload.DocumentId)
		msg.Ack()
		return
	}

	if !cs.reembedDocument(ctx, uow, document) {
		msg.Nack()
		return
	}

	if !cs.regenerateQuestions(ctx, uow, document) {
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Document processed: %s", payload.DocumentId)
	msg.Ack()
}

func (cs *consumerService) reembedDocument(ctx context.Context, uow unitofwork.UnitOfWork, document *entity.KnowledgeDocument) bool {
	content := document.Title + "\n\n" + document.Content

	// 1500 chars per chunk keeps us well inside the embedding context limit
	chunks := utils.SplitText(content, 1500, 200)
	log.Printf("[INFO] Document %s split into %d chunks", document.Id, len(chunks))

	var newChunks []*entity.DocumentChunk
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to embed chunk %d of document %s: %v", i, document.Id, err)
			return false
		}

		newChunks = append(newChunks, &entity.DocumentChunk{
			Id:         uuid.New(),
			DocumentId: document.Id,
			ChunkIndex: i,
			Content:    chunk,
			Embedding:  res.Embedding.Values,
			CreatedAt:  time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		return false
	}
	defer uow.Rollback()

	if err := uow.EmbeddingRepository().DeleteAllByDocumentId(ctx, document.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old chunks: %v", err)
		return false
	}

	if len(newChunks) > 0 {
		if err := uow.EmbeddingRepository().CreateBatch(ctx, newChunks); err != nil {
			log.Printf("[ERROR] Failed to create chunks: %v", err)
			return false
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit chunks: %v", err)
		return false
	}

	return true
}

func (cs *consumerService) regenerateQuestions(ctx context.Context, uow unitofwork.UnitOfWork, document *entity.KnowledgeDocument) bool {
	topics, err := uow.TopicRepository().FindAll(ctx, specification.ByDocumentID{DocumentID: document.Id})
	if err != nil {
		log.Printf("[ERROR] Failed to list topics for document %s: %v", document.Id, err)
		return false
	}
	if len(topics) == 0 {
		return true
	}

	for _, topic := range topics {
		generated, err := cs.questionGenerator.GenerateQuestions(ctx, document.Content, questionsPerTopic)
		if err != nil {
			log.Printf("[ERROR] Failed to generate questions for topic %s: %v", topic.Id, err)
			return false
		}

		questions := make([]*entity.TopicQuestion, 0, len(generated))
		for _, q := range generated {
			questions = append(questions, &entity.TopicQuestion{
				Id:            uuid.New(),
				TopicId:       topic.Id,
				Question:      q.Question,
				CorrectAnswer: q.CorrectAnswer,
				Options:       q.Options,
				Difficulty:    q.Difficulty,
				CreatedAt:     time.Now(),
			})
		}

		if err := uow.Begin(ctx); err != nil {
			log.Printf("[ERROR] Failed to begin transaction: %v", err)
			return false
		}

		err = func() error {
			defer uow.Rollback()
			if err := uow.QuestionRepository().DeleteAllByTopicId(ctx, topic.Id); err != nil {
				return err
			}
			if len(questions) > 0 {
				if err := uow.QuestionRepository().CreateBatch(ctx, questions); err != nil {
					return err
				}
			}
			return uow.Commit()
		}()
		if err != nil {
			log.Printf("[ERROR] Failed to replace questions for topic %s: %v", topic.Id, err)
			return false
		}

		log.Printf("[INFO] Generated %d questions for topic %s", len(questions), topic.Id)
	}

	return true
}
