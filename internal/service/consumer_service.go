package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinical-notes-be/internal/dto"
	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/internal/repository/memory"
	"clinical-notes-be/internal/repository/specification"
	"clinical-notes-be/internal/repository/unitofwork"
	"clinical-notes-be/pkg/embedding"
	"clinical-notes-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	statusRepo        *memory.StatusRepository
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	statusRepo *memory.StatusRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		statusRepo:        statusRepo,
		log:               log,
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

func (cs *consumerService) setStage(noteId, stage, errMsg string) {
	if cs.statusRepo == nil {
		return
	}
	cs.statusRepo.Save(&memory.ProcessingStatus{
		SessionNoteID: noteId,
		Stage:         stage,
		Error:         errMsg,
	})
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedSessionNoteMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		cs.log.Error("consumer", "Failed to unmarshal embed message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	noteIdStr := payload.SessionNoteId.String()
	cs.log.Info("consumer", "Embedding session note", map[string]interface{}{"session_note_id": noteIdStr})
	cs.setStage(noteIdStr, "embedding", "")

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.SessionNoteRepository().FindOne(ctx, specification.ByID{ID: payload.SessionNoteId})
	if err != nil {
		cs.log.Error("consumer", "Failed to load session note", map[string]interface{}{
			"session_note_id": noteIdStr,
			"error":           err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}
	if note == nil {
		cs.log.Error("consumer", "Session note not found", map[string]interface{}{"session_note_id": noteIdStr})
		msg.Ack() // Note deleted? Ack.
		return
	}

	content := fmt.Sprintf(`Patient ID: %s
Session Date: %s

%s`,
		note.PatientId,
		note.CreatedAt.Format(time.RFC3339),
		note.RawInput,
	)

	// ChunkSize 1500 chars (~375 tokens) keeps chunks well inside embedding
	// model context limits; 200 chars of overlap preserve boundary context.
	chunks := utils.SplitText(content, 1500, 200)

	var newEmbeddings []*entity.SessionNoteEmbedding

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			cs.log.Error("consumer", "Failed to generate embedding", map[string]interface{}{
				"session_note_id": noteIdStr,
				"chunk":           i,
				"error":           err.Error(),
			})
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.SessionNoteEmbedding{
			Id:             uuid.New(),
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			SessionNoteId:  note.Id,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		cs.log.Error("consumer", "Failed to begin transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.SessionNoteEmbeddingRepository().DeleteBySessionNoteId(ctx, note.Id); err != nil {
		cs.log.Error("consumer", "Failed to delete old embeddings", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.SessionNoteEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			cs.log.Error("consumer", "Failed to create embeddings", map[string]interface{}{"error": err.Error()})
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		cs.log.Error("consumer", "Failed to commit transaction", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.setStage(noteIdStr, "done", "")
	cs.log.Info("consumer", "Session note embedded", map[string]interface{}{
		"session_note_id": noteIdStr,
		"chunks":          len(newEmbeddings),
	})
	msg.Ack()
}
