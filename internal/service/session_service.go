package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinical-notes-be/internal/config"
	"clinical-notes-be/internal/constant"
	"clinical-notes-be/internal/dto"
	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/internal/pkg/mailer"
	"clinical-notes-be/internal/repository/cache"
	"clinical-notes-be/internal/repository/memory"
	"clinical-notes-be/internal/repository/specification"
	"clinical-notes-be/internal/repository/unitofwork"
	"clinical-notes-be/pkg/embedding"
	"clinical-notes-be/pkg/events"
	"clinical-notes-be/pkg/llm"
	"clinical-notes-be/pkg/soap"
	"clinical-notes-be/pkg/soap/risk"

	"github.com/google/uuid"
)

// IEventPublisher is the event-bus boundary; the NATS JetStream publisher
// satisfies it.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type ISessionService interface {
	ProcessSession(ctx context.Context, req *dto.ProcessSessionRequest) (*dto.ProcessSessionResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.SessionNoteResponse, error)
	ListByPatient(ctx context.Context, patientId string) ([]*dto.SessionNoteResponse, error)
	FindSimilar(ctx context.Context, id uuid.UUID, limit int) ([]*dto.SimilarSessionResponse, error)
	Status(sessionNoteId string) (*dto.ProcessStatusResponse, bool)
}

type sessionService struct {
	uowFactory        unitofwork.RepositoryFactory
	llmProvider       llm.Provider
	engine            *soap.Engine
	publisherService  IPublisherService
	eventPublisher    IEventPublisher
	embeddingProvider embedding.EmbeddingProvider
	emailService      mailer.IEmailService
	resultCache       *cache.ResultCache
	statusRepo        *memory.StatusRepository
	alertCfg          config.AlertConfig
	log               logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.Provider,
	publisherService IPublisherService,
	eventPublisher IEventPublisher,
	embeddingProvider embedding.EmbeddingProvider,
	emailService mailer.IEmailService,
	resultCache *cache.ResultCache,
	statusRepo *memory.StatusRepository,
	alertCfg config.AlertConfig,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:        uowFactory,
		llmProvider:       llmProvider,
		engine:            soap.NewEngine(),
		publisherService:  publisherService,
		eventPublisher:    eventPublisher,
		embeddingProvider: embeddingProvider,
		emailService:      emailService,
		resultCache:       resultCache,
		statusRepo:        statusRepo,
		alertCfg:          alertCfg,
		log:               log,
	}
}

func (s *sessionService) setStage(noteId, stage, errMsg string) {
	if s.statusRepo == nil {
		return
	}
	s.statusRepo.Save(&memory.ProcessingStatus{
		SessionNoteID: noteId,
		Stage:         stage,
		Error:         errMsg,
	})
}

// ProcessSession runs the full pipeline: generate a SOAP note from the raw
// transcript, parse it into the structured result, persist it, and kick off
// the async embedding and risk-alert paths.
//
// When the generator fails, the returned response is the fully-defaulted
// payload alongside the error, so the controller can reply with a complete
// schema instead of a bare error object.
func (s *sessionService) ProcessSession(ctx context.Context, req *dto.ProcessSessionRequest) (*dto.ProcessSessionResponse, error) {
	noteId := uuid.New()
	s.setStage(noteId.String(), "generating", "")

	generated, err := s.generateNote(ctx, req)
	if err != nil {
		s.log.Error("session", "Upstream generation failed", map[string]interface{}{
			"patient_id": req.PatientId,
			"error":      err.Error(),
		})
		s.setStage(noteId.String(), "failed", err.Error())
		return dto.NewDefaultProcessSessionResponse(), fmt.Errorf("generate clinical note: %w", err)
	}

	s.setStage(noteId.String(), "parsing", "")
	result := s.engine.Process(generated)
	response := dto.FromEngineResult(result)
	response.SessionNoteId = noteId.String()

	riskLevel := string(risk.LevelNone)
	primaryCategory := ""
	if len(response.RiskFlags) > 0 {
		riskLevel = response.RiskFlags[0].Level
		primaryCategory = response.RiskFlags[0].Category
	}

	resultJson, err := json.Marshal(response)
	if err != nil {
		s.setStage(noteId.String(), "failed", err.Error())
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	note := entity.SessionNote{
		Id:        noteId,
		PatientId: req.PatientId,
		RawInput:  req.SessionInput,
		Result:    resultJson,
		RiskLevel: riskLevel,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionNoteRepository().Create(ctx, &note); err != nil {
		s.setStage(noteId.String(), "failed", err.Error())
		return nil, err
	}
	s.setStage(noteId.String(), "stored", "")

	s.publishNoteProcessed(ctx, &note)
	s.publishEmbedRequest(ctx, noteId)
	s.notifyRisk(ctx, &note, riskLevel, primaryCategory)

	return response, nil
}

// generateNote calls the LLM, memoizing the raw generated text by input
// digest so identical re-submissions skip the upstream call.
func (s *sessionService) generateNote(ctx context.Context, req *dto.ProcessSessionRequest) (string, error) {
	var cached string
	if s.resultCache != nil {
		hit, err := s.resultCache.Get(ctx, req.SessionInput, &cached)
		if err != nil {
			s.log.Warn("session", "Result cache read failed", map[string]interface{}{"error": err.Error()})
		} else if hit && cached != "" {
			return cached, nil
		}
	}

	history := []llm.Message{
		{Role: "system", Content: constant.ClinicalNoteSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(
			constant.ClinicalNoteUserPromptTemplate,
			req.PatientId,
			time.Now().Format("2006-01-02"),
			req.SessionInput,
		)},
	}

	generated, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(0.3))
	if err != nil {
		return "", err
	}

	if s.resultCache != nil {
		if err := s.resultCache.Set(ctx, req.SessionInput, generated); err != nil {
			s.log.Warn("session", "Result cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}
	return generated, nil
}

func (s *sessionService) publishNoteProcessed(ctx context.Context, note *entity.SessionNote) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewNoteProcessedEvent(note.Id.String(), note.PatientId)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("session", "Failed to publish NOTE_PROCESSED event", map[string]interface{}{
			"session_note_id": note.Id,
			"error":           err.Error(),
		})
	}
}

func (s *sessionService) publishEmbedRequest(ctx context.Context, noteId uuid.UUID) {
	msgPayload := dto.PublishEmbedSessionNoteMessage{
		SessionNoteId: noteId,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		s.log.Warn("session", "Failed to marshal embed message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		// Embedding is auxiliary; the request already succeeded.
		s.log.Warn("session", "Failed to publish embed message", map[string]interface{}{
			"session_note_id": noteId,
			"error":           err.Error(),
		})
	}
}

func (s *sessionService) notifyRisk(ctx context.Context, note *entity.SessionNote, level, category string) {
	if level == string(risk.LevelNone) || level == "" {
		return
	}

	if s.eventPublisher != nil {
		evt := events.NewRiskFlaggedEvent(note.Id.String(), note.PatientId, level, category)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("session", "Failed to publish RISK_FLAGGED event", map[string]interface{}{
				"session_note_id": note.Id,
				"error":           err.Error(),
			})
		}
	}

	if level == string(risk.LevelHigh) && s.alertCfg.Enabled && s.alertCfg.ClinicianEmail != "" && s.emailService != nil {
		if err := s.emailService.SendRiskAlert(s.alertCfg.ClinicianEmail, note.PatientId, note.Id.String(), level, category); err != nil {
			s.log.Warn("session", "Failed to send risk alert email", map[string]interface{}{
				"session_note_id": note.Id,
				"error":           err.Error(),
			})
		}
	}
}

func (s *sessionService) Show(ctx context.Context, id uuid.UUID) (*dto.SessionNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.SessionNoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	return toSessionNoteResponse(note, true), nil
}

func (s *sessionService) ListByPatient(ctx context.Context, patientId string) ([]*dto.SessionNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.SessionNoteRepository().FindAll(ctx,
		specification.ByPatientID{PatientID: patientId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SessionNoteResponse, len(notes))
	for i, n := range notes {
		// List view stays light: result payloads are fetched per note.
		out[i] = toSessionNoteResponse(n, false)
	}
	return out, nil
}

func (s *sessionService) FindSimilar(ctx context.Context, id uuid.UUID, limit int) ([]*dto.SimilarSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.SessionNoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("session note not found")
	}

	res, err := s.embeddingProvider.Generate(note.RawInput, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := uow.SessionNoteEmbeddingRepository().SearchSimilarWithScore(ctx, res.Embedding.Values, limit, note.PatientId, 0.5)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SimilarSessionResponse, 0, len(scored))
	for _, hit := range scored {
		if hit.Embedding.SessionNoteId == id {
			continue // the note itself is always its own best match
		}
		out = append(out, &dto.SimilarSessionResponse{
			SessionNoteId: hit.Embedding.SessionNoteId.String(),
			Document:      hit.Embedding.Document,
			ChunkIndex:    hit.Embedding.ChunkIndex,
			Similarity:    hit.Similarity,
		})
	}
	return out, nil
}

func (s *sessionService) Status(sessionNoteId string) (*dto.ProcessStatusResponse, bool) {
	status, found := s.statusRepo.Get(sessionNoteId)
	if !found {
		return nil, false
	}
	return &dto.ProcessStatusResponse{
		SessionNoteId: status.SessionNoteID,
		Stage:         status.Stage,
		Error:         status.Error,
		UpdatedAt:     status.UpdatedAt,
	}, true
}

func toSessionNoteResponse(note *entity.SessionNote, includeResult bool) *dto.SessionNoteResponse {
	res := &dto.SessionNoteResponse{
		Id:        note.Id.String(),
		PatientId: note.PatientId,
		RiskLevel: note.RiskLevel,
		CreatedAt: note.CreatedAt,
	}
	if includeResult && len(note.Result) > 0 {
		var parsed dto.ProcessSessionResponse
		if err := json.Unmarshal(note.Result, &parsed); err == nil {
			res.Result = &parsed
		}
	}
	return res
}
