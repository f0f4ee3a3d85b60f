package integration

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"

	"clinical-notes-be/internal/entity"
	"clinical-notes-be/internal/repository/specification"
	"clinical-notes-be/internal/repository/unitofwork"
	"clinical-notes-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.SessionNoteRepository())
	assert.NotNil(t, uow.SessionNoteEmbeddingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Session Note Repository", func(t *testing.T) {
		count, err := uow.SessionNoteRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("SessionNote count: %d", count)
	})

	t.Run("Check Transactional Note With Embeddings", func(t *testing.T) {
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		// Rollback keeps the database clean; Commit is never reached.
		defer uow.Rollback()

		noteId := uuid.New()
		result, _ := json.Marshal(map[string]any{
			"sessionSummary": "Integration test session.",
			"riskFlags":      []any{},
		})
		note := &entity.SessionNote{
			Id:        noteId,
			PatientId: "integration-patient-" + uuid.New().String(),
			RawInput:  "Patient reports stable mood during integration testing.",
			Result:    result,
			RiskLevel: "none",
		}

		err = uow.SessionNoteRepository().Create(ctx, note)
		assert.NoError(t, err)

		vector := make([]float32, 768)
		vector[0] = 1.0 // unit vector along the first axis
		embeddings := []*entity.SessionNoteEmbedding{
			{
				Id:             uuid.New(),
				Document:       "Patient reports stable mood during integration testing.",
				EmbeddingValue: vector,
				SessionNoteId:  noteId,
				ChunkIndex:     0,
			},
		}
		err = uow.SessionNoteEmbeddingRepository().CreateBulk(ctx, embeddings)
		assert.NoError(t, err)

		// The identical query vector must come back with similarity ~1.0.
		scored, err := uow.SessionNoteEmbeddingRepository().SearchSimilarWithScore(ctx, vector, 5, note.PatientId, 0.5)
		assert.NoError(t, err)
		if assert.NotEmpty(t, scored) {
			assert.Equal(t, noteId, scored[0].Embedding.SessionNoteId)
			assert.InDelta(t, 1.0, scored[0].Similarity, 0.001)
		}

		found, err := uow.SessionNoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, note.PatientId, found.PatientId)
			assert.Equal(t, "none", found.RiskLevel)
		}

		t.Log("Successfully created SessionNote with Embeddings in Transaction")
	})
}
