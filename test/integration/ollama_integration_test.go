package integration

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"clinical-notes-be/pkg/embedding"
	"clinical-notes-be/pkg/llm"
	"clinical-notes-be/pkg/llm/ollama"
	"clinical-notes-be/pkg/soap"
)

const (
	ollamaBaseURL = "http://localhost:11434"
	ollamaModel   = "gemma:2b"
)

func ollamaAvailable(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 5 * time.Second}
	res, err := client.Get(ollamaBaseURL)
	if err != nil {
		t.Skipf("Skipping integration test: Ollama not running at %s: %v", ollamaBaseURL, err)
	}
	res.Body.Close()
}

func testModel() string {
	if m := os.Getenv("OLLAMA_MODEL"); m != "" {
		return m
	}
	return ollamaModel
}

// TestOllamaNoteGeneration drives the local model through the same chat call
// the session service makes and feeds the output straight into the parsing
// engine. Small local models drift from the template, so the assertions stay
// on the contract (a non-empty, parseable result), not on clinical content.
func TestOllamaNoteGeneration(t *testing.T) {
	ollamaAvailable(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	provider := ollama.NewOllamaProvider(ollamaBaseURL, testModel())

	history := []llm.Message{
		{Role: "system", Content: "You are a clinical documentation assistant. Produce a SOAP note with SESSION SUMMARY:, ASSESSMENT: and PLAN: sections."},
		{Role: "user", Content: "Patient reports two weeks of poor sleep and low mood after losing their job. Denies suicidal ideation."},
	}

	response, err := provider.Chat(ctx, history, llm.WithTemperature(0.3))
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	t.Logf("Generated %d chars", len(response))

	if response == "" {
		t.Fatal("Response should not be empty")
	}

	result := soap.NewEngine().Process(response)
	if result.StructuredNote == "" {
		t.Error("Engine should always carry the cleaned note text")
	}
	if len(result.RiskFlags) == 0 {
		t.Error("Engine should always yield at least one risk flag")
	}
	t.Logf("Primary risk flag: %s / %s", result.RiskFlags[0].Level, result.RiskFlags[0].Category)
}

// TestOllamaRoleMapping checks the "model" role used by the Gemini-style
// history gets translated before it reaches Ollama.
func TestOllamaRoleMapping(t *testing.T) {
	ollamaAvailable(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	provider := ollama.NewOllamaProvider(ollamaBaseURL, testModel())

	history := []llm.Message{
		{Role: "user", Content: "My name is John."},
		{Role: "model", Content: "Nice to meet you, John!"},
		{Role: "user", Content: "What is my name?"},
	}

	response, err := provider.Chat(ctx, history)
	if err != nil {
		t.Fatalf("Chat with 'model' role failed: %v", err)
	}
	t.Logf("Response: %s", response)

	if !strings.Contains(response, "John") {
		t.Logf("Response may not correctly remember the name: %s", response)
	}
}

// TestOllamaEmbedding verifies the local embedding path returns unit vectors
// of the dimension the vector column expects.
func TestOllamaEmbedding(t *testing.T) {
	ollamaAvailable(t)

	model := os.Getenv("OLLAMA_EMBED_MODEL")
	if model == "" {
		model = "nomic-embed-text"
	}
	provider := embedding.NewOllamaProvider(ollamaBaseURL, model)

	res, err := provider.Generate("Patient reports stable mood and good sleep.", "RETRIEVAL_DOCUMENT")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	values := res.Embedding.Values
	if len(values) == 0 {
		t.Fatal("Embedding should not be empty")
	}
	t.Logf("Embedding dimension: %d", len(values))

	var norm float64
	for _, v := range values {
		norm += float64(v) * float64(v)
	}
	if norm < 0.99 || norm > 1.01 {
		t.Errorf("Embedding should be normalized to unit length, squared norm = %f", norm)
	}
}
