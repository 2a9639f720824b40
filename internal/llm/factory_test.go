package llm

import (
	"testing"
	"time"

	"github.com/andreweng/cli-helper/internal/config"
)

func TestFactory_CreateClient(t *testing.T) {
	f := NewFactory(&config.Config{
		OllamaURL:      "http://localhost:11434/api/generate",
		RequestTimeout: 30 * time.Second,
	}, false)

	if _, err := f.CreateClient("ollama", "gemma3:12b"); err != nil {
		t.Fatalf("ollama: %v", err)
	}
	if _, err := f.CreateClient("OpenAI", "gpt-4o-mini"); err != nil {
		t.Fatalf("provider match should be case-insensitive: %v", err)
	}
	if _, err := f.CreateClient("bedrock", "x"); err == nil {
		t.Fatalf("want error for unknown provider")
	}
}
