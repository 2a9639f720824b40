package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/andreweng/cli-helper/internal/config"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// Factory creates LLM clients with consistent logic
type Factory struct {
	OllamaURL      string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	RequestTimeout time.Duration
	Verbose        bool
}

func NewFactory(cfg *config.Config, verbose bool) *Factory {
	return &Factory{
		OllamaURL:      cfg.OllamaURL,
		OpenAIAPIKey:   cfg.OpenAIAPIKey,
		OpenAIBaseURL:  cfg.OpenAIBaseURL,
		RequestTimeout: cfg.RequestTimeout,
		Verbose:        verbose,
	}
}

func (f *Factory) CreateClient(provider, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderOllama:
		return NewOllama(f.OllamaURL, model, f.RequestTimeout, f.Verbose), nil
	case ProviderOpenAI:
		return NewOpenAI(f.OpenAIAPIKey, f.OpenAIBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
