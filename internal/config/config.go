package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOllama LLMProvider = "ollama"
	ProviderOpenAI LLMProvider = "openai"
)

// defaultSystemPrompt keeps answers short and to the point. Override with
// SYSTEM_PROMPT; set it to an empty string to send no system prompt at all.
const defaultSystemPrompt = "You are a senior Site Reliability Engineer and Systems Administrator. " +
	"You will provide short concise answers to technical questions no longer than 140 characters. " +
	"Do not provide a follow up, do not provide any other responses other than the answer."

type Config struct {
	// LLM settings
	LLMProvider   LLMProvider `env:"LLM_PROVIDER" envDefault:"ollama"`
	Model         string      `env:"MODEL" envDefault:"gemma3:12b"`
	OllamaURL     string      `env:"OLLAMA_URL" envDefault:"http://localhost:11434/api/generate"`
	OpenAIAPIKey  string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string      `env:"OPENAI_BASE_URL"`

	// Prompts
	SystemPrompt string `env:"SYSTEM_PROMPT"`

	// Storage
	HistoryFilePath string `env:"CHAT_HISTORY_PATH" envDefault:"chat_history.txt"`

	// Transport
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

func New() *Config {
	cfg := &Config{SystemPrompt: defaultSystemPrompt}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
