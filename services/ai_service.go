package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Om-Rawte/AIMenuAssistant/configs"
)

const (
	ProviderOpenAI   = "openai"
	ProviderDeepseek = "deepseek"
)

// FallbackMessage is what the customer sees when the provider call fails.
const FallbackMessage = "AI assistant is currently unavailable. Please contact the restaurant or try again later."

// AIService talks to an OpenAI-compatible chat-completions endpoint for
// translation, recommendations and the menu chatbot. Base URLs are fields so
// tests can point them at a local server.
type AIService struct {
	Provider string

	OpenAIKey   string
	DeepseekKey string

	OpenAIBaseURL   string
	DeepseekBaseURL string

	Client *http.Client
}

func NewAIService(cfg *configs.Config) *AIService {
	return &AIService{
		Provider:        cfg.AIProvider,
		OpenAIKey:       cfg.OpenAIAPIKey,
		DeepseekKey:     cfg.DeepseekAPIKey,
		OpenAIBaseURL:   "https://api.openai.com/v1",
		DeepseekBaseURL: "https://api.deepseek.com/v1",
		Client:          &http.Client{Timeout: 30 * time.Second},
	}
}

// Translate returns text in the target language, or the original text when
// the target is English or the provider call fails (menu rendering must
// never break on a translation error).
func (s *AIService) Translate(provider, text, lang string) string {
	if lang == "en" || text == "" {
		return text
	}
	prompt := fmt.Sprintf("Translate the following text to %s. Only return the translated text, nothing else: %q", lang, text)
	out, err := s.chat(provider, prompt)
	if err != nil {
		return text
	}
	return out
}

// Recommendations asks for upsells and pairing suggestions for the current
// menu and cart.
func (s *AIService) Recommendations(provider, contextJSON, lang string) (string, error) {
	prompt := fmt.Sprintf(`You are an intelligent restaurant assistant. Based on the following context, provide personalized recommendations to enhance the customer's dining experience.

Context: %s
Customer Language: %s

Please provide:
1. Personalized dish recommendations based on time of day, weather, and menu popularity
2. Complementary item suggestions
3. Special occasion recommendations if applicable
4. Seasonal or local event-based suggestions

Respond in %s and keep it friendly, helpful, and concise.`, contextJSON, lang, lang)
	return s.chat(provider, prompt)
}

// ChatResponse answers a customer question about the menu.
func (s *AIService) ChatResponse(provider, menuJSON, message, lang string) (string, error) {
	prompt := fmt.Sprintf(`You are an intelligent, friendly, and helpful restaurant assistant chatbot.
Your personality is witty and charming.
You are speaking to a customer who is looking at a menu.
Your goal is to answer their questions about the menu items, help them choose, and provide a delightful experience.
NEVER suggest items not on the menu.
Keep your responses concise and conversational.

MENU CONTEXT:
%s

CUSTOMER QUESTION:
%s

Respond in %s.`, menuJSON, message, lang)
	return s.chat(provider, prompt)
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *AIService) chat(provider, prompt string) (string, error) {
	if provider == "" {
		provider = s.Provider
	}

	var baseURL, key, model string
	switch provider {
	case ProviderDeepseek:
		baseURL, key, model = s.DeepseekBaseURL, s.DeepseekKey, "deepseek-chat"
	default:
		baseURL, key, model = s.OpenAIBaseURL, s.OpenAIKey, "gpt-3.5-turbo"
	}
	if key == "" {
		return "", errors.New("missing API key for provider " + provider)
	}

	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful restaurant assistant."},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	res, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s API error: %d", provider, res.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return out.Choices[0].Message.Content, nil
}
