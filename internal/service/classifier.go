package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/reviewlens/review-sentiment-api/internal/common"
	"github.com/reviewlens/review-sentiment-api/internal/config"
	"github.com/reviewlens/review-sentiment-api/internal/domain"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const defaultClassifyTimeout = 30 * time.Second

// classifierPrompt 모델에 전달하는 고정 시스템 지시문 (응답은 pt-BR)
const classifierPrompt = `Analise o sentimento do comentário a seguir e responda tudo em PORTUGUÊS-BR, em JSON com as chaves:
'sentiment': O sentimento geral do comentário: 'positiva', 'negativa' ou 'neutra';
'score': Uma pontuação de sentimento de -1 (muito negativa) a 1 (muito positiva);
'keywords': Uma lista de palavras-chave POSITIVAS e seguindo das NEGATIVAS que ajudaram a determinar o resultado;
'explanation': Uma breve explicação da análise do sentimento`

// Classifier turns free review text into a structured sentiment assessment
type Classifier interface {
	Classify(ctx context.Context, text string) (*domain.Classification, error)
}

// LLMClassifier Classifier backed by an OpenAI-compatible chat model
type LLMClassifier struct {
	model       llms.Model
	modelName   string
	timeout     time.Duration
	temperature float64
	maxTokens   int
}

// NewLLMClassifier creates a classifier talking to cfg.BaseURL
func NewLLMClassifier(cfg config.AIConfig) (*LLMClassifier, error) {
	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewLLMClassifierWithModel(model, cfg), nil
}

// NewLLMClassifierWithModel wraps an existing model (used by tests)
func NewLLMClassifierWithModel(model llms.Model, cfg config.AIConfig) *LLMClassifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultClassifyTimeout
	}
	return &LLMClassifier{
		model:       model,
		modelName:   cfg.Model,
		timeout:     timeout,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Classify sends text to the model and validates the structured answer.
// Every failure wraps common.ErrClassificationFailed.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (*domain.Classification, error) {
	start := time.Now()
	result, err := c.classify(ctx, text)
	observeClassification(err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrClassificationFailed, err)
	}
	return result, nil
}

func (c *LLMClassifier) classify(ctx context.Context, text string) (*domain.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(classifierPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(text)},
		},
	}

	options := []llms.CallOption{llms.WithTemperature(c.temperature)}
	if c.maxTokens > 0 {
		options = append(options, llms.WithMaxTokens(c.maxTokens))
	}

	resp, err := c.model.GenerateContent(ctx, messages, options...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("timed out after %s: %w", c.timeout, err)
		}
		return nil, fmt.Errorf("model call failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return nil, errors.New("model returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Content)
	if content == "" {
		return nil, errors.New("model returned empty content")
	}

	result, err := parseClassification(content)
	if err != nil {
		return nil, err
	}
	result.Model = c.modelName
	return result, nil
}

// rawClassification model answer before validation
type rawClassification struct {
	Sentiment   string   `json:"sentiment"`
	Score       *float64 `json:"score"`
	Keywords    []string `json:"keywords"`
	Explanation string   `json:"explanation"`
}

// parseClassification JSON 파싱 + 검증
func parseClassification(content string) (*domain.Classification, error) {
	var raw rawClassification
	if err := json.Unmarshal([]byte(extractJSON(content)), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON response %q: %w", truncateStr(content, 200), err)
	}
	if raw.Score == nil {
		return nil, errors.New("response has no score")
	}
	if *raw.Score < -1 || *raw.Score > 1 {
		return nil, fmt.Errorf("score must be between -1 and 1 (got %v)", *raw.Score)
	}

	keywords := raw.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return &domain.Classification{
		Sentiment:   strings.TrimSpace(raw.Sentiment),
		Score:       *raw.Score,
		Keywords:    keywords,
		Explanation: raw.Explanation,
	}, nil
}

// extractJSON 코드블록에서 JSON 추출
func extractJSON(rawText string) string {
	if idx := strings.Index(rawText, "```"); idx >= 0 {
		start := strings.Index(rawText[idx:], "\n")
		if start >= 0 {
			end := strings.Index(rawText[idx+start+1:], "```")
			if end >= 0 {
				return strings.TrimSpace(rawText[idx+start+1 : idx+start+1+end])
			}
		}
	}
	return rawText
}

func truncateStr(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
