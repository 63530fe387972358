package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	model          = "gpt-4o-mini"

	explainMaxTokens = 800
	quizMaxTokens    = 1000
	temperature      = 0.5

	defaultQuestionCount = 5
)

var (
	// ErrGeneration is the only error detail clients ever see for
	// transport or provider failures. The raw cause is logged.
	ErrGeneration = errors.New("unable to generate a response at this time")

	// ErrMalformedResponse means the provider answered but its output
	// did not match the required quiz JSON contract.
	ErrMalformedResponse = errors.New("provider returned malformed quiz data")
)

// Client is a stateless adapter over an OpenAI-style chat-completions
// API. One best-effort round trip per call: no retries, no caching.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Logger     *slog.Logger
}

func NewClient(apiKey, baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		HTTPClient: http.DefaultClient,
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		APIKey:     apiKey,
		Logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Explain returns a trimmed plain-text explanation of topic pitched at
// the given education level ("student" when empty).
func (c *Client) Explain(ctx context.Context, topic, level string) (string, error) {
	if level == "" {
		level = "student"
	}
	prompt := fmt.Sprintf(
		"Explain the following to a %s in simple, educational and structured language:\n\n%s",
		level, topic,
	)

	content, err := c.complete(ctx, prompt, explainMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// GeneratedOption is a quiz option with the answer flag resolved.
type GeneratedOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type GeneratedQuestion struct {
	Question    string            `json:"question"`
	Options     []GeneratedOption `json:"options"`
	Explanation string            `json:"explanation"`
}

type GeneratedQuiz struct {
	Title     string              `json:"title"`
	Questions []GeneratedQuestion `json:"questions"`
}

// generatedRaw is the strict JSON contract demanded from the provider.
type generatedRaw struct {
	Title     string `json:"title"`
	Questions []struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correctIndex"`
		Explanation  string   `json:"explanation"`
	} `json:"questions"`
}

// GenerateQuiz asks the provider for n multiple-choice questions about
// topic and normalizes the reply. Non-JSON output and a missing or
// non-list questions field fail with ErrMalformedResponse; the call is
// never retried.
func (c *Client) GenerateQuiz(ctx context.Context, topic string, n int) (*GeneratedQuiz, error) {
	if n < 1 {
		n = 1
	}

	prompt := fmt.Sprintf(`You are a professional educator.

Create %d multiple-choice questions about %q in strictly valid JSON:

{
  "title": "Quiz Title",
  "questions": [
    {
      "question": "",
      "options": ["", "", "", ""],
      "correctIndex": 0,
      "explanation": ""
    }
  ]
}

Do NOT include any surrounding markdown, commentary, or code blocks.`, n, topic)

	content, err := c.complete(ctx, prompt, quizMaxTokens)
	if err != nil {
		return nil, err
	}

	var raw generatedRaw
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		c.Logger.Error("failed to parse provider quiz output", "error", err)
		return nil, ErrMalformedResponse
	}
	if raw.Questions == nil {
		c.Logger.Error("provider quiz output has no questions list")
		return nil, ErrMalformedResponse
	}

	quiz := &GeneratedQuiz{
		Title:     raw.Title,
		Questions: make([]GeneratedQuestion, 0, len(raw.Questions)),
	}
	for _, q := range raw.Questions {
		question := q.Question
		if question == "" {
			question = "Untitled question"
		}

		// An out-of-range correctIndex leaves every option marked
		// incorrect rather than failing the whole quiz.
		options := make([]GeneratedOption, 0, len(q.Options))
		for idx, opt := range q.Options {
			options = append(options, GeneratedOption{
				Text:      opt,
				IsCorrect: idx == q.CorrectIndex,
			})
		}

		quiz.Questions = append(quiz.Questions, GeneratedQuestion{
			Question:    question,
			Options:     options,
			Explanation: q.Explanation,
		})
	}

	return quiz, nil
}

// DefaultQuestionCount is used by callers when the request leaves the
// question count unset.
func DefaultQuestionCount() int { return defaultQuestionCount }

// complete performs a single chat-completions round trip and returns
// the first choice's content.
func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal provider request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("provider request failed", "error", err)
		return "", ErrGeneration
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.Logger.Error("provider returned non-200", "status", resp.StatusCode, "body", string(detail))
		return "", ErrGeneration
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.Logger.Error("failed to decode provider response", "error", err)
		return "", ErrGeneration
	}

	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}
