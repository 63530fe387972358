package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"learnhub/pkg/ai"
	"learnhub/pkg/handlers"
	"learnhub/pkg/realtime"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Explain(ctx context.Context, topic, level string) (string, error) {
	args := m.Called(topic, level)
	return args.String(0), args.Error(1)
}

func (m *mockGenerator) GenerateQuiz(ctx context.Context, topic string, n int) (*ai.GeneratedQuiz, error) {
	args := m.Called(topic, n)
	if q := args.Get(0); q != nil {
		return q.(*ai.GeneratedQuiz), args.Error(1)
	}
	return nil, args.Error(1)
}

func newAIHandler(m *mockGenerator) *handlers.AIHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handlers.NewAIHandler(m, realtime.NewHub(logger), logger)
}

func TestExplainHandler(t *testing.T) {
	m := new(mockGenerator)
	m.On("Explain", "Photosynthesis", "").Return("Plants turn light into sugar.", nil)
	m.On("Explain", "Quantum tunneling", "student").Return("", ai.ErrGeneration)

	handler := newAIHandler(m)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			body:           `{"prompt":"Photosynthesis"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   "Plants turn light into sugar.",
		},
		{
			name:           "missing prompt",
			body:           `{"prompt":"  "}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "prompt is required",
		},
		{
			name:           "provider failure",
			body:           `{"prompt":"Quantum tunneling","level":"student"}`,
			expectedStatus: http.StatusBadGateway,
			expectedBody:   "unable to generate explanation",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/ai/explain", strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")
			req = ctxWithClaims(req, "uid1", "Alice")
			rr := httptest.NewRecorder()

			handler.Explain(rr, req)

			assert.Equal(t, test.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), test.expectedBody)
		})
	}

	m.AssertExpectations(t)
}

func TestGenerateQuizHandler(t *testing.T) {
	generated := &ai.GeneratedQuiz{
		Title: "Photosynthesis Quiz",
		Questions: []ai.GeneratedQuestion{
			{Question: "Q1", Options: []ai.GeneratedOption{{Text: "A", IsCorrect: true}}},
		},
	}

	t.Run("success with explicit count", func(t *testing.T) {
		m := new(mockGenerator)
		m.On("GenerateQuiz", "Photosynthesis", 3).Return(generated, nil)
		handler := newAIHandler(m)

		req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-quiz",
			strings.NewReader(`{"topic":"Photosynthesis","numQuestions":3}`))
		req.Header.Set("Content-Type", "application/json")
		req = ctxWithClaims(req, "uid1", "Alice")
		rr := httptest.NewRecorder()

		handler.GenerateQuiz(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Photosynthesis Quiz")
		m.AssertExpectations(t)
	})

	t.Run("count defaults to five when absent", func(t *testing.T) {
		m := new(mockGenerator)
		m.On("GenerateQuiz", "Photosynthesis", 5).Return(generated, nil)
		handler := newAIHandler(m)

		req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-quiz",
			strings.NewReader(`{"topic":"Photosynthesis"}`))
		req.Header.Set("Content-Type", "application/json")
		req = ctxWithClaims(req, "uid1", "Alice")
		rr := httptest.NewRecorder()

		handler.GenerateQuiz(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		m.AssertExpectations(t)
	})

	t.Run("missing topic", func(t *testing.T) {
		m := new(mockGenerator)
		handler := newAIHandler(m)

		req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-quiz",
			strings.NewReader(`{"numQuestions":3}`))
		req.Header.Set("Content-Type", "application/json")
		req = ctxWithClaims(req, "uid1", "Alice")
		rr := httptest.NewRecorder()

		handler.GenerateQuiz(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		m.AssertNotCalled(t, "GenerateQuiz", mock.Anything, mock.Anything)
	})

	t.Run("malformed provider output", func(t *testing.T) {
		m := new(mockGenerator)
		m.On("GenerateQuiz", "T", 5).Return(nil, ai.ErrMalformedResponse)
		handler := newAIHandler(m)

		req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-quiz",
			strings.NewReader(`{"topic":"T"}`))
		req.Header.Set("Content-Type", "application/json")
		req = ctxWithClaims(req, "uid1", "Alice")
		rr := httptest.NewRecorder()

		handler.GenerateQuiz(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Contains(t, rr.Body.String(), "malformed quiz data")
	})
}
