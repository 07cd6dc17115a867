package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klimatech/acbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContent(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "🛠️ Возможные причины"},
					{"text": "\nутечка фреона"},
				}}},
			},
		})
	}))
	defer srv.Close()

	s := NewGeminiService("secret", srv.URL)
	parts := []Part{{Text: "transcript"}}

	text, err := s.GenerateContent(context.Background(), "gemma-3-4b-it", parts, 0.4)

	require.NoError(t, err)
	assert.Equal(t, "🛠️ Возможные причины\nутечка фреона", text)
	assert.Equal(t, "/models/gemma-3-4b-it:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)
	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, parts, gotReq.Contents[0].Parts)
	assert.InDelta(t, 0.4, gotReq.GenerationConfig.Temperature, 1e-9)
}

func TestGenerateContentErrors(t *testing.T) {
	tests := map[string]struct {
		status int
		body   string
		errIs  error
	}{
		"not found":        {status: http.StatusNotFound, body: `{}`},
		"empty candidates": {status: http.StatusOK, body: `{"candidates":[]}`, errIs: domain.ErrEmptyResponse},
		"blank text":       {status: http.StatusOK, body: `{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`, errIs: domain.ErrEmptyResponse},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			s := NewGeminiService("secret", srv.URL)
			_, err := s.GenerateContent(context.Background(), "gemma-3-4b-it", []Part{{Text: "x"}}, 0.4)

			require.Error(t, err)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestListModels(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/models", r.URL.Path)
		w.Write([]byte(`{"models":[
			{"name":"models/gemini-2.5-flash","supportedGenerationMethods":["generateContent","countTokens"]},
			{"name":"models/embedding-001","supportedGenerationMethods":["embedContent"]}
		]}`))
	}))
	defer srv.Close()

	s := NewGeminiService("secret", srv.URL)

	models, err := s.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "gemini-2.5-flash", models[0].ID())
	assert.True(t, models[0].SupportsGeneration())
	assert.False(t, models[1].SupportsGeneration())

	// Second call is served from the cache.
	_, err = s.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestListModelsNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewGeminiService("secret", srv.URL)
	_, err := s.ListModels(context.Background())

	assert.Error(t, err)
}
