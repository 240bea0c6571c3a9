package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("returns first candidate text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/models/gemini-1.5-flash:generateContent", r.URL.Path)
			assert.Equal(t, "key123", r.Header.Get("x-goog-api-key"))

			var req GeminiChatRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Len(t, req.Contents, 1)
			assert.Equal(t, "summarize this", req.Contents[0].Parts[0].Text)

			json.NewEncoder(w).Encode(GeminiChatResponse{
				Candidates: []*GeminiChatCandidate{
					{Content: &GeminiChatContent{Parts: []*GeminiChatParts{{Text: "a summary"}}}},
				},
			})
		}))
		defer srv.Close()

		provider := NewGeminiProvider("key123", "gemini-1.5-flash", 5*time.Second)
		provider.BaseURL = srv.URL

		got, err := provider.Generate(context.Background(), "summarize this")
		assert.NoError(t, err)
		assert.Equal(t, "a summary", got)
	})

	t.Run("no candidates is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer srv.Close()

		provider := NewGeminiProvider("key123", "gemini-1.5-flash", 5*time.Second)
		provider.BaseURL = srv.URL

		_, err := provider.Generate(context.Background(), "anything")
		assert.Error(t, err)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		provider := NewGeminiProvider("key123", "gemini-1.5-flash", 5*time.Second)
		provider.BaseURL = srv.URL

		_, err := provider.Generate(context.Background(), "anything")
		assert.Error(t, err)
	})
}
