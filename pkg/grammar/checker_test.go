package grammar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sampleResponse = `{
	"matches": [
		{
			"message": "Possible spelling mistake found.",
			"offset": 4,
			"length": 4,
			"context": {"text": "The qick fox", "offset": 4, "length": 4},
			"replacements": [{"value": "quick"}, {"value": "sick"}],
			"rule": {
				"issueType": "misspelling",
				"category": {"id": "TYPOS", "name": "Possible Typo"}
			}
		}
	]
}`

func TestLanguageToolChecker(t *testing.T) {
	t.Run("maps matches to candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "The qick fox", r.PostForm.Get("text"))
			assert.Equal(t, "en-US", r.PostForm.Get("language"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(sampleResponse))
		}))
		defer srv.Close()

		checker := NewLanguageToolChecker(srv.URL, "en-US", 5*time.Second)
		candidates, err := checker.Check(context.Background(), "The qick fox")
		assert.NoError(t, err)
		assert.Len(t, candidates, 1)

		got := candidates[0]
		assert.Equal(t, "Possible spelling mistake found.", got.Message)
		assert.Equal(t, "The qick fox", got.Context)
		assert.Equal(t, 4, got.Offset)
		assert.Equal(t, 4, got.Length)
		assert.Equal(t, []string{"quick", "sick"}, got.Replacements)
		assert.Equal(t, "Possible Typo", got.Category)
		assert.Equal(t, "misspelling", got.Type)
	})

	t.Run("empty matches yield empty candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"matches": []}`))
		}))
		defer srv.Close()

		checker := NewLanguageToolChecker(srv.URL, "en-US", 5*time.Second)
		candidates, err := checker.Check(context.Background(), "The quick fox")
		assert.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		checker := NewLanguageToolChecker(srv.URL, "en-US", 5*time.Second)
		_, err := checker.Check(context.Background(), "whatever")
		assert.Error(t, err)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		checker := NewLanguageToolChecker(srv.URL, "en-US", 5*time.Second)
		_, err := checker.Check(context.Background(), "whatever")
		assert.Error(t, err)
	})
}
