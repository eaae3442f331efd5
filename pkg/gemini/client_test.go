package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"urbannest-properties/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger(io.Discard, "error")
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("test-key", "gemini-1.5-flash")
	c.baseURL = server.URL
	return c
}

func TestGenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "Strong BUY"}},
				}},
			},
		})
	})

	text, err := client.GenerateText(context.Background(), "Analyze this property")

	require.NoError(t, err)
	assert.Equal(t, "Strong BUY", text)
	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "Analyze this property", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateTextServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.GenerateText(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestGenerateTextNoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
