package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Synthesize(t *testing.T) {
	t.Run("returns audio bytes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/text-to-speech/voice-x", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get("xi-api-key"))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("mp3-bytes"))
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret")
		audio, err := client.Synthesize(context.Background(), "مرحبا", "voice-x")
		require.NoError(t, err)
		assert.Equal(t, []byte("mp3-bytes"), audio)
	})

	t.Run("non-2xx carries provider message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"detail":"voice not available"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret")
		_, err := client.Synthesize(context.Background(), "مرحبا", "voice-x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "422")
		assert.Contains(t, err.Error(), "voice not available")
	})

	t.Run("transport failure", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "secret")
		_, err := client.Synthesize(context.Background(), "مرحبا", "voice-x")
		assert.Error(t, err)
	})
}
