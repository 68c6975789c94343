package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arabicvideomaker/backend/internal/projects/domain"
	"github.com/arabicvideomaker/backend/internal/projects/repository"
	"github.com/arabicvideomaker/backend/internal/speech"
	"github.com/arabicvideomaker/backend/internal/videogen"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The whole client flow against stub providers: create a project, preview the
// speech, generate the video, and see the completed project in the listing.
func TestRouterEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	speechProvider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("mp3-bytes"))
	}))
	defer speechProvider.Close()

	videoProvider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"success","output":["http://x/video.mp4"]}`))
	}))
	defer videoProvider.Close()

	store := repository.NewMemoryRepository()
	mediaDir := t.TempDir()

	speechSvc := speech.NewService(speech.NewClient(speechProvider.URL, "k"), mediaDir, "/media")
	videoSvc := videogen.NewService(store, videogen.NewClient(videoProvider.URL, "k", 5*time.Second))

	router := BuildRouter(RouterDeps{
		ServiceName:  "test",
		Version:      "0.0.0",
		Store:        store,
		SpeechSvc:    speechSvc,
		VideoSvc:     videoSvc,
		MediaDir:     mediaDir,
		MediaBaseURL: "/media",
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	// Create a project.
	rr := do(http.MethodPost, "/api/projects", `{"text":"مرحبا","dialect":"msa","voice":"male1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var created struct {
		Success bool           `json:"success"`
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.True(t, created.Success)
	require.Equal(t, domain.StatusDraft, created.Project.Status)

	// Preview the speech.
	rr = do(http.MethodPost, "/api/tts/preview", `{"text":"مرحبا","voice":"male1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"audio_url"`)

	// Generate the video.
	rr = do(http.MethodPost, "/api/video/generate", `{"project_id":"`+created.Project.ID+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"completed"`)
	assert.Contains(t, rr.Body.String(), "http://x/video.mp4")

	// The listing now shows the completed project.
	rr = do(http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var listed struct {
		Success  bool             `json:"success"`
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed.Projects, 1)
	assert.Equal(t, domain.StatusCompleted, listed.Projects[0].Status)
	assert.Equal(t, "http://x/video.mp4", listed.Projects[0].VideoURL)

	// Catalogs are independent of project state.
	rr = do(http.MethodGet, "/api/voices", "")
	require.Equal(t, http.StatusOK, rr.Code)
	rr = do(http.MethodGet, "/api/dialects", "")
	require.Equal(t, http.StatusOK, rr.Code)
}
