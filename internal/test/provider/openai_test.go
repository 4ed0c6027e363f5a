package provider_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artify-backend/internal/provider"
)

func newEditServer(t *testing.T, status int, body interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/edits", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
}

func TestOpenAIClient_GenerateDecodesB64(t *testing.T) {
	imageBytes := []byte("fake-jpeg-bytes")
	server := newEditServer(t, http.StatusOK, map[string]interface{}{
		"data": []map[string]string{
			{"b64_json": base64.StdEncoding.EncodeToString(imageBytes)},
		},
	})
	defer server.Close()

	client := provider.NewOpenAIClient(server.URL, "test-key", "gpt-image-1.5", "low")
	result, err := client.Generate(context.Background(), provider.Request{
		SourceImageURL: "https://example.com/photo.jpg",
		PromptText:     "in the style of Mona Lisa",
	})

	require.NoError(t, err)
	assert.Equal(t, imageBytes, result.Data)
	assert.Equal(t, "image/jpeg", result.ContentType)
}

func TestOpenAIClient_RejectsNonHTTPSSource(t *testing.T) {
	client := provider.NewOpenAIClient("https://api.openai.com", "test-key", "gpt-image-1.5", "low")

	_, err := client.Generate(context.Background(), provider.Request{
		SourceImageURL: "http://localhost:8080/uploads/abc/photo.jpg",
	})

	require.Error(t, err)
	assert.Equal(t, provider.FailureFatal, provider.ClassOf(err))
}

func TestOpenAIClient_ClassifiesRateLimit(t *testing.T) {
	server := newEditServer(t, http.StatusTooManyRequests, map[string]string{"error": "slow down"})
	defer server.Close()

	client := provider.NewOpenAIClient(server.URL, "test-key", "gpt-image-1.5", "low")
	_, err := client.Generate(context.Background(), provider.Request{
		SourceImageURL: "https://example.com/photo.jpg",
	})

	require.Error(t, err)
	assert.Equal(t, provider.FailureRateLimited, provider.ClassOf(err))
}

func TestOpenAIClient_ClassifiesServerErrorTransient(t *testing.T) {
	server := newEditServer(t, http.StatusBadGateway, map[string]string{"error": "upstream"})
	defer server.Close()

	client := provider.NewOpenAIClient(server.URL, "test-key", "gpt-image-1.5", "low")
	_, err := client.Generate(context.Background(), provider.Request{
		SourceImageURL: "https://example.com/photo.jpg",
	})

	require.Error(t, err)
	assert.Equal(t, provider.FailureTransient, provider.ClassOf(err))
}

func TestOpenAIClient_ClassifiesClientErrorFatal(t *testing.T) {
	server := newEditServer(t, http.StatusBadRequest, map[string]interface{}{
		"error": map[string]string{"message": "invalid prompt"},
	})
	defer server.Close()

	client := provider.NewOpenAIClient(server.URL, "test-key", "gpt-image-1.5", "low")
	_, err := client.Generate(context.Background(), provider.Request{
		SourceImageURL: "https://example.com/photo.jpg",
	})

	require.Error(t, err)
	assert.Equal(t, provider.FailureFatal, provider.ClassOf(err))
}

func TestOpenAIClient_EmptyDataIsFatal(t *testing.T) {
	server := newEditServer(t, http.StatusOK, map[string]interface{}{
		"data":  []map[string]string{},
		"error": map[string]string{"message": "nothing generated"},
	})
	defer server.Close()

	client := provider.NewOpenAIClient(server.URL, "test-key", "gpt-image-1.5", "low")
	_, err := client.Generate(context.Background(), provider.Request{
		SourceImageURL: "https://example.com/photo.jpg",
	})

	require.Error(t, err)
	assert.Equal(t, provider.FailureFatal, provider.ClassOf(err))
	assert.Contains(t, err.Error(), "nothing generated")
}
