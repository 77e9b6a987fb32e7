package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneloom/internal/models"
)

func newTestClient(url string) *Client {
	return NewClient(Config{BaseURL: url, Token: "tok", Timeout: 2 * time.Second})
}

func TestClient_Enabled(t *testing.T) {
	assert.False(t, NewClient(Config{}).Enabled())
	assert.True(t, newTestClient("http://example.com").Enabled())
}

func TestClient_Fetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, settingsPath, r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"llm":{"provider":"openai"}}`))
	}))
	defer server.Close()

	payload, err := newTestClient(server.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Contains(t, payload, "llm")
}

func TestClient_Fetch_NotFoundMeansNoConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	payload, err := newTestClient(server.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestClient_Fetch_NullBodyMeansNoConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer server.Close()

	payload, err := newTestClient(server.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestClient_Fetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestClient_Push_SendsWholeAggregate(t *testing.T) {
	var gotMethod, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
	}))
	defer server.Close()

	err := newTestClient(server.URL).Push(context.Background(), models.Settings{
		LLM: models.ModelConfig{Provider: "openai"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Contains(t, gotBody, `"provider":"openai"`)
}

func TestClient_Push_FailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := newTestClient(server.URL).Push(context.Background(), models.Settings{})
	assert.Error(t, err)
}
