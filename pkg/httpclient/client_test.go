package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Equal(t, "", c.token)
	assert.Equal(t, "application/json", c.headers.Get("Accept"))
}

func TestNewClient_Options(t *testing.T) {
	c := NewClient(
		WithTimeout(5*time.Second),
		WithToken("tok"),
		WithHeader("X-Trace", "abc"),
	)
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	assert.Equal(t, "tok", c.token)
	assert.Equal(t, "abc", c.headers.Get("X-Trace"))
}

func TestWithTimeout_IgnoresZero(t *testing.T) {
	c := NewClient(WithTimeout(0))
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://localhost:8080/users/7"))
	assert.True(t, IsURL("https://api.example.com"))
	assert.False(t, IsURL("/tmp/user.json"))
	assert.False(t, IsURL("-"))
	assert.False(t, IsURL("ftp://example.com"))
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/7", r.URL.Path)
		assert.Equal(t, "Bearer jwt-abc-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "abc", r.Header.Get("X-Trace"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"name":"Ada"}`))
	}))
	defer srv.Close()

	c := NewClient(WithToken("jwt-abc-123"), WithHeader("X-Trace", "abc"))
	data, err := c.Get(context.Background(), srv.URL+"/users/7")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Ada"}`, string(data))
}

func TestClient_Get_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	data, err := NewClient().Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestClient_Get_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(strings.Repeat("x", 300)))
	}))
	defer srv.Close()

	_, err := NewClient().Get(context.Background(), srv.URL)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Len(t, se.Body, 203)
	assert.True(t, strings.HasPrefix(err.Error(), "HTTP 404: xxx"))
}

func TestClient_Get_EmptyErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient().Get(context.Background(), srv.URL)
	assert.EqualError(t, err, "HTTP 503")
}

func TestClient_Get_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient().Get(ctx, srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Get_BadURL(t *testing.T) {
	_, err := NewClient().Get(context.Background(), "http://[::1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create request")
}
