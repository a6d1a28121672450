package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func TestClient_GetForwardsTokenAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/items", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]item{{ID: 1, Name: "a"}})
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.URL+"/", srv.Client())
	var out []item
	err := c.Get(WithToken(context.Background(), "tok"), "/api/items", &out)

	require.NoError(t, err)
	require.Equal(t, []item{{ID: 1, Name: "a"}}, out)
}

func TestClient_PutSendsJSONBodyAndToleratesEmptyAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		var got item
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, item{ID: 7, Name: "x"}, got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.URL, srv.Client())
	var out item
	err := c.Put(context.Background(), "/api/items/7", item{ID: 7, Name: "x"}, &out)

	require.NoError(t, err)
	require.Equal(t, item{}, out)
}

func TestClient_Non2xxBecomesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.URL, srv.Client())
	err := c.Post(context.Background(), "/api/items", item{}, nil)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusBadRequest, se.Status)
	require.Equal(t, "/api/items", se.Path)
	require.Contains(t, se.Body, "boom")
}

func TestClient_TransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewWithHTTPClient(url, http.DefaultClient)
	err := c.Get(context.Background(), "/api/items", &[]item{})

	require.Error(t, err)
	var se *StatusError
	require.False(t, errors.As(err, &se))
}
