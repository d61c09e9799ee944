package quoteclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api")
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_Search_SendsOnlyNonEmptyFilters(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quotes", r.URL.Path)
		assert.Equal(t, "mengajar", r.URL.Query().Get("category"))
		_, hasQuery := r.URL.Query()["query"]
		assert.False(t, hasQuery)
		writeJSON(w, http.StatusOK, `[{"id":6,"text":"t","original":"o","source":"s","category":"Mengajar","explanation":"e"}]`)
	})

	quotes, err := client.Search(context.Background(), "mengajar", "")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, 6, quotes[0].Id)
	assert.Equal(t, "Mengajar", quotes[0].Category)
	assert.Nil(t, quotes[0].Status)
}

func TestClient_List_EmptyArray(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	quotes, err := client.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, quotes)
	assert.Empty(t, quotes)
}

func TestClient_Get(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/quotes/1":
			writeJSON(w, http.StatusOK, `{"id":1,"text":"t","original":"o","source":"s","category":"c","explanation":"e","status":"Shahih"}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"error":"Quote with ID 999 not found","message":"Please check if the ID is correct (valid range: 1-20)"}`)
		}
	})

	quote, err := client.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, quote.Id)
	require.NotNil(t, quote.Status)
	assert.Equal(t, "Shahih", *quote.Status)

	_, err = client.Get(context.Background(), 999)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Quote with ID 999 not found", apiErr.Code)
	assert.Contains(t, apiErr.Message, "valid range: 1-20")
}

func TestClient_Random(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quotes/random", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"id":3,"text":"t","original":"o","source":"s","category":"c","explanation":"e"}`)
	})

	quote, err := client.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, quote.Id)
}

func TestClient_Categories(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quotes/categories", r.URL.Path)
		writeJSON(w, http.StatusOK, `["Menuntut Ilmu","Mengajar"]`)
	})

	categories, err := client.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Menuntut Ilmu", "Mengajar"}, categories)
}

func TestClient_NonJSONErrorFallsBackToStatusText(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := client.Random(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Code)
}

func TestClient_SearchById(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quotes", r.URL.Path)
		switch r.URL.Query().Get("id") {
		case "4":
			writeJSON(w, http.StatusOK, `{"id":4,"text":"t","original":"o","source":"s","category":"Adab","explanation":"e"}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"error":"Quote not found"}`)
		}
	})

	quote, err := client.SearchById(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, quote.Id)
	assert.Equal(t, "Adab", quote.Category)

	_, err = client.SearchById(context.Background(), 404)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Quote not found", apiErr.Code)
	assert.Empty(t, apiErr.Message)
}
