//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"

	progressrepo "github.com/heartmarshall/biblestories-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/biblestories-backend/internal/auth"
	"github.com/heartmarshall/biblestories-backend/internal/config"
	"github.com/heartmarshall/biblestories-backend/internal/corpus"
	"github.com/heartmarshall/biblestories-backend/internal/corpus/stories"
	progresssvc "github.com/heartmarshall/biblestories-backend/internal/service/progress"
	"github.com/heartmarshall/biblestories-backend/internal/transport/middleware"
	"github.com/heartmarshall/biblestories-backend/internal/transport/rest"
)

const testJWTSecret = "e2e-test-secret-0123456789abcdef0123"

// testServer bundles the full HTTP stack over the real corpus, with the
// progress store behind pgxmock so no database is needed.
type testServer struct {
	Server *httptest.Server
	Mock   pgxmock.PgxPoolIface
	Tokens *auth.TokenManager
	Corpus *corpus.Corpus
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	c, err := corpus.Build(stories.Partitions()...)
	require.NoError(t, err, "corpus must build from declared partitions")

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := progressrepo.New(mock)
	svc := progresssvc.NewService(logger, repo, 5*time.Second)
	tokens := auth.NewTokenManager(testJWTSecret, "biblestories")

	storiesHandler := rest.NewStoriesHandler(c)
	progressHandler := rest.NewProgressHandler(svc, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stories", storiesHandler.List)
	mux.HandleFunc("GET /api/stories/daily", storiesHandler.Daily)
	mux.HandleFunc("GET /api/stories/{id}", storiesHandler.GetByID)
	mux.HandleFunc("GET /api/volumes", storiesHandler.Volumes)
	mux.HandleFunc("GET /api/categories", storiesHandler.Categories)
	mux.HandleFunc("GET /api/books", storiesHandler.Books)
	mux.HandleFunc("GET /api/progress", progressHandler.Fetch)
	mux.HandleFunc("POST /api/progress/complete", progressHandler.Complete)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		}),
		middleware.Auth(tokens),
	)(mux)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &testServer{Server: server, Mock: mock, Tokens: tokens, Corpus: c}
}

// userToken creates a fresh user id and a valid bearer token for it.
func (ts *testServer) userToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	token, err := ts.Tokens.GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	return userID, token
}

// getJSON issues a GET and decodes the JSON response body into out.
func (ts *testServer) getJSON(t *testing.T, path, token string, out any) int {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.Server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// postJSON issues a POST with a JSON body and decodes the response into out.
func (ts *testServer) postJSON(t *testing.T, path, token string, body, out any) int {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, bytes.NewReader(buf))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
