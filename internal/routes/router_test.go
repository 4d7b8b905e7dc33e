package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/just-nibble/snapvcs/internal/domain"
	"github.com/just-nibble/snapvcs/internal/http/handlers"
	"github.com/just-nibble/snapvcs/internal/repository"
	"github.com/just-nibble/snapvcs/internal/storage"
	"github.com/just-nibble/snapvcs/internal/usecases"
	"github.com/just-nibble/snapvcs/pkg/config"
)

type envelope struct {
	Status  string          `json:"status"`
	Kind    string          `json:"kind"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := storage.OpenAndMigrate(config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "api.db"),
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close(db) })

	stores := repository.NewStores(db)
	tx := repository.NewGormTransactor(db)
	clock := domain.RealClock{}
	ids := domain.UUIDGenerator{}
	log := zerolog.Nop()

	return NewRouter(Handlers{
		Repositories: handlers.NewRepositoryHandler(
			usecases.NewGitRepositoryUsecase(stores.Repositories, tx, clock, ids, log),
			usecases.NewAuthorUseCase(stores.Repositories, stores.Authors),
		),
		Files:    handlers.NewFileHandler(usecases.NewWorkTreeUsecase(stores, clock, log)),
		Commits:  handlers.NewCommitHandler(usecases.NewSnapshotUsecase(stores, tx, clock, ids, log), usecases.NewHistoryUsecase(stores, config.DefaultHistoryDepth, log)),
		Branches: handlers.NewBranchHandler(usecases.NewBranchUsecase(stores, tx, clock, ids, log)),
		Status:   handlers.NewStatusHandler(usecases.NewStatusUsecase(stores)),
		Health: handlers.NewHealthHandler(handlers.PingFunc(func(ctx context.Context) error {
			return storage.Ping(ctx, db)
		})),
	}, log)
}

func do(t *testing.T, h http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(handlers.OwnerHeader, "owner-1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestRouter_CommitCheckoutLog(t *testing.T) {
	h := newTestRouter(t)

	code, env := do(t, h, http.MethodPost, "/repositories", map[string]string{"owner": "acme", "name": "demo"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "success", env.Status)

	code, env = do(t, h, http.MethodPost, "/repositories", map[string]string{"owner": "acme", "name": "demo"})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `false`, string(mustField(t, env.Data, "initialized")))

	code, _ = do(t, h, http.MethodPut, "/repositories/demo/files/src/a.txt", map[string]string{"content": "hello"})
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, h, http.MethodPost, "/repositories/demo/commits", map[string]string{"message": "first"})
	require.Equal(t, http.StatusCreated, code)
	var first struct {
		CommitID string  `json:"commit_id"`
		Parent   *string `json:"parent"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.NotEmpty(t, first.CommitID)
	assert.Nil(t, first.Parent)

	code, _ = do(t, h, http.MethodDelete, "/repositories/demo/files/src/a.txt", nil)
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, h, http.MethodGet, "/repositories/demo/branches/main/status", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"state":"deleted"`)

	code, env = do(t, h, http.MethodPost, "/repositories/demo/checkout", map[string]string{"branch": "main"})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `1`, string(mustField(t, env.Data, "files")))

	code, env = do(t, h, http.MethodGet, "/repositories/demo/files/src/a.txt", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"path":"src/a.txt","content":"hello"}`, string(env.Data))

	code, env = do(t, h, http.MethodGet, "/repositories/demo/branches/main/log?limit=10", nil)
	require.Equal(t, http.StatusOK, code)
	var log struct {
		Entries []struct {
			CommitID string `json:"commit_id"`
			Message  string `json:"message"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &log))
	require.Len(t, log.Entries, 1)
	assert.Equal(t, first.CommitID, log.Entries[0].CommitID)

	code, env = do(t, h, http.MethodGet, "/repositories/demo/commits/"+first.CommitID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `["src/a.txt"]`, string(mustField(t, env.Data, "files")))
}

func TestRouter_ErrorKinds(t *testing.T) {
	h := newTestRouter(t)
	do(t, h, http.MethodPost, "/repositories", map[string]string{"name": "demo"})

	code, env := do(t, h, http.MethodGet, "/repositories/missing/tree", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", env.Kind)

	code, env = do(t, h, http.MethodPost, "/repositories/demo/branches", map[string]string{"name": "main"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "conflict", env.Kind)

	code, env = do(t, h, http.MethodPost, "/repositories/demo/commits", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation", env.Kind)

	stale := "not-the-head"
	code, env = do(t, h, http.MethodPost, "/repositories/demo/commits", map[string]any{"message": "m", "expected_head": stale})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "conflict", env.Kind)

	code, _ = do(t, h, http.MethodGet, "/repositories/demo/branches/main/log?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, h, http.MethodPost, "/repositories/demo/commits", map[string]string{"message": "m", "author_email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation", env.Kind)
	assert.Contains(t, env.Message, `authoremail failed "email"`)

	code, env = do(t, h, http.MethodPost, "/repositories/demo/checkout", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation", env.Kind)
	assert.Contains(t, env.Message, `branch failed "required"`)

	code, env = do(t, h, http.MethodPost, "/repositories/demo/checkout", map[string]string{"branch": "bad..name"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, `branch failed "branchname"`)

	code, _ = do(t, h, http.MethodGet, "/repositories/demo/files/nope.txt", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_MissingOwner(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repositories", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "owner id is required")
}

func TestRouter_Health(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func mustField(t *testing.T, raw json.RawMessage, key string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	v, ok := m[key]
	require.True(t, ok, "missing %q in %s", key, raw)
	return v
}
