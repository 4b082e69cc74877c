package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/common"
)

type staticTokens struct{ token string }

func (s *staticTokens) AccessToken() string { return s.token }

func newTestClient(t *testing.T, handler http.Handler, token string, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.URL, &staticTokens{token: token}, nil, opts...)
	return c, srv
}

func TestLogin_SendsFormEncodedCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/token", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice", r.PostForm.Get("username"))
		assert.Equal(t, "s3cret", r.PostForm.Get("password"))
		assert.Empty(t, r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "tok-1", TokenType: "bearer"})
	})

	c, _ := newTestClient(t, handler, "")
	token, err := c.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	var hookCalls int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
	})

	c, _ := newTestClient(t, handler, "", WithUnauthorizedHook(func() { atomic.AddInt32(&hookCalls, 1) }))

	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Incorrect username or password")

	// A login 401 carries no bearer, so the global invalidation hook
	// must stay silent.
	assert.Zero(t, atomic.LoadInt32(&hookCalls))
}

func TestAuthenticatedRequest_CarriesBearerAndRequestID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-42", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(common.RequestIDHeader))
		json.NewEncoder(w).Encode(models.User{ID: "u1", Username: "alice"})
	})

	c, _ := newTestClient(t, handler, "tok-42")
	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUnauthorized_HookFiresOncePerToken(t *testing.T) {
	var hookCalls int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	tokens := &staticTokens{token: "stale"}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.URL, tokens, nil, WithUnauthorizedHook(func() { atomic.AddInt32(&hookCalls, 1) }))

	// Several concurrent-ish failures with the same token clear once.
	for i := 0; i < 3; i++ {
		_, err := c.CurrentUser(context.Background())
		assert.ErrorIs(t, err, common.ErrUnauthorized)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hookCalls))

	// A fresh token that also dies fires the hook again.
	tokens.token = "stale-2"
	_, err := c.CurrentUser(context.Background())
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hookCalls))
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		detail string
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, detail: "Structural model not found", want: common.ErrNotFound},
		{name: "validation", status: http.StatusUnprocessableEntity, detail: "max_iterations out of range", want: common.ErrValidation},
		{name: "bad request", status: http.StatusBadRequest, detail: "Cannot cancel completed or failed job", want: common.ErrValidation},
		{name: "server error", status: http.StatusInternalServerError, want: common.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.detail != "" {
					json.NewEncoder(w).Encode(map[string]string{"detail": tt.detail})
				}
			})
			c, _ := newTestClient(t, handler, "tok")

			_, err := c.GetJob(context.Background(), "j1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			if tt.detail != "" {
				assert.Contains(t, err.Error(), tt.detail)
			}
		})
	}
}

func TestTransportFailure_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c := New(srv.URL, &staticTokens{}, nil)
	_, err := c.ListProjects(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestRunAnalysis_PostsRequestBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/analysis/run", r.URL.Path)

		var req models.RunRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "m1", req.ModelID)
		assert.Equal(t, []string{"lc1"}, req.LoadCaseIDs)
		assert.Equal(t, "linear", req.Settings.AnalysisType)
		assert.Equal(t, 100, req.Settings.MaxIterations)

		json.NewEncoder(w).Encode(models.AnalysisJob{
			ID: "j1", ModelID: "m1", Status: models.JobStatusPending,
		})
	})

	c, _ := newTestClient(t, handler, "tok")
	job, err := c.RunAnalysis(context.Background(), models.RunRequest{
		ModelID:     "m1",
		LoadCaseIDs: []string{"lc1"},
		Settings:    models.DefaultAnalysisSettings(),
		SaveResults: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "j1", job.ID)
	assert.Equal(t, models.JobStatusPending, job.Status)
}

func TestCancelJob_UsesDelete(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/analysis/jobs/j1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "Analysis job cancelled"})
	})

	c, _ := newTestClient(t, handler, "tok")
	require.NoError(t, c.CancelJob(context.Background(), "j1"))
}

func TestListResults_EmptySetIsNotAnError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	c, _ := newTestClient(t, handler, "tok")
	list, err := c.ListResults(context.Background(), "m1")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.False(t, errors.Is(err, common.ErrNotFound))
}
