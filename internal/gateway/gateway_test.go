package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/transport"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := transport.NewClient(srv.URL, 5*time.Second, staticToken("tok"), testLogger())
	return New(c)
}

func TestLogin_Success(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@jobsstorm.com", body["userEmail"])
		assert.Equal(t, "secret", body["userPassword"])

		json.NewEncoder(w).Encode(map[string]string{"token": "jwt-token", "message": "Login successful"})
	})

	res, reply := g.Login(context.Background(), "admin@jobsstorm.com", "secret")
	require.True(t, res.OK)
	require.NotNil(t, reply)
	assert.Equal(t, "jwt-token", reply.Token)
	assert.Equal(t, "Login successful", reply.Message)
}

func TestLogin_MissingToken(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "ok but no token"})
	})

	res, reply := g.Login(context.Background(), "a@b.c", "pw")
	assert.False(t, res.OK)
	assert.Nil(t, reply)
}

func TestLogin_Rejected(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	})

	res, reply := g.Login(context.Background(), "a@b.c", "wrong")
	assert.False(t, res.OK)
	assert.Nil(t, reply)
	assert.Equal(t, "Invalid credentials", res.Message)
}

func TestUpdateJob_WrapsBody(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/admin/update-job-details/j1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		updated, ok := body["updatedData"].(map[string]any)
		require.True(t, ok, "payload must be wrapped under updatedData")
		assert.Equal(t, "Senior Gopher", updated["jobTitle"])

		w.WriteHeader(http.StatusOK)
	})

	res := g.UpdateJob(context.Background(), "j1", map[string]any{"jobTitle": "Senior Gopher"})
	assert.True(t, res.OK)
}

func TestAddBlog_WrapsBody(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/post-blogs", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		data, ok := body["data"].(map[string]any)
		require.True(t, ok, "payload must be wrapped under data")
		assert.Equal(t, "Hiring in 2026", data["title"])

		w.WriteHeader(http.StatusCreated)
	})

	res := g.AddBlog(context.Background(), map[string]any{"title": "Hiring in 2026"})
	assert.True(t, res.OK)
	assert.Equal(t, http.StatusCreated, res.Status)
}

func TestDeleteJob_Path(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/admin/delete-job/j9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.True(t, g.DeleteJob(context.Background(), "j9").OK)
}

func TestActivateEmployeePlan_Body(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/activate-employee-plan", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "c1", body["employeeId"])
		assert.Equal(t, "p1", body["planId"])

		w.WriteHeader(http.StatusOK)
	})

	assert.True(t, g.ActivateEmployeePlan(context.Background(), "c1", "p1").OK)
}
