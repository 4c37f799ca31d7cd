package console

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/config"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/gateway"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/logging"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/session"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/toast"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/transport"
)

// newTestApp builds an App against an httptest backend, with the REPL fed
// from script instead of stdin and output captured in the returned buffer.
func newTestApp(t *testing.T, handler http.Handler, script string) (*App, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
		SessionFile:    filepath.Join(t.TempDir(), "session.json"),
	}
	log := logging.New(io.Discard, "error")
	sess := session.NewStore(cfg.SessionFile)
	client := transport.NewClient(cfg.BaseURL, cfg.RequestTimeout, sess, log)

	var out bytes.Buffer
	return &App{
		cfg:    cfg,
		log:    log,
		gw:     gateway.New(client),
		sess:   sess,
		toasts: toast.NewManager(nil),
		reader: bufio.NewReader(strings.NewReader(script)),
		out:    &out,
	}, &out
}

func employerFixture() []map[string]any {
	return []map[string]any{
		{"_id": "e1", "companyName": "Acme", "contactEmail": "hr@acme.com", "verificationstatus": "pending"},
		{"_id": "e2", "companyName": "Globex", "contactEmail": "jobs@globex.com", "verificationstatus": "approved"},
	}
}

func TestEmployersScreen_ApproveFlow(t *testing.T) {
	var approved string
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/getallemployers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": employerFixture()})
	})
	mux.HandleFunc("/admin/approve-employer/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		approved = strings.TrimPrefix(r.URL.Path, "/admin/approve-employer/")
		w.WriteHeader(http.StatusOK)
	})

	a, out := newTestApp(t, mux, "approve e1\nback\n")
	a.EmployersScreen(context.Background())

	assert.Equal(t, "e1", approved)
	assert.Contains(t, out.String(), "Employer approved successfully!")
	assert.Contains(t, out.String(), "Acme")
}

func TestEmployersScreen_TabsAndSearch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/getallemployers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": employerFixture()})
	})

	a, out := newTestApp(t, mux, "tab approved\nsearch acme\nback\n")
	a.EmployersScreen(context.Background())

	text := out.String()
	assert.Contains(t, text, "[approved]")
	// On the approved tab after searching for acme nothing is left.
	assert.Contains(t, text, "-- no employers found --")
}

func TestCompanyJobsScreen_DeleteNeedsConfirmation(t *testing.T) {
	var deleted bool
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/get-all-company-posted-jobs/c1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{
			{"_id": "j1", "jobTitle": "Go Developer", "category": "Engineering"},
		}})
	})
	mux.HandleFunc("/admin/delete-job/", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusOK)
	})

	// First attempt declines the confirmation, second accepts.
	a, out := newTestApp(t, mux, "delete j1\nn\ndelete j1\ny\nback\n")
	a.CompanyJobsScreen(context.Background(), "c1")

	assert.True(t, deleted)
	assert.Contains(t, out.String(), "Job deleted successfully")
	assert.Contains(t, out.String(), "-- no jobs found --")
}

func TestDashboard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/getallemployers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": employerFixture()})
	})
	mux.HandleFunc("/admin/get-registerd-candidate", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "c1", "userName": "Bob", "blockstatus": "block"},
			{"_id": "c2", "userName": "Eve", "blockstatus": "unblock"},
			{"_id": "c3", "userName": "Mallory", "blockstatus": "unblock"},
		})
	})
	mux.HandleFunc("/admin/get-all-company-details", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{{"_id": "co1"}}})
	})
	mux.HandleFunc("/admin/get-all-blogs", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/admin/get-all-plans", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{{"_id": "p1"}, {"_id": "p2"}}})
	})

	a, out := newTestApp(t, mux, "")
	a.Dashboard(context.Background())

	text := out.String()
	assert.Contains(t, text, "Employers")
	assert.Contains(t, text, "(1 pending review)")
	assert.Contains(t, text, "(1 blocked)")
	// A failing widget degrades to zero without killing the rest.
	assert.Contains(t, text, "Blogs")
}

func TestFlushToast(t *testing.T) {
	a, out := newTestApp(t, http.NewServeMux(), "")

	a.toasts.Show("Saved", toast.Success)
	a.flushToast()
	assert.Contains(t, out.String(), "✔ Saved")

	// The toast is consumed on print; the next prompt does not repeat it.
	out.Reset()
	a.flushToast()
	assert.Empty(t, out.String())

	a.toasts.Show("Broke", toast.Error)
	a.flushToast()
	assert.Contains(t, out.String(), "✘ Broke")
}
