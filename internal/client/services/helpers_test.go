package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/fittrack/internal/client/api"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/dmitrijs2005/fittrack/internal/client/storage"
)

type call struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]any
}

type reply struct {
	status int
	body   string
}

// backend is a scripted fake FitTrack API keyed by "METHOD /path".
type backend struct {
	mu      sync.Mutex
	routes  map[string]reply
	calls   []call
	server  *httptest.Server
	store   *session.Store
	client  *api.Client
	visited []string
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{routes: map[string]reply{}}
	b.server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.server.Close)

	b.store = session.NewStore(storage.NewMemory())
	b.client = api.New(b.server.URL,
		api.WithTokenStore(b.store),
		api.WithNavigator(api.NavigatorFunc(func(route string) {
			b.mu.Lock()
			b.visited = append(b.visited, route)
			b.mu.Unlock()
		})),
	)
	return b
}

func (b *backend) on(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = reply{status: status, body: body}
}

func (b *backend) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	b.mu.Lock()
	b.calls = append(b.calls, call{Method: r.Method, Path: r.URL.EscapedPath(), Header: r.Header.Clone(), Body: body})
	rep, ok := b.routes[r.Method+" "+r.URL.EscapedPath()]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Not found"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

func (b *backend) Calls() []call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]call(nil), b.calls...)
}

func (b *backend) Visited() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.visited...)
}
