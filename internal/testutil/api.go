package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// API is a fake Twitch proxy backed by httptest. Unknown users answer with
// the proxy's error body; unknown streams answer as offline.
type API struct {
	server *httptest.Server

	mu       sync.Mutex
	users    map[string]string
	streams  map[string]string
	holds    map[string]chan struct{}
	requests []string
	callback string
}

// NewAPI starts a fake API that is shut down when the test ends.
func NewAPI(t *testing.T) *API {
	t.Helper()
	a := &API{
		users:   make(map[string]string),
		streams: make(map[string]string),
		holds:   make(map[string]chan struct{}),
	}
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
	t.Cleanup(func() {
		a.releaseAll()
		a.server.Close()
	})
	return a
}

// URL returns the API root to pass to twitch.NewClient.
func (a *API) URL() string {
	return a.server.URL
}

// SetUser registers a raw JSON body for the users endpoint.
func (a *API) SetUser(name, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.users[name] = body
}

// SetStream registers a raw JSON body for the streams endpoint.
func (a *API) SetStream(name, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.streams[name] = body
}

// WrapAll makes every response a JSONP call to callback, the way some
// proxies answer whatever the request asked for.
func (a *API) WrapAll(callback string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.callback = callback
}

// Hold blocks responses for category/name until the returned release func is
// called.
func (a *API) Hold(category, name string) func() {
	key := category + "/" + name
	ch := make(chan struct{})
	a.mu.Lock()
	a.holds[key] = ch
	a.mu.Unlock()
	return func() {
		a.mu.Lock()
		current, ok := a.holds[key]
		if ok && current == ch {
			delete(a.holds, key)
		}
		a.mu.Unlock()
		if ok && current == ch {
			close(ch)
		}
	}
}

// Requests returns the request paths served so far, in arrival order.
func (a *API) Requests() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.requests...)
}

func (a *API) serve(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	category, name := parts[0], parts[1]
	key := category + "/" + name

	a.mu.Lock()
	a.requests = append(a.requests, key)
	hold := a.holds[key]
	callback := a.callback
	var (
		body string
		ok   bool
	)
	switch category {
	case "users":
		body, ok = a.users[name]
		if !ok {
			body = fmt.Sprintf(`{"error":"Not Found","status":404,"message":"User \"%s\" was not found"}`, name)
		}
	case "streams":
		body, ok = a.streams[name]
		if !ok {
			body = `{"stream":null}`
		}
	default:
		a.mu.Unlock()
		http.NotFound(w, r)
		return
	}
	a.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-r.Context().Done():
			return
		}
	}
	if callback != "" {
		body = callback + "(" + body + ");"
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (a *API) releaseAll() {
	a.mu.Lock()
	holds := a.holds
	a.holds = make(map[string]chan struct{})
	a.mu.Unlock()
	for _, ch := range holds {
		close(ch)
	}
}
