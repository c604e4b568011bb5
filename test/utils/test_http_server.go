package testutils

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/phayes/freeport"
)

// RecordedRequest is a copy of a request received by TestHttpServer.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// TestHttpServer plays the remote annotation service, the object store and the
// artifact host in tests. Every request is recorded before it is handled.
type TestHttpServer struct {
	*http.ServeMux

	lock     sync.Mutex
	requests []RecordedRequest
	port     int
}

func NewTestHttpServer() *TestHttpServer {
	mux := http.NewServeMux()
	return &TestHttpServer{ServeMux: mux}
}

// Returns the port the server is listening on.
func (s *TestHttpServer) Start(t *testing.T) int {
	port, err := freeport.GetFreePort()
	if err != nil {
		t.Fatalf("cannot start test server: %v", err)
	}

	srvAddr := fmt.Sprintf("127.0.0.1:%d", port)
	srv := http.Server{
		Addr:    srvAddr,
		Handler: http.HandlerFunc(s.record),
	}

	t.Cleanup(func() {
		srv.Close()
	})

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			t.Errorf("cannot start test server: %v", err)
		}
	}()

	waitForServer(t, srvAddr)
	s.port = port
	return port
}

// URL returns the base URL of a started server.
func (s *TestHttpServer) URL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", s.port)
}

// HandleEnvelope registers pattern to answer with {code, data}.
func (s *TestHttpServer) HandleEnvelope(pattern string, respond func(r *http.Request) (code int, data interface{})) {
	s.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		code, data := respond(r)
		WriteEnvelope(w, code, data)
	})
}

// Requests returns requests received so far whose path equals path.
func (s *TestHttpServer) Requests(path string) []RecordedRequest {
	s.lock.Lock()
	defer s.lock.Unlock()

	var matching []RecordedRequest
	for _, req := range s.requests {
		if req.Path == path {
			matching = append(matching, req)
		}
	}

	return matching
}

func (s *TestHttpServer) record(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body.Close()

	s.lock.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})
	s.lock.Unlock()

	r.Body = io.NopCloser(bytesReader(body))
	s.ServeMux.ServeHTTP(w, r)
}

func WriteEnvelope(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"code": code,
		"data": data,
	})
}

func waitForServer(t *testing.T, url string) {
	backoff := 50 * time.Millisecond

	for i := 0; i < 10; i++ {
		conn, err := net.DialTimeout("tcp", url, 1*time.Second)
		if err != nil {
			time.Sleep(backoff)
			continue
		}
		err = conn.Close()
		if err != nil {
			t.Fatal(err)
		}
		return
	}

	t.Fatalf("server on URL %s not up after 10 attempts", url)
}
