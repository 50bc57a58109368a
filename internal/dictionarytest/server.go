// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dictionarytest runs an in-memory dictionary service over HTTP.

It speaks the same wire format as the real service (flat tag JSON, the
listSuggestion envelope, {status, message} error payloads) so that the
client can be exercised end to end without a network dependency:

	server := dictionarytest.New()
	defer server.Close()

	client, err := dictionary.New(server.Config(), nil)

Seed state with the Add* methods (or [Service.Apply] for a YAML seed file)
and inject failures with [Service.Fail]. [Service.Handler] can also be
mounted on a real listener; cmd/dictionary-stub does that.
*/
package dictionarytest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/dictionary/internal/platform/constants"
	"github.com/taibuivan/dictionary/internal/platform/ctxutil"
	"github.com/taibuivan/dictionary/internal/platform/middleware"
	"github.com/taibuivan/dictionary/internal/platform/respond"
	"github.com/taibuivan/dictionary/pkg/config"
	"github.com/taibuivan/dictionary/pkg/dictionary/permission"
	"github.com/taibuivan/dictionary/pkg/dictionary/suggestion"
	"github.com/taibuivan/dictionary/pkg/dictionary/tag"
)

// Version is the API version the service mounts its routes under.
const Version = "1"

// fault is a one-shot injected error response.
type fault struct {
	status  int
	message string
}

// Service is the in-memory state and HTTP handler of the dictionary service.
//
// # Concurrency
//
// All state is guarded by one mutex; handlers may run concurrently.
type Service struct {
	handler http.Handler

	mu          sync.Mutex
	tags        map[tag.TagID]tag.Tag
	suggestions map[suggestion.Type][]seededSuggestion
	roles       map[permission.Scope]permission.UserPermissionRole
	rights      map[permission.PermissionRole][]permission.PermissionRight
	faults      map[string][]fault
	calls       map[string]int
	requestIDs  []string
}

// Option configures a [Service].
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes the service's request logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// NewService builds an empty service.
func NewService(opts ...Option) *Service {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Service{
		tags:        map[tag.TagID]tag.Tag{},
		suggestions: map[suggestion.Type][]seededSuggestion{},
		roles:       map[permission.Scope]permission.UserPermissionRole{},
		rights:      map[permission.PermissionRole][]permission.PermissionRight{},
		faults:      map[string][]fault{},
		calls:       map[string]int{},
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID(),
		middleware.StructuredLogger(o.logger),
		middleware.PanicRecovery(o.logger),
		s.intercept,
	)

	router.Route(constants.APIPathPrefix+Version, func(api chi.Router) {
		api.Route("/tags", s.registerTagRoutes)
		api.Route("/suggestions", s.registerSuggestionRoutes)
		api.Route("/permission", s.registerPermissionRoutes)
	})

	s.handler = router
	return s
}

// Handler returns the HTTP handler serving the versioned API.
func (s *Service) Handler() http.Handler {
	return s.handler
}

// Server runs a [Service] on a loopback httptest server.
type Server struct {
	*Service
	*httptest.Server
}

// New starts a server with an empty service. Call Close when done.
func New(opts ...Option) *Server {
	service := NewService(opts...)
	return &Server{Service: service, Server: httptest.NewServer(service.Handler())}
}

// Config returns a client configuration pointing at the server.
func (s *Server) Config() *config.Config {
	return &config.Config{
		URL:     s.URL,
		Version: Version,
		Timeout: 5 * time.Second,
	}
}

// # Fault Injection

// Fail makes the next request matching method and path answer with status
// and message instead of reaching the handler. path is relative to the
// versioned API root, e.g. "tags/" or "tags/Industry/software/".
func (s *Service) Fail(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := callKey(method, path)
	s.faults[key] = append(s.faults[key], fault{status: status, message: message})
}

// Calls returns how many requests matched method and path.
func (s *Service) Calls(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[callKey(method, path)]
}

// TotalCalls returns the number of API requests received.
func (s *Service) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// RequestIDs returns the correlation ids of the received requests in order.
func (s *Service) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

// intercept records every call and serves injected faults.
func (s *Service) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		key := callKey(request.Method, strings.TrimPrefix(request.URL.Path, constants.APIPathPrefix+Version+"/"))

		s.mu.Lock()
		s.calls[key]++
		s.requestIDs = append(s.requestIDs, ctxutil.GetRequestID(request.Context()))

		var injected *fault
		if queue := s.faults[key]; len(queue) > 0 {
			injected = &queue[0]
			s.faults[key] = queue[1:]
		}
		s.mu.Unlock()

		if injected != nil {
			respond.Status(writer, injected.status, injected.message)
			return
		}

		next.ServeHTTP(writer, request)
	})
}

func callKey(method, path string) string {
	return method + " " + path
}
