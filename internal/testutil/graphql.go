package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
)

var operationNameRegex = regexp.MustCompile(`(?:query|mutation)\s+(\w+)`)

// GraphQLRequest is one request received by a GraphQLServer.
type GraphQLRequest struct {
	Operation string
	Query     string
	Variables map[string]any
	Header    http.Header
}

// GraphQLHandler answers one operation. A non-empty errMessage is returned as a GraphQL error.
type GraphQLHandler func(req GraphQLRequest) (data any, errMessage string)

// GraphQLServer is an httptest server that answers GraphQL operations by name.
type GraphQLServer struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]GraphQLHandler
	requests []GraphQLRequest
}

// NewGraphQLServer starts a fake GraphQL endpoint that is closed with the test.
func NewGraphQLServer(t *testing.T) *GraphQLServer {
	t.Helper()
	s := &GraphQLServer{handlers: map[string]GraphQLHandler{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers the handler for the named operation, replacing any previous one.
func (s *GraphQLServer) Handle(operation string, h GraphQLHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[operation] = h
}

// Respond registers a handler that always returns data.
func (s *GraphQLServer) Respond(operation string, data any) {
	s.Handle(operation, func(GraphQLRequest) (any, string) { return data, "" })
}

// Fail registers a handler that always returns a GraphQL error.
func (s *GraphQLServer) Fail(operation, message string) {
	s.Handle(operation, func(GraphQLRequest) (any, string) { return nil, message })
}

// Requests returns every request received so far.
func (s *GraphQLServer) Requests() []GraphQLRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GraphQLRequest(nil), s.requests...)
}

func (s *GraphQLServer) serve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := GraphQLRequest{Query: body.Query, Variables: body.Variables, Header: r.Header.Clone()}
	if m := operationNameRegex.FindStringSubmatch(body.Query); m != nil {
		req.Operation = m[1]
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	h, ok := s.handlers[req.Operation]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		writeGraphQLError(w, "unexpected operation "+req.Operation)
		return
	}

	data, errMessage := h(req)
	if errMessage != "" {
		writeGraphQLError(w, errMessage)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func writeGraphQLError(w http.ResponseWriter, message string) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data":   nil,
		"errors": []map[string]any{{"message": message}},
	})
}
