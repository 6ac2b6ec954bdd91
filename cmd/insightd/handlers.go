// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/hashicorp/insight"
	"go.uber.org/zap"
)

// server owns the two lazily-loaded datasets and the request logger. The
// handlers never mutate the datasets; concurrent requests share them freely.
type server struct {
	sections func() ([]insight.Section, error)
	rooms    func() ([]insight.Room, error)
	log      *zap.SugaredLogger
}

func newServer(
	sections func() ([]insight.Section, error),
	rooms func() ([]insight.Room, error),
	log *zap.SugaredLogger,
) *server {
	return &server{
		sections: sections,
		rooms:    rooms,
		log:      log,
	}
}

// routes builds the router: a liveness root plus one GET per dataset, behind
// a permissive CORS layer.
func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	r.Get("/", s.handleRoot)
	r.Get("/sections", s.handleSections)
	r.Get("/rooms", s.handleRooms)
	return r
}

func (s *server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Hello, world!"))
}

func (s *server) handleSections(w http.ResponseWriter, r *http.Request) {
	runQuery(s, w, r, s.sections, "sections")
}

func (s *server) handleRooms(w http.ResponseWriter, r *http.Request) {
	runQuery(s, w, r, s.rooms, "rooms")
}

// resultEnvelope and errorEnvelope form the response union: exactly one of
// the two field names appears in any response body.
type resultEnvelope struct {
	Result []insight.Row `json:"result"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// runQuery is the shared handler body: parse the q parameter, execute against
// the dataset, and wrap the outcome in the response envelope. Query failures
// are part of the protocol and answered with 200; only a missing q parameter
// (400) and a dataset load failure (500) use HTTP status codes.
func runQuery[R insight.Record](s *server, w http.ResponseWriter, r *http.Request, load func() ([]R, error), dataset string) {
	raw := r.URL.Query().Get("q")
	if raw == "" {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}
	s.log.Infow("received query",
		"dataset", dataset,
		"request_id", requestIDFromContext(r.Context()),
		"query", raw,
	)

	query, err := insight.ParseQuery([]byte(raw))
	if err != nil {
		writeEnvelope(s, w, http.StatusOK, errorEnvelope{Error: err.Error()})
		return
	}
	records, err := load()
	if err != nil {
		s.log.Errorw("dataset load failed", "dataset", dataset, "error", err)
		writeEnvelope(s, w, http.StatusInternalServerError, errorEnvelope{Error: err.Error()})
		return
	}
	rows, err := insight.Execute(query, records)
	if err != nil {
		writeEnvelope(s, w, http.StatusOK, errorEnvelope{Error: err.Error()})
		return
	}
	if rows == nil {
		rows = []insight.Row{}
	}
	writeEnvelope(s, w, http.StatusOK, resultEnvelope{Result: rows})
}

func writeEnvelope(s *server, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorw("failed to encode response", "error", err)
	}
}

type requestIDKey struct{}

// requestID tags each request with a fresh id for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
