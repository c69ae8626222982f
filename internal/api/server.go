package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/max2697/SXSW-for-agents/internal/engine"
	"github.com/max2697/SXSW-for-agents/internal/event"
	"github.com/max2697/SXSW-for-agents/internal/filter"
	"github.com/max2697/SXSW-for-agents/internal/search"
	"github.com/max2697/SXSW-for-agents/internal/shortlist"
)

type Server struct {
	Engine *engine.Engine
	Logger *logrus.Entry
	Router *mux.Router
}

func NewServer(eng *engine.Engine, logger *logrus.Entry) *Server {
	s := &Server{
		Engine: eng,
		Logger: logger,
		Router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Use(s.corsMiddleware, s.loggingMiddleware)
	api := s.Router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/events", s.handleEvents).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/shortlist", s.handleShortlist).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet, http.MethodOptions)
}

func (s *Server) Start(port string) error {
	s.Logger.Infof("Starting API Server on %s", port)
	return http.ListenAndServe(port, s.Router)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.Engine.Config.Server.AllowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.Logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("Handled request")
	})
}

// Responses

type ErrorResponse struct {
	Error string `json:"error"`
}

type EventsResponse struct {
	Total  int           `json:"total"`
	Events []event.Event `json:"events"`
}

type SearchResponse struct {
	Query   string           `json:"query,omitempty"`
	Mode    search.Mode      `json:"mode,omitempty"`
	Total   int              `json:"total"`
	Results []SearchItemView `json:"results"`
}

type SearchItemView struct {
	Event         event.Event `json:"event"`
	Score         *int        `json:"score,omitempty"`
	MatchedTerms  []string    `json:"matchedTerms,omitempty"`
	MatchedFields []string    `json:"matchedFields,omitempty"`
}

type ShortlistResponse struct {
	Topic  string          `json:"topic"`
	PerDay int             `json:"perDay"`
	Days   []shortlist.Day `json:"days"`
}

type StatusResponse struct {
	EventCount       int    `json:"eventCount"`
	SnapshotAge      string `json:"snapshotAge"`
	SearchesServed   int64  `json:"searchesServed"`
	ShortlistsServed int64  `json:"shortlistsServed"`
	Uptime           string `json:"uptime"`
}

// Handlers

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.Engine.Events(r.Context(), filtersFromRequest(r))
	if err != nil {
		jsonResponse(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	jsonResponse(w, http.StatusOK, EventsResponse{Total: len(events), Events: events})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	// Mode validation happens here; the core assumes a valid mode.
	mode, err := search.ParseMode(r.URL.Query().Get("q_mode"))
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	limit := s.Engine.Config.Server.MaxSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	hits, err := s.Engine.Search(r.Context(), filtersFromRequest(r), query, mode, limit)
	if err != nil {
		jsonResponse(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	scored := len(search.QueryTokens(query)) > 0
	response := SearchResponse{
		Total:   len(hits),
		Results: make([]SearchItemView, len(hits)),
	}
	if scored {
		response.Query = query
		response.Mode = mode
	}
	for i, hit := range hits {
		view := SearchItemView{Event: hit.Event}
		if scored {
			score := hit.Result.Score
			view.Score = &score
			view.MatchedTerms = hit.Result.MatchedTerms
			view.MatchedFields = hit.Result.MatchedFields
		}
		response.Results[i] = view
	}

	jsonResponse(w, http.StatusOK, response)
}

func (s *Server) handleShortlist(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")
	if topic == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'topic' is required"})
		return
	}

	perDay := s.Engine.Config.Server.DefaultPerDay
	if raw := r.URL.Query().Get("per_day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "per_day must be a positive integer"})
			return
		}
		perDay = parsed
	}

	days, err := s.Engine.Shortlist(r.Context(), topic, perDay)
	if err != nil {
		jsonResponse(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusOK, ShortlistResponse{Topic: topic, PerDay: perDay, Days: days})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := s.Engine.Status()
	jsonResponse(w, http.StatusOK, StatusResponse{
		EventCount:       status.EventCount,
		SnapshotAge:      status.SnapshotAge.Round(time.Second).String(),
		SearchesServed:   status.SearchesServed,
		ShortlistsServed: status.ShortlistsServed,
		Uptime:           status.Uptime.Round(time.Second).String(),
	})
}

func filtersFromRequest(r *http.Request) filter.Filters {
	q := r.URL.Query()
	return filter.Filters{
		Date:        q.Get("date"),
		Category:    q.Get("category"),
		Venue:       q.Get("venue"),
		Type:        q.Get("type"),
		Contributor: q.Get("contributor"),
	}
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
