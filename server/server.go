package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"discord-summarizer/database"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Server exposes a read-only HTTP status API over the registry and the
// message store. It has no write endpoints; all mutation goes through the
// Discord commands.
type Server struct {
	router   *mux.Router
	port     string
	registry *database.ChannelRegistry
	store    *database.MessageStore
}

// New creates a new status server instance.
func New(port string, registry *database.ChannelRegistry, store *database.MessageStore) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		port:     port,
		registry: registry,
		store:    store,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all endpoints.
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.healthHandler).Methods("GET")
	s.router.HandleFunc("/api/channels", s.channelsHandler).Methods("GET")
	s.router.HandleFunc("/api/guilds/{guildID}/channels/{channelID}/stats", s.statsHandler).Methods("GET")
}

// Start blocks serving HTTP until the listener fails.
func (s *Server) Start() error {
	handler := cors.Default().Handler(s.router)
	log.Printf("Status server listening on :%s", s.port)
	return http.ListenAndServe(":"+s.port, handler)
}

// healthHandler provides a liveness check.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "discord-summarizer",
	})
}

// channelsHandler lists all actively monitored channels.
func (s *Server) channelsHandler(w http.ResponseWriter, r *http.Request) {
	channels, err := s.registry.ListActive()
	if err != nil {
		log.Printf("Status server: failed to list channels: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list channels"})
		return
	}
	writeJSON(w, http.StatusOK, channels)
}

// statsHandler returns message statistics for one channel. An optional
// ?hours= query bounds the aggregate to the same trailing window the
// summarizer uses.
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guildID := vars["guildID"]
	channelID := vars["channelID"]

	hours := 0
	if h := r.URL.Query().Get("hours"); h != "" {
		parsed, err := strconv.Atoi(h)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "hours must be a non-negative integer"})
			return
		}
		hours = parsed
	}

	stats, err := s.store.Stats(guildID, channelID, hours)
	if err != nil {
		log.Printf("Status server: failed to load stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load stats"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Status server: failed to encode response: %v", err)
	}
}
