// Package server exposes the advisor over a WebSocket endpoint. Each
// message is a stateless request/response computation; the server keeps
// no game state.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/poker"
)

// Server serves advice requests over WebSocket
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	advisor     *advisor.Advisor
	defaults    advisor.Situation
	idleTimeout time.Duration
	clock       quartz.Clock
	logger      *log.Logger

	mu          sync.Mutex
	connections map[*websocket.Conn]struct{}
}

// NewServer creates a new advice server. Idle connections are closed after
// idleTimeout without a request; the clock is injectable for tests.
func NewServer(addr string, adv *advisor.Advisor, defaults advisor.Situation, idleTimeout time.Duration, logger *log.Logger, clock quartz.Clock) *Server {
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		advisor:     adv,
		defaults:    defaults,
		idleTimeout: idleTimeout,
		clock:       clock,
		logger:      logger.WithPrefix("server"),
		connections: make(map[*websocket.Conn]struct{}),
	}
}

// Handler returns the HTTP handler serving /ws and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start runs the server until the listener fails.
func (s *Server) Start() error {
	s.logger.Info("Starting advice server", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Stop closes all open connections.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.connections = make(map[*websocket.Conn]struct{})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintln(w, `{"status":"ok"}`)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	s.mu.Lock()
	s.connections[conn] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)

	defer func() {
		s.mu.Lock()
		delete(s.connections, conn)
		s.mu.Unlock()
		_ = conn.Close()
		s.logger.Info("Client disconnected")
	}()

	// Close the connection when no request arrives within the idle window
	idle := s.clock.AfterFunc(s.idleTimeout, func() {
		s.logger.Info("Closing idle connection")
		_ = conn.Close()
	})
	defer idle.Stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		idle.Reset(s.idleTimeout)

		resp := s.handleMessage(data)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Error("Failed to write response", "error", err)
			return
		}
	}
}

// handleMessage processes one request and always produces a response
// message, never tearing down the connection for malformed input.
func (s *Server) handleMessage(data []byte) *Message {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return errorMessage("", fmt.Sprintf("malformed message: %v", err))
	}

	switch msg.Type {
	case MessageTypeAdvise:
		resp := s.handleAdvise(msg)
		resp.RequestID = msg.RequestID
		return resp
	default:
		return errorMessage(msg.RequestID, fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

func (s *Server) handleAdvise(msg Message) *Message {
	var req AdviseRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		return errorMessage(msg.RequestID, fmt.Sprintf("malformed advise request: %v", err))
	}

	hole, err := parseTokens(req.Hole)
	if err != nil {
		return errorMessage(msg.RequestID, err.Error())
	}
	board, err := parseTokens(req.Board)
	if err != nil {
		return errorMessage(msg.RequestID, err.Error())
	}

	sit := s.defaults
	if req.Position != "" {
		sit.Position = req.Position
	}
	if req.Stack > 0 {
		sit.StackBB = req.Stack
	}
	if req.Pot > 0 {
		sit.PotBB = req.Pot
	}
	if req.Players > 0 {
		sit.Players = req.Players
	}

	eval, rec, err := s.advisor.Advise(hole, board, sit)
	if err != nil {
		return errorMessage(msg.RequestID, err.Error())
	}

	resp, err := NewMessage(MessageTypeRecommendation, AdviseResponse{
		Evaluation:     eval,
		Recommendation: rec,
	})
	if err != nil {
		return errorMessage(msg.RequestID, err.Error())
	}
	return resp
}

func parseTokens(tokens []string) ([]poker.Card, error) {
	var cards []poker.Card
	for _, token := range tokens {
		card, err := poker.ParseCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func errorMessage(requestID, text string) *Message {
	msg, err := NewMessage(MessageTypeError, ErrorData{Message: text})
	if err != nil {
		panic(err)
	}
	msg.RequestID = requestID
	return msg
}
