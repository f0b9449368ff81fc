// Package server streams wavefield frames to websocket clients while a
// serial stepper advances the simulation, for watching a run from a
// browser.
package server

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/san-kum/isowave/internal/config"
	"github.com/san-kum/isowave/internal/field"
	"github.com/san-kum/isowave/internal/solver"
	"github.com/san-kum/isowave/internal/stencil"
)

// Frame is one broadcast message: the full field at one time step.
type Frame struct {
	Type  string    `json:"type"`
	Step  int       `json:"step"`
	Rows  int       `json:"rows"`
	Cols  int       `json:"cols"`
	Field []float32 `json:"field"`
}

type Server struct {
	cfg      *config.Config
	interval time.Duration
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New builds a server that advances the field at the given frame interval.
func New(cfg *config.Config, interval time.Duration) *Server {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &Server{
		cfg:      cfg,
		interval: interval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ListenAndServe runs the simulation loop and the websocket endpoint at
// /ws until ctx is canceled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	params := stencil.DefaultParams()
	wf, err := field.NewWavefield(s.cfg.Rows, s.cfg.Cols, params.HalfLength)
	if err != nil {
		return err
	}
	wf.Seed(params.HalfLength)
	stepper := solver.NewStepper(params, wf)

	go s.simulationLoop(ctx, stepper)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	log.Printf("serving wavefield frames on ws://%s/ws", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// simulationLoop steps the field and broadcasts each new state, restarting
// from the seeded state after the configured iteration count.
func (s *Server) simulationLoop(ctx context.Context, stepper *solver.Stepper) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if stepper.Steps() >= s.cfg.Iterations {
			stepper.Reset()
		} else {
			stepper.Step()
		}

		cur := stepper.Current()
		frame := &Frame{
			Type:  "frame",
			Step:  stepper.Steps(),
			Rows:  cur.NRows,
			Cols:  cur.NCols,
			Field: cur.Data,
		}
		s.broadcast(frame)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade error:", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	// Drain control messages; clients only listen.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) broadcast(frame *Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.clients {
		if err := conn.WriteJSON(frame); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}
