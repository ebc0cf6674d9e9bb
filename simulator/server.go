// Package simulator stands in for the rig's HTTP-to-serial bridge on a bench
// without hardware attached.
package simulator

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/mux"

	"github.com/reacher-tools/hwpanel/hardware"
	"github.com/reacher-tools/hwpanel/serialapi"
)

type Received struct {
	Time      time.Time `json:"time"`
	Command   string    `json:"command"`
	RequestID string    `json:"request_id,omitempty"`
	Status    int       `json:"status"`
}

type fault struct {
	skip      int
	remaining int
	status    int
}

type Server struct {
	mu       sync.Mutex
	log      logr.Logger
	vocab    hardware.CommandSpec
	received []Received
	armed    map[string]bool
	params   map[string]string
	fault    fault
	router   *mux.Router
}

func New(log logr.Logger) *Server {
	s := &Server{
		log:    log,
		vocab:  hardware.Vocabulary(),
		armed:  map[string]bool{},
		params: map[string]string{},
	}
	r := mux.NewRouter()
	r.HandleFunc(serialapi.CommandPath, s.handleCommand).Methods(http.MethodPost)
	r.HandleFunc("/serial/commands", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/serial/state", s.handleState).Methods(http.MethodGet)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// FailNext makes the next n commands answer with status without being applied.
func (s *Server) FailNext(n int, status int) {
	s.FailAfter(0, n, status)
}

// FailAfter lets skip commands through, then fails the following n.
func (s *Server) FailAfter(skip, n int, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = fault{skip: skip, remaining: n, status: status}
}

// Commands returns every command received so far, including failed ones.
func (s *Server) Commands() []Received {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Received, len(s.received))
	copy(out, s.received)
	return out
}

// Armed reports the armed state of a device code (e.g. "PUMP") as seen by the rig.
func (s *Server) Armed(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armed[code]
}

// Param returns the last value set for a parameterized command, or the
// last mode / lever selection for LASER_STIM_MODE and ACTIVE_LEVER.
func (s *Server) Param(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.params[name]
	return v, ok
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req serialapi.CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Received{
		Time:      time.Now(),
		Command:   req.Command,
		RequestID: r.Header.Get("X-Request-Id"),
		Status:    http.StatusOK,
	}
	switch {
	case s.fault.remaining > 0 && s.fault.skip > 0:
		s.fault.skip--
		if s.vocab.Valid(req.Command) {
			s.apply(req.Command)
		} else {
			rec.Status = http.StatusBadRequest
		}
	case s.fault.remaining > 0:
		s.fault.remaining--
		rec.Status = s.fault.status
	case !s.vocab.Valid(req.Command):
		rec.Status = http.StatusBadRequest
	default:
		s.apply(req.Command)
	}
	s.received = append(s.received, rec)
	s.log.V(1).Info("command", "command", req.Command, "status", rec.Status, "request_id", rec.RequestID)

	if rec.Status != http.StatusOK {
		http.Error(w, http.StatusText(rec.Status), rec.Status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "command": req.Command})
}

// apply must be called with s.mu held.
func (s *Server) apply(cmd string) {
	if name, arg, ok := strings.Cut(cmd, ":"); ok {
		s.params[name] = arg
		return
	}
	switch {
	case strings.HasPrefix(cmd, "DISARM_"):
		s.armed[strings.TrimPrefix(cmd, "DISARM_")] = false
	case strings.HasPrefix(cmd, "ARM_"):
		s.armed[strings.TrimPrefix(cmd, "ARM_")] = true
	case strings.HasPrefix(cmd, "LASER_STIM_MODE_"):
		s.params["LASER_STIM_MODE"] = strings.TrimPrefix(cmd, "LASER_STIM_MODE_")
	case strings.HasPrefix(cmd, "ACTIVE_LEVER_"):
		s.params["ACTIVE_LEVER"] = strings.TrimPrefix(cmd, "ACTIVE_LEVER_")
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Commands())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := struct {
		Armed  map[string]bool   `json:"armed"`
		Params map[string]string `json:"params"`
	}{
		Armed:  make(map[string]bool, len(s.armed)),
		Params: make(map[string]string, len(s.params)),
	}
	for k, v := range s.armed {
		state.Armed[k] = v
	}
	for k, v := range s.params {
		state.Params[k] = v
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}
