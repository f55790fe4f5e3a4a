package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aokblast/sicxeasm/config"
	"github.com/aokblast/sicxeasm/parser"
	"github.com/aokblast/sicxeasm/service"
)

var (
	errMethodNotAllowed = errors.New("method not allowed")
	errMissingSessionID = errors.New("missing session id")
)

func assembleFunc(req AssembleRequest, cfg *config.Config) (*service.Result, error) {
	return service.Assemble([]byte(req.Source), req.Filename, cfg, nil)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("error encoding JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024*1024))
	return decoder.Decode(v)
}

// translationStatus maps a pipeline error to the HTTP status that best
// describes it: an I/O *parser.Error is 404, every other *parser.Error
// is 422, and an error of any other type is 500.
func translationStatus(err error) int {
	var perr *parser.Error
	if e, ok := err.(*parser.Error); ok {
		perr = e
	}
	if perr == nil {
		return http.StatusInternalServerError
	}
	switch perr.Kind {
	case parser.ErrorIO:
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleAssemble(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}

	var req AssembleRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := assembleFunc(req, s.cfg)
	if err != nil {
		writeError(w, translationStatus(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toAssembleResponse(result))
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}

	var req SessionCreateRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := s.sessions.Create([]byte(req.Source), req.Filename, s.cfg)
	if err != nil {
		writeError(w, translationStatus(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, SessionResponse{
		ID:        sess.ID,
		Filename:  sess.Filename,
		CreatedAt: sess.CreatedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/session/")
	if id == "" {
		writeError(w, http.StatusBadRequest, errMissingSessionID)
		return
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssembleResponse(sess.Result))
}
