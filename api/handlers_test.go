package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aokblast/sicxeasm/config"
)

const copyProgram = "COPY START 1000\nFIRST RSUB\nEND FIRST\n"

func newTestServer() *Server {
	cfg := config.DefaultConfig()
	cfg.API.Port = 0
	return NewServer(cfg)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
}

func TestHandleAssembleSuccess(t *testing.T) {
	s := newTestServer()
	reqBody := strings.NewReader(`{"filename":"copy.asm","source":"` + strings.ReplaceAll(copyProgram, "\n", `\n`) + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assemble", reqBody)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp AssembleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error decoding body: %v", err)
	}
	if resp.ProgramName != "COPY" {
		t.Errorf("expected program name COPY, got %q", resp.ProgramName)
	}
	if !strings.HasPrefix(resp.Header, "HCOPY") {
		t.Errorf("expected header to start with HCOPY, got %q", resp.Header)
	}
}

func TestHandleAssembleRejectsBadProgram(t *testing.T) {
	s := newTestServer()
	reqBody := strings.NewReader(`{"filename":"bad.asm","source":"RSUB\n"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assemble", reqBody)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleAssembleRejectsWrongMethod(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/assemble", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHandleSessionCreateAndGet(t *testing.T) {
	s := newTestServer()

	createBody := strings.NewReader(`{"filename":"copy.asm","source":"` + strings.ReplaceAll(copyProgram, "\n", `\n`) + `"}`)
	createReq := httptest.NewRequest(http.MethodPost, "/api/v1/session", createBody)
	createRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(createRec, createReq)

	if createRec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", createRec.Code, createRec.Body.String())
	}
	var created SessionResponse
	if err := json.Unmarshal(createRec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unexpected error decoding body: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a non-empty session ID")
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/session/"+created.ID, nil)
	getRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(getRec, getReq)

	if getRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", getRec.Code, getRec.Body.String())
	}
}

func TestHandleSessionGetMissing(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session/does-not-exist", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
