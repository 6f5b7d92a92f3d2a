package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/talgya/crownfall/internal/session"
)

func testServer() *Server {
	return &Server{
		Engine: session.NewEngine(session.NewMemoryStore(), nil),
	}
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleStart(t *testing.T) {
	s := testServer()

	rec := post(t, s.handleStart, `{"player_id":"p1","ambition":"a just king","seed":12345}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var res struct {
		SessionID string `json:"session_id"`
		Proposals []struct {
			ID string `json:"id"`
		} `json:"proposals"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.SessionID == "" {
		t.Error("missing session_id")
	}
	if len(res.Proposals) == 0 {
		t.Error("no proposals in start payload")
	}
}

func TestHandleStartRejectsEmptyAmbition(t *testing.T) {
	s := testServer()
	if rec := post(t, s.handleStart, `{"player_id":"p1","ambition":"   "}`); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if rec := post(t, s.handleStart, `{"ambition":"a king"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing player_id: status = %d, want 400", rec.Code)
	}
	if rec := post(t, s.handleStart, `not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad body: status = %d, want 400", rec.Code)
	}
}

func TestHandleAdvance(t *testing.T) {
	s := testServer()
	start := post(t, s.handleStart, `{"player_id":"p1","ambition":"a just king","seed":12345}`)

	var res struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(start.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}

	rec := post(t, s.handleAdvance, `{"session_id":"`+res.SessionID+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	if rec := post(t, s.handleAdvance, `{"session_id":"nope"}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown session: status = %d, want 404", rec.Code)
	}
}

func TestHandleChooseErrors(t *testing.T) {
	s := testServer()
	start := post(t, s.handleStart, `{"player_id":"p1","ambition":"a just king","seed":12345}`)

	var res struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(start.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}

	if rec := post(t, s.handleChoose, `{"session_id":"`+res.SessionID+`"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing action_id: status = %d, want 400", rec.Code)
	}
	if rec := post(t, s.handleChoose, `{"session_id":"`+res.SessionID+`","action_id":"walk_into_mordor"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown action: status = %d, want 400", rec.Code)
	}
}

func TestAuth(t *testing.T) {
	s := testServer()
	s.AdminKey = "secret"
	handler := s.auth(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("good token: status = %d, want 200", rec.Code)
	}
}
