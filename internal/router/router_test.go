package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"debt-control/internal/config"
	"debt-control/internal/database"
	"debt-control/internal/log"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: gin.TestMode},
		Database: config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "router.db")},
		JWT:      config.JWTConfig{Secret: "test-secret", Issuer: "debt-control", ExpireHours: 1},
		Security: config.SecurityConfig{BcryptCost: 4},
		App:      config.AppSubConfig{PageSize: 20},
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		t.Fatalf("Init test database failed: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	return &testServer{t: t, engine: SetupRouter(cfg, db, log.Nop())}
}

func (s *testServer) do(method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			s.t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func (s *testServer) register(name, email, password string) uint {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/accounts", gin.H{"name": name, "email": email, "password": password}, "")
	if w.Code != http.StatusCreated {
		s.t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}
	var account struct {
		ID uint `json:"id"`
	}
	json.Unmarshal(env.Data, &account)
	return account.ID
}

type entryView struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	User        uint   `json:"user"`
}

func (s *testServer) createEntry(body gin.H) entryView {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/api/entries", body, "")
	if w.Code != http.StatusOK {
		s.t.Fatalf("create entry status = %d, body %s", w.Code, w.Body.String())
	}
	var e entryView
	if err := json.Unmarshal(env.Data, &e); err != nil {
		s.t.Fatalf("decode entry: %v", err)
	}
	return e
}

func entryBody(user uint) gin.H {
	return gin.H{
		"description": "teste",
		"month":       6,
		"year":        2020,
		"amount":      100,
		"type":        "INCOME",
		"status":      "PENDING",
		"user":        user,
	}
}

func TestAccounts_RegisterAndAuthenticate(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(http.MethodPost, "/api/accounts", gin.H{"name": "usuario", "email": "usuario@email.com", "password": "senha"}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", w.Code)
	}
	if strings.Contains(string(env.Data), "senha") || strings.Contains(string(env.Data), "password") {
		t.Errorf("register response leaks password: %s", env.Data)
	}

	w, env = s.do(http.MethodPost, "/api/accounts", gin.H{"name": "outro", "email": "usuario@email.com", "password": "x"}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want 400", w.Code)
	}
	if env.Message == "" {
		t.Error("duplicate register has no message")
	}

	w, env = s.do(http.MethodPost, "/api/accounts/authenticate", gin.H{"email": "usuario@email.com", "password": "senha"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("authenticate status = %d, want 200", w.Code)
	}
	var auth struct {
		Token   string `json:"token"`
		Account struct {
			Email string `json:"email"`
		} `json:"account"`
	}
	json.Unmarshal(env.Data, &auth)
	if auth.Token == "" || auth.Account.Email != "usuario@email.com" {
		t.Errorf("authenticate data = %s", env.Data)
	}

	testCases := []struct {
		email, password, want string
	}{
		{"usuario@email.com", "errada", "invalid password"},
		{"ninguem@email.com", "senha", "account not found"},
	}
	for _, tc := range testCases {
		w, env = s.do(http.MethodPost, "/api/accounts/authenticate", gin.H{"email": tc.email, "password": tc.password}, "")
		if w.Code != http.StatusBadRequest || env.Message != tc.want {
			t.Errorf("authenticate(%s) = %d %q, want 400 %q", tc.email, w.Code, env.Message, tc.want)
		}
	}
}

func TestAccounts_Balance(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodGet, "/api/accounts/99/balance", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("balance(unknown) status = %d, want 404", w.Code)
	}

	id := s.register("usuario", "usuario@email.com", "senha")
	balance := func() decimal.Decimal {
		w, env := s.do(http.MethodGet, fmt.Sprintf("/api/accounts/%d/balance", id), nil, "")
		if w.Code != http.StatusOK {
			t.Fatalf("balance status = %d", w.Code)
		}
		var d decimal.Decimal
		if err := json.Unmarshal(env.Data, &d); err != nil {
			t.Fatalf("decode balance %s: %v", env.Data, err)
		}
		return d
	}

	if got := balance(); !got.IsZero() {
		t.Errorf("balance(no entries) = %s, want 0", got)
	}

	income := entryBody(id)
	income["amount"] = "2500.40"
	s.createEntry(income)
	expense := entryBody(id)
	expense["type"] = "EXPENSE"
	expense["amount"] = "500.15"
	s.createEntry(expense)

	if got, want := balance(), decimal.RequireFromString("2000.25"); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}
}

func TestEntries_Create(t *testing.T) {
	s := newTestServer(t)
	id := s.register("usuario", "usuario@email.com", "senha")

	e := s.createEntry(entryBody(id))
	if e.ID == 0 {
		t.Error("created entry has no id")
	}
	if e.Status != "PENDING" {
		t.Errorf("created status = %s, want PENDING", e.Status)
	}

	testCases := []struct {
		name   string
		mutate func(gin.H)
		want   string
	}{
		{"empty description", func(b gin.H) { b["description"] = "" }, "invalid description"},
		{"bad month", func(b gin.H) { b["month"] = 13 }, "invalid month"},
		{"missing year", func(b gin.H) { delete(b, "year") }, "invalid year"},
		{"zero amount", func(b gin.H) { b["amount"] = 0 }, "invalid amount"},
		{"three decimals", func(b gin.H) { b["amount"] = "0.005" }, "invalid amount"},
		{"amount past column", func(b gin.H) { b["amount"] = "100000000000000" }, "invalid amount"},
		{"missing type", func(b gin.H) { delete(b, "type") }, "invalid type"},
		{"unknown type", func(b gin.H) { b["type"] = "GIFT" }, "invalid type"},
		{"unknown user", func(b gin.H) { b["user"] = 999 }, "account not found for the given id"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := entryBody(id)
			tc.mutate(body)
			w, env := s.do(http.MethodPost, "/api/entries", body, "")
			if w.Code != http.StatusBadRequest || env.Message != tc.want {
				t.Errorf("create = %d %q, want 400 %q", w.Code, env.Message, tc.want)
			}
		})
	}
}

func TestEntries_List(t *testing.T) {
	s := newTestServer(t)
	id := s.register("usuario", "usuario@email.com", "senha")
	other := s.register("outro", "outro@email.com", "senha")

	s.createEntry(entryBody(id))
	july := entryBody(id)
	july["month"] = 7
	s.createEntry(july)
	s.createEntry(entryBody(other))

	list := func(query string) []entryView {
		w, env := s.do(http.MethodGet, "/api/entries?"+query, nil, "")
		if w.Code != http.StatusOK {
			t.Fatalf("list(%s) status = %d body %s", query, w.Code, w.Body.String())
		}
		var out []entryView
		json.Unmarshal(env.Data, &out)
		return out
	}

	if got := list(fmt.Sprintf("user=%d", id)); len(got) != 2 {
		t.Errorf("list(user) = %d entries, want 2", len(got))
	}
	if got := list(fmt.Sprintf("user=%d&month=7", id)); len(got) != 1 || got[0].Month != 7 {
		t.Errorf("list(user, month=7) = %+v", got)
	}
	if got := list(fmt.Sprintf("user=%d&description=nada", id)); len(got) != 0 {
		t.Errorf("list(no match) = %d entries, want 0", len(got))
	}

	for _, query := range []string{"", "user=999", "user=abc", fmt.Sprintf("user=%d&month=13", id)} {
		w, _ := s.do(http.MethodGet, "/api/entries?"+query, nil, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("list(%q) status = %d, want 400", query, w.Code)
		}
	}
}

func TestEntries_UpdateStatusDelete(t *testing.T) {
	s := newTestServer(t)
	id := s.register("usuario", "usuario@email.com", "senha")
	e := s.createEntry(entryBody(id))
	path := fmt.Sprintf("/api/entries/%d", e.ID)

	body := entryBody(id)
	body["description"] = "alterado"
	delete(body, "status")
	w, env := s.do(http.MethodPut, path, body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d body %s", w.Code, w.Body.String())
	}
	var updated entryView
	json.Unmarshal(env.Data, &updated)
	if updated.Description != "alterado" || updated.ID != e.ID || updated.Status != "PENDING" {
		t.Errorf("updated = %+v", updated)
	}

	w, _ = s.do(http.MethodPut, "/api/entries/999", entryBody(id), "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("update(unknown) status = %d, want 400", w.Code)
	}

	w, _ = s.do(http.MethodPut, path+"/status", gin.H{"status": "ARCHIVED"}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status(invalid) = %d, want 400", w.Code)
	}
	w, _ = s.do(http.MethodPut, "/api/entries/999/status", gin.H{"status": "SETTLED"}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status(unknown entry) = %d, want 400", w.Code)
	}
	w, env = s.do(http.MethodPut, path+"/status", gin.H{"status": "CANCELLED"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}
	json.Unmarshal(env.Data, &updated)
	if updated.Status != "CANCELLED" {
		t.Errorf("status after transition = %s, want CANCELLED", updated.Status)
	}

	w, _ = s.do(http.MethodDelete, path, nil, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", w.Code)
	}
	w, _ = s.do(http.MethodDelete, path, nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("delete(again) status = %d, want 400", w.Code)
	}
}

func TestMe_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/me", "/api/me/logs", "/api/me/statement"} {
		w, _ := s.do(http.MethodGet, path, nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d, want 401", path, w.Code)
		}
		w, _ = s.do(http.MethodGet, path, nil, "garbage")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s with bad token = %d, want 401", path, w.Code)
		}
	}
}

func TestMe_ProfileLogsAndStatement(t *testing.T) {
	s := newTestServer(t)
	id := s.register("usuario", "usuario@email.com", "senha")
	s.createEntry(entryBody(id))

	_, env := s.do(http.MethodPost, "/api/accounts/authenticate", gin.H{"email": "usuario@email.com", "password": "senha"}, "")
	var auth struct {
		Token string `json:"token"`
	}
	json.Unmarshal(env.Data, &auth)

	w, env := s.do(http.MethodPut, "/api/me", gin.H{"name": "novo"}, auth.Token)
	if w.Code != http.StatusOK || !strings.Contains(string(env.Data), `"novo"`) {
		t.Errorf("update profile = %d %s", w.Code, env.Data)
	}

	w, env = s.do(http.MethodPost, "/api/me/password", gin.H{"old_password": "errada", "new_password": "nova-senha"}, auth.Token)
	if w.Code != http.StatusBadRequest || env.Message != "invalid password" {
		t.Errorf("change password (wrong old) = %d %q", w.Code, env.Message)
	}

	w, env = s.do(http.MethodGet, "/api/me/logs", nil, auth.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("logs status = %d", w.Code)
	}
	var page struct {
		Total int64 `json:"total"`
		Items []struct {
			Path string `json:"path"`
		} `json:"items"`
	}
	json.Unmarshal(env.Data, &page)
	// PUT /api/me and POST /api/me/password were recorded against this account
	if page.Total < 2 {
		t.Errorf("audit total = %d, want at least 2", page.Total)
	}

	w, _ = s.do(http.MethodGet, "/api/me/statement?format=csv", nil, auth.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("statement status = %d body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("statement content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "teste") {
		t.Errorf("statement body missing entry: %s", w.Body.String())
	}

	w, _ = s.do(http.MethodGet, "/api/me/statement?format=doc", nil, auth.Token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("statement(bad format) status = %d, want 400", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(http.MethodGet, "/healthz", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("response has no X-Request-ID")
	}
}
