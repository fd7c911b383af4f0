package controller

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/register", map[string]string{
		"name": "alice", "password": "hunter2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	if msg := env.message(t, rec); msg != "Player added." {
		t.Errorf("got message %q", msg)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"empty name", map[string]string{"name": "", "password": "x"}},
		{"empty password", map[string]string{"name": "alice", "password": ""}},
		{"empty body", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/register", tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status %d, want 422", rec.Code)
			}
			if msg := env.message(t, rec); msg != "Entries must not be empty!" {
				t.Errorf("got message %q", msg)
			}
		})
	}
}

func TestRegisterConflict(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]string{"name": "alice", "password": "hunter2"}

	if rec := env.do(t, http.MethodPost, "/register", body); rec.Code != http.StatusOK {
		t.Fatalf("first register: status %d", rec.Code)
	}
	if rec := env.do(t, http.MethodPost, "/register", body); rec.Code != http.StatusConflict {
		t.Fatalf("second register: status %d, want 409", rec.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/register", map[string]string{"name": "alice", "password": "hunter2"})

	rec := env.do(t, http.MethodPost, "/login", map[string]string{"name": "alice", "password": "hunter2"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Passwords match" {
		t.Errorf("got message %v", body["message"])
	}
	if token, _ := body["token"].(string); token == "" {
		t.Error("expected a token in the login response")
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data is %T, want an object", body["data"])
	}
	if data["player_name"] != "alice" {
		t.Errorf("data carries %v", data["player_name"])
	}
	if _, leaked := data["password"]; leaked {
		t.Error("password leaked in the login response")
	}
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/register", map[string]string{"name": "alice", "password": "hunter2"})

	tests := []struct {
		name    string
		body    map[string]string
		status  int
		message string
	}{
		{"wrong password", map[string]string{"name": "alice", "password": "nope"}, http.StatusUnauthorized, "Passwords do not match"},
		{"unknown player", map[string]string{"name": "bob", "password": "hunter2"}, http.StatusUnauthorized, "Player not found."},
		{"empty fields", map[string]string{"name": "", "password": ""}, http.StatusUnprocessableEntity, "Entries must not be empty!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/login", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status %d, want %d", rec.Code, tt.status)
			}
			if msg := env.message(t, rec); msg != tt.message {
				t.Errorf("got message %q, want %q", msg, tt.message)
			}
		})
	}
}
