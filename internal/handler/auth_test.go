package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/snnyvrz/bookdesk/internal/validation"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(db, nil)

	register := `{"email": "reader@example.com", "name": "Reader", "password": "s3cret-password"}`
	w := doRequest(t, r, http.MethodPost, "/api/auth/register", register, "")
	assertStatus(t, w, http.StatusCreated)

	var registered TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &registered); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if registered.Token == "" {
		t.Fatal("expected a token from register")
	}

	login := `{"email": "reader@example.com", "password": "s3cret-password"}`
	w = doRequest(t, r, http.MethodPost, "/api/auth/login", login, "")
	assertStatus(t, w, http.StatusOK)

	var loggedIn TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &loggedIn); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if loggedIn.Token == "" {
		t.Fatal("expected a token from login")
	}

	// The register token must be usable against protected routes.
	body := `{"title": "Dune", "author": "Frank Herbert", "isbn": "9780441172719"}`
	w = doRequest(t, r, http.MethodPost, "/api/books", body, registered.Token)
	assertStatus(t, w, http.StatusCreated)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(db, nil)

	register := `{"email": "reader@example.com", "name": "Reader", "password": "s3cret-password"}`
	assertStatus(t, doRequest(t, r, http.MethodPost, "/api/auth/register", register, ""), http.StatusCreated)

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", register, "")
	assertStatus(t, w, http.StatusConflict)

	var resp validation.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != "EMAIL_EXISTS" {
		t.Fatalf("expected code EMAIL_EXISTS, got %q", resp.Code)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(db, nil)

	register := `{"email": "reader@example.com", "name": "Reader", "password": "short"}`
	w := doRequest(t, r, http.MethodPost, "/api/auth/register", register, "")
	assertStatus(t, w, http.StatusBadRequest)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(db, nil)

	register := `{"email": "reader@example.com", "name": "Reader", "password": "s3cret-password"}`
	assertStatus(t, doRequest(t, r, http.MethodPost, "/api/auth/register", register, ""), http.StatusCreated)

	login := `{"email": "reader@example.com", "password": "wrong-password"}`
	w := doRequest(t, r, http.MethodPost, "/api/auth/login", login, "")
	assertStatus(t, w, http.StatusUnauthorized)

	var resp validation.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != "INVALID_CREDENTIALS" {
		t.Fatalf("expected code INVALID_CREDENTIALS, got %q", resp.Code)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(db, nil)

	login := `{"email": "nobody@example.com", "password": "s3cret-password"}`
	w := doRequest(t, r, http.MethodPost, "/api/auth/login", login, "")
	assertStatus(t, w, http.StatusUnauthorized)
}
