package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/devashish/pokedex-api/internal/models"
	"github.com/devashish/pokedex-api/internal/store"
)

// The same message covers an unknown email and a wrong password, so a
// caller cannot probe which accounts exist.
const invalidCredentials = "invalid email or password"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserStore defines the interface for user persistence.
type UserStore interface {
	EmailTaken(ctx context.Context, email string) (bool, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, username, email, hashedPw string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users UserStore
}

func NewHandler(users UserStore) *Handler {
	return &Handler{users: users}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// validateRegistration normalizes the request in place and returns every
// schema violation, concatenated into one message.
func validateRegistration(req *models.RegisterRequest) string {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var problems []string
	if len(req.Username) < 3 {
		problems = append(problems, "username must be at least 3 characters")
	}
	if !emailPattern.MatchString(req.Email) {
		problems = append(problems, "email must be a valid email address")
	}
	if len(req.Password) < 6 {
		problems = append(problems, "password must be at least 6 characters")
	}
	return strings.Join(problems, "; ")
}

// Register creates a new user account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username, email, and password are required")
		return
	}
	if msg := validateRegistration(&req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// The two existence checks run sequentially, not atomically; the store
	// maps a losing race at insert back to the offending field.
	taken, err := h.users.EmailTaken(r.Context(), req.Email)
	if err != nil {
		log.Printf("register: check email: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if taken {
		writeError(w, http.StatusBadRequest, "email already in use")
		return
	}

	taken, err = h.users.UsernameTaken(r.Context(), req.Username)
	if err != nil {
		log.Printf("register: check username: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if taken {
		writeError(w, http.StatusBadRequest, "username already in use")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register: hash password: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.Username, req.Email, string(hashed))
	switch {
	case errors.Is(err, store.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "email already in use")
		return
	case errors.Is(err, store.ErrUsernameTaken):
		writeError(w, http.StatusBadRequest, "username already in use")
		return
	case err != nil:
		log.Printf("register: create user: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "user registered",
		"user":    user,
	})
}

// Login verifies credentials. No session or token is issued; the response
// is the sanitized account only.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetUserByEmail(r.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, invalidCredentials)
		return
	}
	if err != nil {
		log.Printf("login: get user: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "login successful",
		"user":    user,
	})
}
