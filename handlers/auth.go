package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"notes-app/auth"
	"notes-app/middleware"
	"notes-app/store"
)

// AuthHandler orchestrates registration, login, Google sign-in and the
// current-user lookup.
type AuthHandler struct {
	Users  store.UserStore
	Tokens *auth.TokenService
	Google auth.GoogleVerifier
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	_, err := h.Users.FindByEmail(r.Context(), req.Email)
	if err == nil {
		respondError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Register - user lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	user, err := h.Users.Create(r.Context(), req.Name, req.Email, string(hash), "")
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		log.Printf("Register - create failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.issueToken(w, http.StatusCreated, user.ID.Hex())
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		log.Printf("Login - user lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		respondError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	h.issueToken(w, http.StatusOK, user.ID.Hex())
}

func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	info, err := h.Google.Verify(r.Context(), req.Token)
	if err != nil {
		log.Printf("Google sign-in - verification failed: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid token")
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), info.Email)
	if errors.Is(err, store.ErrNotFound) {
		// First sign-in: create the account with a throwaway password so
		// the credential record stays non-null.
		hash, herr := bcrypt.GenerateFromPassword(randomPassword(), bcrypt.DefaultCost)
		if herr != nil {
			respondError(w, http.StatusInternalServerError, "Server error")
			return
		}
		user, err = h.Users.Create(r.Context(), info.Name, info.Email, string(hash), info.Subject)
	}
	if err != nil {
		log.Printf("Google sign-in - store error: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.issueToken(w, http.StatusOK, user.ID.Hex())
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.FindByID(r.Context(), middleware.UserID(r))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("Me - user lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, status int, userID string) {
	token, err := h.Tokens.Issue(userID)
	if err != nil {
		log.Printf("Token issue failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, status, map[string]string{"token": token})
}

func randomPassword() []byte {
	b := make([]byte, 16)
	rand.Read(b)
	return []byte(hex.EncodeToString(b))
}
