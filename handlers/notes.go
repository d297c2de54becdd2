package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"notes-app/middleware"
	"notes-app/store"
)

// NoteHandler serves the note CRUD routes. Every store call is scoped to
// the authenticated owner, so notes of other users are indistinguishable
// from missing ones.
type NoteHandler struct {
	Notes store.NoteStore
}

type noteRequest struct {
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content"`
	Tags    []string        `json:"tags"`
}

func (h *NoteHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Notes.ListByOwner(r.Context(), middleware.UserID(r))
	if err != nil {
		log.Printf("GetAll - list failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) GetSingle(w http.ResponseWriter, r *http.Request) {
	note, err := h.Notes.Get(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		log.Printf("GetSingle - lookup failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || len(req.Content) == 0 {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	note, err := h.Notes.Create(r.Context(), middleware.UserID(r), req.Title, req.Content, req.Tags)
	if err != nil {
		log.Printf("Create - insert failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || len(req.Content) == 0 {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	note, err := h.Notes.Update(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"), req.Title, req.Content, req.Tags)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		log.Printf("Update - update failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Notes.Delete(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		log.Printf("Delete - delete failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted"})
}
