package handlers

import "net/http"

func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "app is healthy",
		"status":  true,
	})
}
