package handler

import "net/http"

// HandleTasks is the protected tasks endpoint. It only confirms that the
// bearer token was accepted.
// GET /tasks
func HandleTasks(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "You are authenticated",
		"user_id": claims.Subject,
		"email":   claims.Email,
	})
}
