package mock

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// defaultLoginHandler handles POST /access/login requests. A successful
// exchange returns the minted JWT as a plain text body, the way the live
// endpoint does.
func (m *SigningService) defaultLoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var request struct {
		Username string `json:"username"`
		APIKey   string `json:"api-key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if request.Username != m.Username || request.APIKey != m.APIKey {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid username or api key"})
		return
	}
	accessToken, err := m.createJWT(request.Username, m.TokenTTL)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	atomic.AddInt32(&m.logins, 1)
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(accessToken))
}
