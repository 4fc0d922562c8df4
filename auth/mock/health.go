package mock

import (
	"encoding/json"
	"net/http"
)

// defaultHealthHandler handles /health requests. The live probe is anonymous,
// so no credentials are checked here.
func (m *SigningService) defaultHealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "UP"})
}
