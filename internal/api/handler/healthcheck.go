package handler

import (
	"encoding/json"
	"net/http"
)

// HealthcheckHandler responde um status simples usado por probes de disponibilidade
func HealthcheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
