package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/tmosimanyana/moofar.site/internal/observability"
)

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var healthBody = mustJSON(HealthResponse{Status: "ok", Message: "Server is running"})

// Health reports that the process is serving.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthBody)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		observability.FromContext(r.Context()).Debug("write response", zap.Error(err))
	}
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
