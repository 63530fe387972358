package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"
)

func Health(w http.ResponseWriter, r *http.Request) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":      "OK",
		"environment": env,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
