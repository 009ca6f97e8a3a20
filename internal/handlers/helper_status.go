package handlers

import "net/http"

type statusResponse struct {
	Status string `json:"status"`
}

// Index reports that the service is up.
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "OK"})
}
