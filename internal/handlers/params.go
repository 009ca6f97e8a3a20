package handlers

import "net/http"

// getParam returns a route parameter. pat stores captured segments in the
// query string under a leading colon; net/http patterns use PathValue.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	return r.PathValue(name)
}
