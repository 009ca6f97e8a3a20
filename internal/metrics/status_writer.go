package metrics

import "net/http"

// StatusWriter records the first status code written through it. A handler
// that only writes a body is reported as 200.
type StatusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func NewStatusWriter(w http.ResponseWriter) *StatusWriter {
	return &StatusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *StatusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *StatusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Status is the recorded status code.
func (w *StatusWriter) Status() int {
	return w.status
}
