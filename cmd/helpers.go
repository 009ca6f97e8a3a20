package main

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"itemsBack/internal/handlers"
)

// serverError logs err with a stack trace and writes a 500. Debug mode
// exposes the error text to the client.
func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)

	message := http.StatusText(http.StatusInternalServerError)
	if app.debug {
		message = err.Error()
	}
	handlers.WriteError(w, http.StatusInternalServerError, message)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, http.StatusNotFound, fmt.Sprintf("%s %s not found", r.Method, r.URL.Path))
}
